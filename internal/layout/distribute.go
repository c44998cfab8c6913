package layout

import "slices"

// MeasureFunc reports the main-axis size child i takes when offered
// proposal cells. proposal may be Unspecified.
type MeasureFunc func(i, proposal int) int

// stackItem holds intermediate distribution state for a child.
// This is allocated per call, not stored on views.
type stackItem struct {
	index       int
	flexibility int
}

// Distribute divides available main-axis cells among n children separated
// by spacing. Children are offered space from least to most flexible, where
// flexibility is the difference between the size a child takes when offered
// everything and when offered nothing. Each child is offered an equal share of
// what remains, so rigid children get their natural size and flexible ones
// split the rest.
//
// When available is Unspecified every child gets its ideal size.
func Distribute(n, available, spacing int, measure MeasureFunc) []int {
	sizes := make([]int, n)
	if n == 0 {
		return sizes
	}

	if available == Unspecified {
		for i := range sizes {
			sizes[i] = measure(i, Unspecified)
		}
		return sizes
	}

	// Phase 1: Flexibility of each child
	items := make([]stackItem, n)
	for i := range items {
		lo := measure(i, 0)
		hi := measure(i, available)
		items[i] = stackItem{index: i, flexibility: hi - lo}
	}
	slices.SortStableFunc(items, func(a, b stackItem) int {
		return a.flexibility - b.flexibility
	})

	// Phase 2: Offer equal shares of the remainder, least flexible first
	remaining := max(0, available-spacing*(n-1))
	for pos, item := range items {
		share := remaining / (n - pos)
		size := measure(item.index, share)
		sizes[item.index] = size
		remaining = max(0, remaining-size)
	}
	return sizes
}

// Clamp restricts v to [lo, hi]. If lo > hi, lo wins.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if hi >= lo && v > hi {
		return hi
	}
	return v
}
