package centerstack

import "github.com/grindlemire/centerstack/internal/layout"

// CenteredHStack lays children out left to right like HStack, but a child
// wrapped in Centered is placed on the horizontal center line of the space
// the container is offered, regardless of the width of its siblings. Without a
// Centered child the whole row is centered.
//
// Children line up vertically by WithVerticalAlignment, centered by default.
func CenteredHStack(opts ...StackOption) View {
	return centeredStack(layout.Horizontal, NewStackConfig(opts...))
}

// CenteredVStack is the vertical counterpart of CenteredHStack: a Centered
// child sits on the vertical center line of the offered space.
//
// Children line up horizontally by WithHorizontalAlignment, centered by
// default.
func CenteredVStack(opts ...StackOption) View {
	return centeredStack(layout.Vertical, NewStackConfig(opts...))
}

// centeredStack overlays a zero-thickness spacer that spans the main axis with
// the real stack. The spacer reports its own midpoint on the shared centering
// key, which fixes the reference line; the stack reports the Centered child's
// midpoint on the same key, and the overlay lines the two up. The key is
// hidden from ancestors, so an enclosing stack of the same axis only sees
// children it marked itself.
func centeredStack(axis Axis, cfg StackConfig) View {
	var (
		spacer View
		align  Alignment
		kind   AncestorKind
		key    *AlignmentKey
	)
	if axis == layout.Horizontal {
		spacer = HorizontalGuide(CenteredHorizontal, ownGuide(CenteredHorizontal.Key),
			Frame(Clear(), WithHeight(0), WithMaxWidth(Infinity)))
		align = horizontallyCentered
		kind = AncestorHorizontal
		key = CenteredHorizontal.Key
	} else {
		spacer = VerticalGuide(CenteredVertical, ownGuide(CenteredVertical.Key),
			Frame(Clear(), WithWidth(0), WithMaxHeight(Infinity)))
		align = verticallyCentered
		kind = AncestorVertical
		key = CenteredVertical.Key
	}
	overlay := ZStack(align, spacer, TagSubtree(kind, stack{axis: axis, cfg: cfg}))
	return hiddenGuide{key: key, child: overlay}
}
