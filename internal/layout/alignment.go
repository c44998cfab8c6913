package layout

// AlignmentKey identifies an alignment guide on one axis. Keys compare by
// pointer identity: two keys built by separate NewAlignmentKey calls never
// line up with each other, even when their defaults agree.
type AlignmentKey struct {
	name  string
	axis  Axis
	value func(Dimensions) int
}

// NewAlignmentKey creates a key on axis whose value, for views that do not
// set it explicitly, is computed by def.
func NewAlignmentKey(name string, axis Axis, def func(Dimensions) int) *AlignmentKey {
	return &AlignmentKey{name: name, axis: axis, value: def}
}

// Name returns the key's debug name.
func (k *AlignmentKey) Name() string { return k.name }

// Axis returns the axis the key measures along.
func (k *AlignmentKey) Axis() Axis { return k.axis }

// Default returns the key's value for d, ignoring explicit guides on d.
func (k *AlignmentKey) Default(d Dimensions) int {
	if k == nil || k.value == nil {
		return 0
	}
	return k.value(d)
}

func (k *AlignmentKey) String() string {
	if k == nil {
		return "<nil>"
	}
	return k.Name()
}

// HorizontalAlignment is an alignment key that positions views along the
// horizontal axis.
type HorizontalAlignment struct {
	Key *AlignmentKey
}

// VerticalAlignment is an alignment key that positions views along the
// vertical axis.
type VerticalAlignment struct {
	Key *AlignmentKey
}

// NewHorizontalAlignment creates a new, distinct horizontal alignment.
func NewHorizontalAlignment(name string, def func(Dimensions) int) HorizontalAlignment {
	return HorizontalAlignment{Key: NewAlignmentKey(name, Horizontal, def)}
}

// NewVerticalAlignment creates a new, distinct vertical alignment.
func NewVerticalAlignment(name string, def func(Dimensions) int) VerticalAlignment {
	return VerticalAlignment{Key: NewAlignmentKey(name, Vertical, def)}
}

// Alignment pairs a horizontal and a vertical alignment.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// Built-in alignments.
var (
	Leading  = NewHorizontalAlignment("leading", func(Dimensions) int { return 0 })
	HCenter  = NewHorizontalAlignment("center", func(d Dimensions) int { return d.Width / 2 })
	Trailing = NewHorizontalAlignment("trailing", func(d Dimensions) int { return d.Width })

	Top     = NewVerticalAlignment("top", func(Dimensions) int { return 0 })
	VCenter = NewVerticalAlignment("center", func(d Dimensions) int { return d.Height / 2 })
	Bottom  = NewVerticalAlignment("bottom", func(d Dimensions) int { return d.Height })

	Center = Alignment{Horizontal: HCenter, Vertical: VCenter}
)

// Dimensions are the measured size of a view plus any alignment guides it
// sets explicitly. Guide values are offsets from the view's own origin.
type Dimensions struct {
	Width, Height int

	guides map[*AlignmentKey]int
}

// Dim returns Dimensions with the given size and no explicit guides.
func Dim(width, height int) Dimensions {
	return Dimensions{Width: width, Height: height}
}

// Size returns the measured size.
func (d Dimensions) Size() Size {
	return Size{Width: d.Width, Height: d.Height}
}

// Guide returns the value of key for this view: the explicit value if one
// was set, otherwise the key's default.
func (d Dimensions) Guide(key *AlignmentKey) int {
	if v, ok := d.guides[key]; ok {
		return v
	}
	return key.Default(d)
}

// Explicit returns the explicitly set value for key, if any.
func (d Dimensions) Explicit(key *AlignmentKey) (int, bool) {
	v, ok := d.guides[key]
	return v, ok
}

// HasExplicit reports whether any guide was set explicitly.
func (d Dimensions) HasExplicit() bool {
	return len(d.guides) > 0
}

// WithGuide returns a copy of d with key set to value.
// The receiver is not modified.
func (d Dimensions) WithGuide(key *AlignmentKey, value int) Dimensions {
	if key == nil {
		return d
	}
	guides := make(map[*AlignmentKey]int, len(d.guides)+1)
	for k, v := range d.guides {
		guides[k] = v
	}
	guides[key] = value
	d.guides = guides
	return d
}

// WithoutGuide returns a copy of d with no explicit value for key, so the
// key falls back to its default. The receiver is not modified.
func (d Dimensions) WithoutGuide(key *AlignmentKey) Dimensions {
	if _, ok := d.guides[key]; !ok {
		return d
	}
	guides := make(map[*AlignmentKey]int, len(d.guides)-1)
	for k, v := range d.guides {
		if k != key {
			guides[k] = v
		}
	}
	d.guides = guides
	return d
}

// Inherit copies the explicit guides of a child placed at offset into d.
// Keys d already sets explicitly are kept, so the first child to set a key
// wins when called in child order.
func (d Dimensions) Inherit(child Dimensions, offset Point) Dimensions {
	if len(child.guides) == 0 {
		return d
	}
	guides := make(map[*AlignmentKey]int, len(d.guides)+len(child.guides))
	for k, v := range d.guides {
		guides[k] = v
	}
	for k, v := range child.guides {
		if _, ok := guides[k]; ok {
			continue
		}
		guides[k] = v + k.Axis().Coord(offset)
	}
	d.guides = guides
	return d
}
