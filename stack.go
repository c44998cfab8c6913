package centerstack

import "github.com/grindlemire/centerstack/internal/layout"

// DefaultSpacing is the gap between stack children, in cells, when no
// spacing is configured.
const DefaultSpacing = 1

// StackOption configures a stack.
type StackOption func(*StackConfig)

// StackConfig holds the parameters shared by HStack, VStack and their
// centering variants. It is fixed once the stack is built.
type StackConfig struct {
	// HAlign aligns children across a vertical stack.
	HAlign HorizontalAlignment
	// VAlign aligns children across a horizontal stack.
	VAlign VerticalAlignment
	// Spacing is the gap between children; nil means DefaultSpacing.
	Spacing *int
	// Children are laid out in order along the main axis.
	Children []View
}

// NewStackConfig applies opts over the defaults: centered on the cross axis
// with default spacing.
func NewStackConfig(opts ...StackOption) StackConfig {
	cfg := StackConfig{HAlign: HCenter, VAlign: VCenter}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.HAlign.Key == nil {
		cfg.HAlign = HCenter
	}
	if cfg.VAlign.Key == nil {
		cfg.VAlign = VCenter
	}
	return cfg
}

// spacing returns the configured gap.
func (c StackConfig) spacing() int {
	if c.Spacing == nil {
		return DefaultSpacing
	}
	return max(0, *c.Spacing)
}

// crossKey returns the alignment used across a stack on axis.
func (c StackConfig) crossKey(axis Axis) *AlignmentKey {
	if axis == layout.Horizontal {
		return c.VAlign.Key
	}
	return c.HAlign.Key
}

// WithVerticalAlignment sets how children of a horizontal stack line up.
// Vertical stacks ignore it.
func WithVerticalAlignment(a VerticalAlignment) StackOption {
	return func(c *StackConfig) {
		c.VAlign = a
	}
}

// WithHorizontalAlignment sets how children of a vertical stack line up.
// Horizontal stacks ignore it.
func WithHorizontalAlignment(a HorizontalAlignment) StackOption {
	return func(c *StackConfig) {
		c.HAlign = a
	}
}

// WithSpacing sets the gap between children in cells.
func WithSpacing(cells int) StackOption {
	return func(c *StackConfig) {
		c.Spacing = &cells
	}
}

// WithChildren appends children to the stack.
func WithChildren(children ...View) StackOption {
	return func(c *StackConfig) {
		c.Children = append(c.Children, children...)
	}
}

// stack arranges children along one axis.
type stack struct {
	axis Axis
	cfg  StackConfig
}

// HStack lays children out left to right.
func HStack(opts ...StackOption) View {
	return stack{axis: layout.Horizontal, cfg: NewStackConfig(opts...)}
}

// VStack lays children out top to bottom.
func VStack(opts ...StackOption) View {
	return stack{axis: layout.Vertical, cfg: NewStackConfig(opts...)}
}

// arrangement is the result of measuring a stack's children.
type arrangement struct {
	dims    Dimensions
	child   []Dimensions
	offsets []Point
}

// arrange measures every child against p and positions them relative to the
// stack's origin.
func (s stack) arrange(env Environment, p Proposal) arrangement {
	children := s.cfg.Children
	n := len(children)
	spacing := s.cfg.spacing()
	cross := p.Along(s.axis.Cross())

	measure := func(i, main int) Dimensions {
		return children[i].Measure(env, s.axis.Proposal(main, cross))
	}
	sizes := layout.Distribute(n, p.Along(s.axis), spacing, func(i, main int) int {
		return s.axis.Main(measure(i, main).Size())
	})

	a := arrangement{
		child:   make([]Dimensions, n),
		offsets: make([]Point, n),
	}
	for i := range children {
		a.child[i] = measure(i, sizes[i])
	}

	// Cross axis: line every child up on the alignment key
	key := s.cfg.crossKey(s.axis)
	before, after := 0, 0
	for _, d := range a.child {
		g := d.Guide(key)
		before = max(before, g)
		after = max(after, s.axis.CrossOf(d.Size())-g)
	}

	// Main axis: children in order, separated by spacing
	pos := 0
	for i, d := range a.child {
		if i > 0 {
			pos += spacing
		}
		a.offsets[i] = s.axis.Point(pos, before-d.Guide(key))
		pos += s.axis.Main(d.Size())
	}

	size := s.axis.Size(pos, before+after)
	a.dims = Dim(size.Width, size.Height)
	for i, d := range a.child {
		a.dims = a.dims.Inherit(d, a.offsets[i])
	}
	return a
}

func (s stack) Measure(env Environment, p Proposal) Dimensions {
	return s.arrange(env, p).dims
}

func (s stack) Place(env Environment, bounds Rect) *Node {
	a := s.arrange(env, Propose(bounds.Width, bounds.Height))
	n := &Node{Kind: s.kind(), Rect: bounds}
	for i, child := range s.cfg.Children {
		r := layout.RectAt(bounds.Origin().Add(a.offsets[i]), a.child[i].Size())
		n.Children = append(n.Children, child.Place(env, r))
	}
	return n
}

func (s stack) kind() string {
	if s.axis == layout.Horizontal {
		return "hstack"
	}
	return "vstack"
}
