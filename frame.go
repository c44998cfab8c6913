package centerstack

import "github.com/grindlemire/centerstack/internal/layout"

// FrameOption configures a Frame.
type FrameOption func(*frame)

// frameAxis holds the size limits a frame applies along one axis.
type frameAxis struct {
	fixed    Value
	min, max Value
}

// frame sizes its child and positions it inside the result.
type frame struct {
	width, height frameAxis
	alignment     Alignment
	child         View
}

// Frame wraps child in a frame. A fixed width or height replaces the child's
// size on that axis. Min and max limits instead clamp what the child asks
// for, and a max grows the frame toward the proposed size, so
// WithMaxWidth(Infinity) takes the full width a parent offers. The child is
// placed inside the frame by WithFrameAlignment, centered by default.
func Frame(child View, opts ...FrameOption) View {
	f := &frame{
		width:     frameAxis{fixed: layout.Auto(), min: layout.Auto(), max: layout.Auto()},
		height:    frameAxis{fixed: layout.Auto(), min: layout.Auto(), max: layout.Auto()},
		alignment: Center,
		child:     child,
	}
	for _, opt := range opts {
		opt(f)
	}
	return *f
}

// --- Fixed Size Options ---

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) FrameOption {
	return func(f *frame) {
		f.width.fixed = Fixed(cells)
	}
}

// WithWidthPercent sets the width as a percentage of the proposed width.
func WithWidthPercent(percent float64) FrameOption {
	return func(f *frame) {
		f.width.fixed = Percent(percent)
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) FrameOption {
	return func(f *frame) {
		f.height.fixed = Fixed(cells)
	}
}

// WithHeightPercent sets the height as a percentage of the proposed height.
func WithHeightPercent(percent float64) FrameOption {
	return func(f *frame) {
		f.height.fixed = Percent(percent)
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) FrameOption {
	return func(f *frame) {
		f.width.fixed = Fixed(width)
		f.height.fixed = Fixed(height)
	}
}

// --- Flexible Size Options ---

// WithMinWidth sets the minimum width in terminal cells.
func WithMinWidth(cells int) FrameOption {
	return func(f *frame) {
		f.width.min = Fixed(cells)
	}
}

// WithMaxWidth sets the maximum width in terminal cells. Infinity makes the
// frame as wide as the proposal.
func WithMaxWidth(cells int) FrameOption {
	return func(f *frame) {
		f.width.max = Fixed(cells)
	}
}

// WithMinHeight sets the minimum height in terminal cells.
func WithMinHeight(cells int) FrameOption {
	return func(f *frame) {
		f.height.min = Fixed(cells)
	}
}

// WithMaxHeight sets the maximum height in terminal cells. Infinity makes the
// frame as tall as the proposal.
func WithMaxHeight(cells int) FrameOption {
	return func(f *frame) {
		f.height.max = Fixed(cells)
	}
}

// WithFrameAlignment sets how the child is positioned inside the frame.
func WithFrameAlignment(a Alignment) FrameOption {
	return func(f *frame) {
		f.alignment = a
	}
}

// bounded reports whether a min or max limit is set.
func (f frameAxis) bounded() bool {
	return !f.min.IsAuto() || !f.max.IsAuto()
}

func (f frameAxis) limits(proposed int) (lo, hi int) {
	return f.min.Resolve(proposed, 0), f.max.Resolve(proposed, Infinity)
}

// childProposal is what the frame offers its child along this axis.
func (f frameAxis) childProposal(proposed int) int {
	if !f.fixed.IsAuto() {
		return max(Unspecified, f.fixed.Resolve(proposed, proposed))
	}
	if proposed == Unspecified || !f.bounded() {
		return proposed
	}
	lo, hi := f.limits(proposed)
	return layout.Clamp(proposed, lo, hi)
}

// size is the frame's own size along this axis given the child's.
func (f frameAxis) size(proposed, child int) int {
	if !f.fixed.IsAuto() {
		return max(0, f.fixed.Resolve(proposed, child))
	}
	if !f.bounded() {
		return child
	}
	lo, hi := f.limits(proposed)
	size := child
	if proposed != Unspecified {
		if !f.max.IsAuto() && proposed > size {
			size = min(proposed, hi)
		}
		if !f.min.IsAuto() && proposed < size {
			size = max(proposed, lo)
		}
	}
	return layout.Clamp(size, lo, hi)
}

// arrange measures the child and returns the frame's dimensions along with
// the child's dimensions.
func (v frame) arrange(env Environment, p Proposal) (Dimensions, Dimensions) {
	cp := Propose(v.width.childProposal(p.Width), v.height.childProposal(p.Height))
	cd := v.child.Measure(env, cp)
	own := Dim(v.width.size(p.Width, cd.Width), v.height.size(p.Height, cd.Height))
	return own, cd
}

// offset positions a child measured as cd inside a frame of size outer.
func (v frame) offset(outer Size, cd Dimensions) Point {
	od := Dim(outer.Width, outer.Height)
	h, vert := v.alignment.Horizontal.Key, v.alignment.Vertical.Key
	return layout.Pt(h.Default(od)-cd.Guide(h), vert.Default(od)-cd.Guide(vert))
}

func (v frame) Measure(env Environment, p Proposal) Dimensions {
	own, cd := v.arrange(env, p)
	return own.Inherit(cd, v.offset(own.Size(), cd))
}

func (v frame) Place(env Environment, bounds Rect) *Node {
	_, cd := v.arrange(env, Propose(bounds.Width, bounds.Height))
	childRect := layout.RectAt(bounds.Origin().Add(v.offset(bounds.Size(), cd)), cd.Size())
	return &Node{
		Kind:     "frame",
		Rect:     bounds,
		Children: []*Node{v.child.Place(env, childRect)},
	}
}
