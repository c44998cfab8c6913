// layout.go re-exports geometry and alignment types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package centerstack

import "github.com/grindlemire/centerstack/internal/layout"

// Axis is the Horizontal or Vertical direction.
type Axis = layout.Axis

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// Proposal is the size a parent offers a child during measurement.
type Proposal = layout.Proposal

// Dimensions are a measured size plus explicitly set alignment guides.
type Dimensions = layout.Dimensions

// Value represents a frame dimension (fixed, percent, or auto).
type Value = layout.Value

// AlignmentKey identifies an alignment guide. Keys compare by identity.
type AlignmentKey = layout.AlignmentKey

// HorizontalAlignment is an alignment key on the horizontal axis.
type HorizontalAlignment = layout.HorizontalAlignment

// VerticalAlignment is an alignment key on the vertical axis.
type VerticalAlignment = layout.VerticalAlignment

// Alignment pairs a horizontal and a vertical alignment.
type Alignment = layout.Alignment

const (
	// Unspecified asks a view for its ideal size along an axis.
	Unspecified = layout.Unspecified
	// Infinity is an unbounded frame maximum.
	Infinity = layout.Infinity
)

// Built-in alignments.
var (
	Leading  = layout.Leading
	HCenter  = layout.HCenter
	Trailing = layout.Trailing
	Top      = layout.Top
	VCenter  = layout.VCenter
	Bottom   = layout.Bottom
	Center   = layout.Center
)

// NewHorizontalAlignment creates a new, distinct horizontal alignment whose
// value defaults to def.
func NewHorizontalAlignment(name string, def func(Dimensions) int) HorizontalAlignment {
	return layout.NewHorizontalAlignment(name, def)
}

// NewVerticalAlignment creates a new, distinct vertical alignment whose value
// defaults to def.
func NewVerticalAlignment(name string, def func(Dimensions) int) VerticalAlignment {
	return layout.NewVerticalAlignment(name, def)
}

// Propose returns a Proposal for the given width and height.
func Propose(width, height int) Proposal {
	return layout.Propose(width, height)
}

// IdealProposal asks for the ideal size on both axes.
func IdealProposal() Proposal {
	return layout.IdealProposal()
}

// Dim returns Dimensions with the given size and no explicit guides.
func Dim(width, height int) Dimensions {
	return layout.Dim(width, height)
}

// Fixed creates a Value with a fixed cell count.
func Fixed(n int) Value {
	return layout.Fixed(n)
}

// Percent creates a Value representing a percentage of the proposed size.
func Percent(p float64) Value {
	return layout.Percent(p)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}
