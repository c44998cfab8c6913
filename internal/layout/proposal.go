package layout

import "math"

const (
	// Unspecified asks a view for its ideal size along an axis.
	Unspecified = -1

	// Infinity is an unbounded size limit. Frames use it as a maximum to
	// take all of the space a parent proposes.
	Infinity = math.MaxInt32
)

// Proposal is the size a parent offers a child during measurement.
// Either component may be Unspecified.
type Proposal struct {
	Width, Height int
}

// Propose returns a Proposal for the given width and height.
func Propose(width, height int) Proposal {
	return Proposal{Width: width, Height: height}
}

// IdealProposal asks for the ideal size on both axes.
func IdealProposal() Proposal {
	return Proposal{Width: Unspecified, Height: Unspecified}
}

// ProposeSize returns a fully specified Proposal for s.
func ProposeSize(s Size) Proposal {
	return Proposal{Width: s.Width, Height: s.Height}
}

// Along returns the component of the proposal on axis a.
func (p Proposal) Along(a Axis) int {
	if a == Horizontal {
		return p.Width
	}
	return p.Height
}

// Inset shrinks the specified components by e, leaving Unspecified alone.
func (p Proposal) Inset(e Edges) Proposal {
	if p.Width != Unspecified {
		p.Width = max(0, p.Width-e.Horizontal())
	}
	if p.Height != Unspecified {
		p.Height = max(0, p.Height-e.Vertical())
	}
	return p
}

// Or replaces Unspecified components with the matching components of s.
func (p Proposal) Or(s Size) Size {
	out := s
	if p.Width != Unspecified {
		out.Width = p.Width
	}
	if p.Height != Unspecified {
		out.Height = p.Height
	}
	return out
}
