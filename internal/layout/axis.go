package layout

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota // Left to right
	Vertical               // Top to bottom
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Main returns the component of s along a.
func (a Axis) Main(s Size) int {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// CrossOf returns the component of s perpendicular to a.
func (a Axis) CrossOf(s Size) int {
	return a.Cross().Main(s)
}

// Coord returns the component of p along a.
func (a Axis) Coord(p Point) int {
	if a == Horizontal {
		return p.X
	}
	return p.Y
}

// Size builds a Size from main and cross components.
func (a Axis) Size(main, cross int) Size {
	if a == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// Point builds a Point from main and cross components.
func (a Axis) Point(main, cross int) Point {
	if a == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

// Proposal builds a Proposal from main and cross components.
func (a Axis) Proposal(main, cross int) Proposal {
	if a == Horizontal {
		return Proposal{Width: main, Height: cross}
	}
	return Proposal{Width: cross, Height: main}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}
