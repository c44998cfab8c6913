package centerstack

import "github.com/grindlemire/centerstack/internal/layout"

// padding insets its child.
type padding struct {
	edges Edges
	child View
}

// Padding adds edges of empty space around child.
func Padding(edges Edges, child View) View {
	return padding{edges: edges, child: child}
}

func (v padding) Measure(env Environment, p Proposal) Dimensions {
	cd := v.child.Measure(env, p.Inset(v.edges))
	d := Dim(cd.Width+v.edges.Horizontal(), cd.Height+v.edges.Vertical())
	return d.Inherit(cd, layout.Pt(v.edges.Left, v.edges.Top))
}

func (v padding) Place(env Environment, bounds Rect) *Node {
	return &Node{
		Kind:     "padding",
		Rect:     bounds,
		Children: []*Node{v.child.Place(env, bounds.Inset(v.edges))},
	}
}
