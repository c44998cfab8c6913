package centerstack

import "github.com/grindlemire/centerstack/internal/layout"

// zstack overlays its children.
type zstack struct {
	alignment Alignment
	children  []View
}

// ZStack overlays children, later children on top. Every child is offered the
// same proposal and shifted so that its guides for both keys of alignment
// coincide with the other children's.
func ZStack(alignment Alignment, children ...View) View {
	return zstack{alignment: alignment, children: children}
}

func (z zstack) arrange(env Environment, p Proposal) arrangement {
	a := arrangement{
		child:   make([]Dimensions, len(z.children)),
		offsets: make([]Point, len(z.children)),
	}
	h, v := z.alignment.Horizontal.Key, z.alignment.Vertical.Key

	var left, right, above, below int
	for i, child := range z.children {
		d := child.Measure(env, p)
		a.child[i] = d
		left = max(left, d.Guide(h))
		right = max(right, d.Width-d.Guide(h))
		above = max(above, d.Guide(v))
		below = max(below, d.Height-d.Guide(v))
	}
	for i, d := range a.child {
		a.offsets[i] = layout.Pt(left-d.Guide(h), above-d.Guide(v))
	}

	a.dims = Dim(left+right, above+below)
	for i, d := range a.child {
		a.dims = a.dims.Inherit(d, a.offsets[i])
	}
	return a
}

func (z zstack) Measure(env Environment, p Proposal) Dimensions {
	return z.arrange(env, p).dims
}

func (z zstack) Place(env Environment, bounds Rect) *Node {
	a := z.arrange(env, Propose(bounds.Width, bounds.Height))
	n := &Node{Kind: "zstack", Rect: bounds}
	for i, child := range z.children {
		r := layout.RectAt(bounds.Origin().Add(a.offsets[i]), a.child[i].Size())
		n.Children = append(n.Children, child.Place(env, r))
	}
	return n
}
