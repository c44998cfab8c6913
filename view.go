package centerstack

import "github.com/grindlemire/centerstack/internal/layout"

// View is an element of the layout tree.
//
// Measure reports the view's dimensions for a proposal and must be a pure
// function of its arguments: parents may measure a child several times with
// different proposals before placing it. Place positions the view inside
// bounds, which a parent derives from an earlier Measure call, and returns
// the placed subtree.
type View interface {
	Measure(env Environment, p Proposal) Dimensions
	Place(env Environment, bounds Rect) *Node
}

// Node is a placed view. The tree of nodes returned by Layout records where
// every view ended up, in absolute cells.
type Node struct {
	// Name is set by Named; empty otherwise.
	Name string
	// Kind is a short description of the view that produced the node.
	Kind string
	// Rect is the absolute position and size assigned to the view.
	Rect Rect
	// Children are the placed children in paint order.
	Children []*Node

	paint func(buf *Buffer, r Rect)
}

// Find returns the first node named name in depth-first order, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Walk visits n and its descendants depth-first until fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Layout measures root against a width x height area and places it in the
// middle of that area, the way a window hosts its root view. It returns the
// placed tree. Layout is deterministic: the same tree and size always produce
// the same result.
func Layout(root View, width, height int) *Node {
	return LayoutIn(Environment{}, root, width, height)
}

// LayoutIn is Layout with an explicit starting environment.
func LayoutIn(env Environment, root View, width, height int) *Node {
	if root == nil {
		return nil
	}
	area := NewRect(0, 0, width, height)
	d := root.Measure(env, layout.ProposeSize(area.Size()))
	bounds := NewRect((width-d.Width)/2, (height-d.Height)/2, d.Width, d.Height)
	return root.Place(env, bounds)
}

// named labels the node its child places.
type named struct {
	name  string
	child View
}

// Named labels child so its placed node can be found with Node.Find.
func Named(name string, child View) View {
	return named{name: name, child: child}
}

func (v named) Measure(env Environment, p Proposal) Dimensions {
	return v.child.Measure(env, p)
}

func (v named) Place(env Environment, bounds Rect) *Node {
	n := v.child.Place(env, bounds)
	if n != nil {
		n.Name = v.name
	}
	return n
}

