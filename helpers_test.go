package centerstack

import (
	"fmt"
	"testing"
)

// box is a named, fixed-size filled view.
func box(name string, w, h int) View {
	return Named(name, Frame(Fill('#'), WithSize(w, h)))
}

// rectOf returns the rect of the node named name.
func rectOf(t *testing.T, root *Node, name string) Rect {
	t.Helper()
	n := root.Find(name)
	if n == nil {
		t.Fatalf("node %q not found", name)
	}
	return n.Rect
}

// placedRects flattens a placed tree into kind/rect pairs in paint order.
func placedRects(root *Node) []string {
	var out []string
	root.Walk(func(n *Node) bool {
		out = append(out, n.Kind+":"+n.Name+":"+rectString(n.Rect))
		return true
	})
	return out
}

func rectString(r Rect) string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// probe records the ancestor kind it was measured under.
type probe struct {
	seen *AncestorKind
	size Size
}

func (p probe) Measure(env Environment, _ Proposal) Dimensions {
	*p.seen = env.Ancestor()
	return Dim(p.size.Width, p.size.Height)
}

func (p probe) Place(_ Environment, bounds Rect) *Node {
	return &Node{Kind: "probe", Rect: bounds}
}
