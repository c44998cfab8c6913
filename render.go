package centerstack

// Render draws a placed tree into buf. Parents draw before their children,
// and each view draws only inside its own rect.
func Render(buf *Buffer, root *Node) {
	root.Walk(func(n *Node) bool {
		if n.paint != nil {
			if r := n.Rect.Intersect(buf.Rect()); !r.IsEmpty() {
				n.paint(buf, n.Rect)
			}
		}
		return true
	})
}

// RenderString lays out root in a width x height area and returns the
// drawing as plain text.
func RenderString(root View, width, height int) string {
	buf := NewBuffer(width, height)
	Render(buf, Layout(root, width, height))
	return buf.String()
}
