package centerstack

// fill takes all the space it is offered.
type fill struct {
	r       rune
	visible bool
}

// Fill creates a view that takes all the space it is offered and paints it
// with r. Asked for its ideal size it reports zero.
func Fill(r rune) View {
	return fill{r: r, visible: true}
}

// Clear is an invisible Fill. It shapes layout without drawing anything.
func Clear() View {
	return fill{}
}

func (v fill) Measure(_ Environment, p Proposal) Dimensions {
	return Dim(max(0, p.Width), max(0, p.Height))
}

func (v fill) Place(env Environment, bounds Rect) *Node {
	n := &Node{Kind: "clear", Rect: bounds}
	if v.visible {
		fg := env.Foreground()
		n.Kind = "fill"
		n.paint = func(buf *Buffer, r Rect) {
			buf.Fill(r, v.r, fg)
		}
	}
	return n
}
