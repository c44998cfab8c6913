package centerstack

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// text displays one or more lines of text.
type text struct {
	lines []string
	ideal Size
}

// Text creates a view that displays s. Lines are split on '\n'. The ideal
// width is the display width of the widest line; narrower proposals
// truncate lines rather than wrap them.
func Text(s string) View {
	lines := strings.Split(s, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return text{lines: lines, ideal: Size{Width: width, Height: len(lines)}}
}

func (v text) Measure(_ Environment, p Proposal) Dimensions {
	w, h := v.ideal.Width, v.ideal.Height
	if p.Width != Unspecified && p.Width < w {
		w = p.Width
	}
	if p.Height != Unspecified && p.Height < h {
		h = p.Height
	}
	return Dim(w, h)
}

func (v text) Place(env Environment, bounds Rect) *Node {
	fg := env.Foreground()
	return &Node{
		Kind: "text",
		Rect: bounds,
		paint: func(buf *Buffer, r Rect) {
			for i, line := range v.lines {
				if i >= r.Height {
					break
				}
				buf.SetStringClipped(r.X, r.Y+i, line, fg, r)
			}
		},
	}
}
