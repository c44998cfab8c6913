package centerstack

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Buffer is a 2D grid of cells that placed views are drawn into.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a grid of the specified dimensions filled with spaces.
func NewBuffer(width, height int) *Buffer {
	width, height = max(0, width), max(0, height)
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = blankCell()
	}
	return &Buffer{cells: cells, width: width, height: height}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if !b.Rect().Contains(x, y) {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y), or an empty Cell out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.cells[i]
}

// SetCell sets the cell at (x, y). Does nothing out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if i := b.idx(x, y); i >= 0 {
		b.cells[i] = c
	}
}

// SetRune sets a rune at (x, y). Wide runes also claim the next cell, and any
// wide rune they overlap is cleared.
func (b *Buffer) SetRune(x, y int, r rune, fg lipgloss.TerminalColor) {
	if b.idx(x, y) < 0 {
		return
	}

	width := RuneWidth(r)
	current := b.Cell(x, y)
	if current.IsContinuation() || current.Width == 2 {
		b.clearWideCharAt(x, y)
	}
	if width == 2 && x+1 < b.width {
		if next := b.Cell(x+1, y); next.Width == 2 {
			b.clearWideCharAt(x+1, y)
		}
	}

	// A wide rune in the last column can't fit
	if width == 2 && x+1 >= b.width {
		b.SetCell(x, y, NewCell(' ', fg))
		return
	}

	b.SetCell(x, y, Cell{Rune: r, Fg: fg, Width: uint8(width)})
	if width == 2 {
		b.SetCell(x+1, y, Cell{Fg: fg})
	}
}

// clearWideCharAt blanks the wide character covering (x, y).
func (b *Buffer) clearWideCharAt(x, y int) {
	cell := b.Cell(x, y)
	switch {
	case cell.IsContinuation():
		b.SetCell(x-1, y, blankCell())
		b.SetCell(x, y, blankCell())
	case cell.Width == 2:
		b.SetCell(x, y, blankCell())
		b.SetCell(x+1, y, blankCell())
	}
}

// SetStringClipped writes s starting at (x, y), dropping anything outside
// clip. Returns the display width written.
func (b *Buffer) SetStringClipped(x, y int, s string, fg lipgloss.TerminalColor, clip Rect) int {
	if y < clip.Y || y >= clip.Bottom() {
		return 0
	}

	written := 0
	curX := x
	for _, r := range s {
		width := RuneWidth(r)
		if curX >= clip.Right() {
			break
		}
		if curX >= clip.X && curX+width <= clip.Right() {
			b.SetRune(curX, y, r, fg)
			written += width
		}
		curX += width
	}
	return written
}

// Fill fills rect with r.
func (b *Buffer) Fill(rect Rect, r rune, fg lipgloss.TerminalColor) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	width := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if width == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', fg)
				x++
				continue
			}
			b.SetRune(x, y, r, fg)
			x += width
		}
	}
}

// String returns the buffer as plain text, one line per row, with trailing
// spaces trimmed.
func (b *Buffer) String() string {
	lines := make([]string, b.height)
	for y := range b.height {
		var sb strings.Builder
		for x := range b.width {
			c := b.Cell(x, y)
			if c.IsContinuation() {
				continue
			}
			sb.WriteRune(c.Rune)
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return strings.Join(lines, "\n")
}

// Styled returns the buffer as text with foreground colours applied through
// lipgloss. Runs of cells sharing a colour are rendered together.
func (b *Buffer) Styled() string {
	lines := make([]string, b.height)
	for y := range b.height {
		var (
			sb  strings.Builder
			run strings.Builder
			fg  lipgloss.TerminalColor
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if fg == nil {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(fg).Render(run.String()))
			}
			run.Reset()
		}
		for x := range b.width {
			c := b.Cell(x, y)
			if c.IsContinuation() {
				continue
			}
			if c.Fg != fg {
				flush()
				fg = c.Fg
			}
			run.WriteRune(c.Rune)
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
