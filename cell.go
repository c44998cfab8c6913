package centerstack

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Cell is a single character cell in a Buffer.
// Wide characters (CJK, emoji) occupy two cells; the first cell holds the
// rune, the second is marked as a continuation.
type Cell struct {
	Rune  rune                   // The character (0 for continuation cells)
	Fg    lipgloss.TerminalColor // Foreground colour, nil for default
	Width uint8                  // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, fg lipgloss.TerminalColor) Cell {
	return Cell{Rune: r, Fg: fg, Width: uint8(RuneWidth(r))}
}

// blankCell is the cell a fresh buffer is filled with.
func blankCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// IsContinuation returns true if this cell is the second half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// RuneWidth returns the display width of a rune in terminal cells, treating
// zero-width and control runes as one cell so every rune stays visible.
func RuneWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 1 {
		return 2
	}
	return 1
}
