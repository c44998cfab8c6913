package centerstack

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestNewBuffer(t *testing.T) {
	type tc struct {
		width  int
		height int
	}

	tests := map[string]tc{
		"standard size": {
			width:  80,
			height: 24,
		},
		"single cell": {
			width:  1,
			height: 1,
		},
		"zero width": {
			width:  0,
			height: 10,
		},
		"negative dimensions": {
			width:  -5,
			height: -3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(tt.width, tt.height)

			expectedWidth := max(0, tt.width)
			expectedHeight := max(0, tt.height)

			if b.Width() != expectedWidth {
				t.Errorf("Width() = %d, want %d", b.Width(), expectedWidth)
			}
			if b.Height() != expectedHeight {
				t.Errorf("Height() = %d, want %d", b.Height(), expectedHeight)
			}

			rect := b.Rect()
			if rect.X != 0 || rect.Y != 0 || rect.Width != expectedWidth || rect.Height != expectedHeight {
				t.Errorf("Rect() = %+v, want {0, 0, %d, %d}", rect, expectedWidth, expectedHeight)
			}
		})
	}
}

func TestBuffer_InitializedWithSpaces(t *testing.T) {
	b := NewBuffer(5, 3)

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			cell := b.Cell(x, y)
			if cell.Rune != ' ' {
				t.Errorf("Cell(%d, %d).Rune = %q, want ' '", x, y, cell.Rune)
			}
			if cell.Fg != nil {
				t.Errorf("Cell(%d, %d) has a foreground", x, y)
			}
			if cell.Width != 1 {
				t.Errorf("Cell(%d, %d).Width = %d, want 1", x, y, cell.Width)
			}
		}
	}
}

func TestBuffer_SetCell_GetCell(t *testing.T) {
	type tc struct {
		x, y     int
		cell     Cell
		expected Cell // empty if out of bounds
	}

	red := lipgloss.Color("1")

	tests := map[string]tc{
		"in bounds": {
			x:        2,
			y:        1,
			cell:     NewCell('A', red),
			expected: NewCell('A', red),
		},
		"bottom-right corner": {
			x:        4,
			y:        2,
			cell:     NewCell('C', red),
			expected: NewCell('C', red),
		},
		"out of bounds x": {
			x:        5,
			y:        0,
			cell:     NewCell('D', red),
			expected: Cell{},
		},
		"negative y": {
			x:        0,
			y:        -1,
			cell:     NewCell('E', red),
			expected: Cell{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(5, 3)
			b.SetCell(tt.x, tt.y, tt.cell)
			assert.Equal(t, tt.expected, b.Cell(tt.x, tt.y))
		})
	}
}

func TestBuffer_Fill(t *testing.T) {
	b := NewBuffer(10, 5)
	green := lipgloss.Color("2")

	b.Fill(NewRect(2, 1, 4, 2), '#', green)

	for y := 1; y <= 2; y++ {
		for x := 2; x <= 5; x++ {
			cell := b.Cell(x, y)
			if cell.Rune != '#' {
				t.Errorf("Cell(%d, %d).Rune = %q, want '#'", x, y, cell.Rune)
			}
			if cell.Fg != green {
				t.Errorf("Cell(%d, %d).Fg = %v, want %v", x, y, cell.Fg, green)
			}
		}
	}

	if b.Cell(1, 1).Rune != ' ' {
		t.Error("Cell outside fill rect should be unchanged")
	}
	if b.Cell(6, 1).Rune != ' ' {
		t.Error("Cell outside fill rect should be unchanged")
	}
}

func TestBuffer_Fill_WideChar(t *testing.T) {
	b := NewBuffer(10, 3)

	b.Fill(NewRect(0, 0, 6, 1), '好', nil)

	for i := 0; i < 3; i++ {
		x := i * 2
		if b.Cell(x, 0).Rune != '好' {
			t.Errorf("Cell(%d, 0).Rune = %q, want '好'", x, b.Cell(x, 0).Rune)
		}
		if !b.Cell(x+1, 0).IsContinuation() {
			t.Errorf("Cell(%d, 0) should be continuation", x+1)
		}
	}
}

func TestBuffer_Fill_WideCharOddWidth(t *testing.T) {
	b := NewBuffer(10, 1)

	b.Fill(NewRect(0, 0, 5, 1), '好', nil)

	// Two wide runes fit; the last column is padded
	assert.Equal(t, "好好", b.String())
	assert.Equal(t, ' ', b.Cell(4, 0).Rune)
}

func TestBuffer_Fill_ClipsToBuffer(t *testing.T) {
	b := NewBuffer(5, 3)

	b.Fill(NewRect(-1, -1, 10, 10), 'X', nil)

	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			if b.Cell(x, y).Rune != 'X' {
				t.Errorf("Cell(%d, %d).Rune = %q, want 'X'", x, y, b.Cell(x, y).Rune)
			}
		}
	}
}

func TestBuffer_String(t *testing.T) {
	type tc struct {
		paint    func(b *Buffer)
		expected string
	}

	tests := map[string]tc{
		"blank": {
			paint:    func(*Buffer) {},
			expected: "\n",
		},
		"trailing spaces trimmed": {
			paint: func(b *Buffer) {
				b.SetStringClipped(1, 0, "ab", nil, b.Rect())
			},
			expected: " ab\n",
		},
		"wide runes": {
			paint: func(b *Buffer) {
				b.SetStringClipped(0, 1, "日本", nil, b.Rect())
			},
			expected: "\n日本",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer(6, 2)
			tt.paint(b)
			assert.Equal(t, tt.expected, b.String())
		})
	}
}

func TestBuffer_Styled(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	b := NewBuffer(4, 1)
	b.SetStringClipped(0, 0, "ab", lipgloss.Color("1"), b.Rect())
	b.SetStringClipped(2, 0, "cd", nil, b.Rect())

	styled := b.Styled()
	assert.Contains(t, styled, "\x1b[")
	assert.True(t, strings.HasSuffix(styled, "cd"), "uncoloured run is written as is: %q", styled)
	assert.Equal(t, "abcd", ansi.Strip(styled))
}

func TestBuffer_Styled_NoColourMatchesText(t *testing.T) {
	b := NewBuffer(3, 2)
	b.SetStringClipped(0, 0, "abc", nil, b.Rect())
	b.SetStringClipped(0, 1, "x", nil, b.Rect())

	assert.Equal(t, "abc\nx  ", b.Styled())
}

