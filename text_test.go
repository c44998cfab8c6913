package centerstack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText_Measure(t *testing.T) {
	type tc struct {
		text     string
		proposal Proposal
		expected Size
	}

	tests := map[string]tc{
		"ideal": {
			text:     "hello",
			proposal: IdealProposal(),
			expected: Size{Width: 5, Height: 1},
		},
		"ignores larger proposal": {
			text:     "hello",
			proposal: Propose(80, 24),
			expected: Size{Width: 5, Height: 1},
		},
		"truncates to narrower proposal": {
			text:     "hello",
			proposal: Propose(3, 24),
			expected: Size{Width: 3, Height: 1},
		},
		"widest line": {
			text:     "ab\nabcd\nabc",
			proposal: IdealProposal(),
			expected: Size{Width: 4, Height: 3},
		},
		"wide runes": {
			text:     "日本",
			proposal: IdealProposal(),
			expected: Size{Width: 4, Height: 1},
		},
		"empty": {
			text:     "",
			proposal: IdealProposal(),
			expected: Size{Width: 0, Height: 1},
		},
		"fewer rows than lines": {
			text:     "a\nb\nc",
			proposal: Propose(10, 2),
			expected: Size{Width: 1, Height: 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			d := Text(tt.text).Measure(Environment{}, tt.proposal)
			assert.Equal(t, tt.expected, d.Size())
			assert.False(t, d.HasExplicit())
		})
	}
}

func TestText_Render(t *testing.T) {
	type tc struct {
		text          string
		width, height int
		expected      string
	}

	tests := map[string]tc{
		"centered in area": {
			text:     "hi",
			width:    6,
			height:   1,
			expected: "  hi",
		},
		"truncated": {
			text:     "hello",
			width:    3,
			height:   1,
			expected: "hel",
		},
		"wide rune cut at boundary": {
			text:     "日本",
			width:    3,
			height:   1,
			expected: "日",
		},
		"multi-line": {
			text:     "ab\ncd",
			width:    2,
			height:   2,
			expected: "ab\ncd",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderString(Text(tt.text), tt.width, tt.height))
		})
	}
}
