package layout

import (
	"slices"
	"testing"
)

func fixedChild(n int) func(int) int {
	return func(int) int { return n }
}

func greedyChild() func(int) int {
	return func(p int) int {
		if p == Unspecified {
			return 0
		}
		return p
	}
}

func textChild(ideal int) func(int) int {
	return func(p int) int {
		if p == Unspecified || p > ideal {
			return ideal
		}
		return p
	}
}

func TestDistribute(t *testing.T) {
	type tc struct {
		children  []func(int) int
		available int
		spacing   int
		expected  []int
	}

	tests := map[string]tc{
		"no children": {
			available: 100,
			expected:  []int{},
		},
		"fixed children keep their size": {
			children:  []func(int) int{fixedChild(50), fixedChild(100)},
			available: 300,
			expected:  []int{50, 100},
		},
		"greedy child takes the remainder": {
			children:  []func(int) int{greedyChild(), fixedChild(10)},
			available: 100,
			spacing:   2,
			expected:  []int{88, 10},
		},
		"greedy children split evenly": {
			children:  []func(int) int{greedyChild(), greedyChild()},
			available: 11,
			spacing:   1,
			expected:  []int{5, 5},
		},
		"short text is offered space first": {
			children:  []func(int) int{textChild(10), textChild(2)},
			available: 12,
			expected:  []int{10, 2},
		},
		"text truncates when space runs out": {
			children:  []func(int) int{textChild(10), textChild(10)},
			available: 12,
			expected:  []int{6, 6},
		},
		"unspecified gives ideal sizes": {
			children:  []func(int) int{textChild(7), greedyChild(), fixedChild(3)},
			available: Unspecified,
			spacing:   4,
			expected:  []int{7, 0, 3},
		},
		"rigid children overflow": {
			children:  []func(int) int{fixedChild(50), fixedChild(100)},
			available: 60,
			expected:  []int{50, 100},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Distribute(len(tt.children), tt.available, tt.spacing, func(i, p int) int {
				return tt.children[i](p)
			})
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Distribute() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	type tc struct {
		v, lo, hi int
		expected  int
	}

	tests := map[string]tc{
		"inside":        {v: 5, lo: 0, hi: 10, expected: 5},
		"below":         {v: -1, lo: 0, hi: 10, expected: 0},
		"above":         {v: 11, lo: 0, hi: 10, expected: 10},
		"inverted wins": {v: 3, lo: 8, hi: 4, expected: 8},
		"infinite max":  {v: 1 << 20, lo: 0, hi: Infinity, expected: 1 << 20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.expected)
			}
		})
	}
}
