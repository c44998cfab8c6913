package centerstack

import "github.com/charmbracelet/lipgloss"

// AncestorKind records which stacking axis, if any, the nearest tagging
// ancestor lays its children out along.
type AncestorKind uint8

const (
	// AncestorUnknown means no stacking ancestor has tagged the subtree.
	AncestorUnknown AncestorKind = iota
	// AncestorHorizontal is set by horizontally stacking containers.
	AncestorHorizontal
	// AncestorVertical is set by vertically stacking containers.
	AncestorVertical
)

func (k AncestorKind) String() string {
	switch k {
	case AncestorHorizontal:
		return "horizontal"
	case AncestorVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Environment is the read-only context a view sees while it is measured and
// placed. It is passed by value, so a container overrides it for its subtree
// by handing children a modified copy; siblings and ancestors never see the
// change. The zero value is the root environment.
type Environment struct {
	ancestor   AncestorKind
	foreground lipgloss.TerminalColor
}

// Ancestor returns the kind of the nearest tagging ancestor.
func (e Environment) Ancestor() AncestorKind {
	return e.ancestor
}

// WithAncestor returns a copy of e with the ancestor kind set to kind.
func (e Environment) WithAncestor(kind AncestorKind) Environment {
	e.ancestor = kind
	return e
}

// Foreground returns the colour text and fills draw with, or nil for the
// terminal default.
func (e Environment) Foreground() lipgloss.TerminalColor {
	return e.foreground
}

// WithForeground returns a copy of e that draws with c.
func (e Environment) WithForeground(c lipgloss.TerminalColor) Environment {
	e.foreground = c
	return e
}

// taggedSubtree overrides the ancestor kind for everything below it.
type taggedSubtree struct {
	kind  AncestorKind
	child View
}

// TagSubtree wraps child so every descendant reading Environment.Ancestor
// sees kind, shadowing whatever an outer container set.
func TagSubtree(kind AncestorKind, child View) View {
	return taggedSubtree{kind: kind, child: child}
}

func (v taggedSubtree) Measure(env Environment, p Proposal) Dimensions {
	return v.child.Measure(env.WithAncestor(v.kind), p)
}

func (v taggedSubtree) Place(env Environment, bounds Rect) *Node {
	return v.child.Place(env.WithAncestor(v.kind), bounds)
}

// foregrounded sets the drawing colour for its subtree.
type foregrounded struct {
	color lipgloss.TerminalColor
	child View
}

// Foreground draws child and its descendants with c.
func Foreground(c lipgloss.TerminalColor, child View) View {
	return foregrounded{color: c, child: child}
}

func (v foregrounded) Measure(env Environment, p Proposal) Dimensions {
	return v.child.Measure(env.WithForeground(v.color), p)
}

func (v foregrounded) Place(env Environment, bounds Rect) *Node {
	return v.child.Place(env.WithForeground(v.color), bounds)
}
