package centerstack

import "github.com/grindlemire/centerstack/pkg/debug"

// centering is the guide a Centered view applies, resolved from the
// environment when the view is measured.
type centering uint8

const (
	centerNone centering = iota
	centerHorizontal
	centerVertical
)

func resolveCentering(kind AncestorKind) centering {
	switch kind {
	case AncestorHorizontal:
		return centerHorizontal
	case AncestorVertical:
		return centerVertical
	default:
		return centerNone
	}
}

// key returns the alignment key the centering sets, or nil for none.
func (c centering) key() *AlignmentKey {
	switch c {
	case centerHorizontal:
		return CenteredHorizontal.Key
	case centerVertical:
		return CenteredVertical.Key
	default:
		return nil
	}
}

// apply sets the centering guide on d to d's own midpoint.
func (c centering) apply(d Dimensions) Dimensions {
	key := c.key()
	if key == nil {
		return d
	}
	return d.WithGuide(key, d.Guide(key))
}

// centered marks its child as the element a centered stack centers on.
type centered struct {
	child View
}

// Centered marks child to be centered on the main axis of the nearest
// CenteredHStack or CenteredVStack, regardless of the size of its siblings.
// Outside such a container it has no effect.
func Centered(child View) View {
	return centered{child: child}
}

func (v centered) Measure(env Environment, p Proposal) Dimensions {
	c := resolveCentering(env.Ancestor())
	debug.Log("centered: resolved ancestor", "ancestor", env.Ancestor(), "guide", c.key())
	return c.apply(v.child.Measure(env, p))
}

func (v centered) Place(env Environment, bounds Rect) *Node {
	return v.child.Place(env, bounds)
}
