package centerstack

// CenteredHorizontal is the horizontal guide shared by CenteredHStack and
// children marked with Centered. Unless set explicitly, its value is the
// view's own horizontal midpoint.
var CenteredHorizontal = NewHorizontalAlignment("centered", func(d Dimensions) int {
	return d.Guide(HCenter.Key)
})

// CenteredVertical is the vertical counterpart of CenteredHorizontal, shared
// by CenteredVStack and its Centered children.
var CenteredVertical = NewVerticalAlignment("centered", func(d Dimensions) int {
	return d.Guide(VCenter.Key)
})

// horizontallyCentered aligns on CenteredHorizontal across and centers down.
var horizontallyCentered = Alignment{Horizontal: CenteredHorizontal, Vertical: VCenter}

// verticallyCentered centers across and aligns on CenteredVertical down.
var verticallyCentered = Alignment{Horizontal: HCenter, Vertical: CenteredVertical}

// alignmentGuide sets an explicit value for one key on its child.
type alignmentGuide struct {
	key     *AlignmentKey
	compute func(Dimensions) int
	child   View
}

// HorizontalGuide sets child's value for a to compute(d), where d are the
// child's measured dimensions.
func HorizontalGuide(a HorizontalAlignment, compute func(Dimensions) int, child View) View {
	return alignmentGuide{key: a.Key, compute: compute, child: child}
}

// VerticalGuide sets child's value for a to compute(d).
func VerticalGuide(a VerticalAlignment, compute func(Dimensions) int, child View) View {
	return alignmentGuide{key: a.Key, compute: compute, child: child}
}

func (v alignmentGuide) Measure(env Environment, p Proposal) Dimensions {
	d := v.child.Measure(env, p)
	return d.WithGuide(v.key, v.compute(d))
}

func (v alignmentGuide) Place(env Environment, bounds Rect) *Node {
	return v.child.Place(env, bounds)
}

// hiddenGuide keeps a key its child sets explicitly from reaching ancestors.
type hiddenGuide struct {
	key   *AlignmentKey
	child View
}

func (v hiddenGuide) Measure(env Environment, p Proposal) Dimensions {
	return v.child.Measure(env, p).WithoutGuide(v.key)
}

func (v hiddenGuide) Place(env Environment, bounds Rect) *Node {
	return v.child.Place(env, bounds)
}

// ownGuide reports a key's current value, which for the centered keys is the
// view's own midpoint.
func ownGuide(key *AlignmentKey) func(Dimensions) int {
	return func(d Dimensions) int { return d.Guide(key) }
}
