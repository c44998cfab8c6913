// Package centerstack provides stack containers that center one child
// relative to the available space, independent of the size of its siblings.
//
// Views form an immutable tree. Layout is synchronous and two-pass: every view
// first reports its [Dimensions] for a size proposal, then its parent places it
// inside a [Rect]. An [Environment] value flows down the tree during both
// passes; containers override it for their subtree by passing a modified copy.
//
// [CenteredHStack] and [CenteredVStack] overlay an invisible full-span spacer
// with the real stack and align both on a shared alignment key. A child wrapped
// in [Centered] reads the nearest stack's axis from the environment and reports
// its own midpoint on that key, so it lands on the center line of the
// container no matter how wide its siblings are. Outside a centered stack
// [Centered] changes nothing.
//
// Placed trees can be drawn into a [Buffer] for inspection.
package centerstack
