// Package layout implements the geometry and measurement primitives behind the
// view tree: rectangles, edges, axes, size proposals, alignment keys and the
// main-axis space distribution used by stacks.
//
// Layout is two-pass. Views first report [Dimensions] for a [Proposal], then
// their parent places them inside a [Rect]. Alignment keys carry identity, so
// only guides built from the same key line up with each other.
// Types are re-exported through the root centerstack package for public
// consumption.
package layout
