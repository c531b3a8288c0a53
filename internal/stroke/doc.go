// Package stroke converts stroked polylines into filled outlines.
//
// A stroke is converted to one or more polygons that, filled with the
// non-zero rule, cover exactly the stroked area:
//   - the left offset of the polyline goes forward
//   - the right offset is appended in reverse
//   - caps connect the two offsets at open ends
//   - joins connect consecutive segments on the outer side
//
// Closed subpaths produce two rings of opposite orientation instead of a
// single capped loop.
//
// # Usage
//
//	style := stroke.DefaultStyle()
//	style.Width = 2
//
//	polys := stroke.Expand(p.Subpaths(), style)
//
// The algorithm follows the offset-and-join approach of tiny-skia
// (path/src/stroker.rs) and kurbo (src/stroke.rs), specialized to paths
// whose curves have already been flattened.
package stroke
