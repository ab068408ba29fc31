// Package geom provides the planar primitives used by the Venn layout engine.
//
// Coordinates follow SVG conventions: the origin is the top-left corner of
// the canvas, X grows to the right and Y grows downwards. Angles passed to
// [Polar] are measured counter-clockwise in the usual mathematical sense, so
// an angle of π/2 points towards smaller Y (up on screen).
//
// # Intersections
//
// [Intersect] computes the two points where two circles cross. When the
// circles do not meet (disjoint, nested, or concentric) the result is tagged
// [NoIntersection] and carries the two input centers unchanged, so callers
// always receive finite coordinates:
//
//	in := geom.Intersect(geom.Pt(0, 0), 5, geom.Pt(8, 0), 5)
//	a, b := in.Points() // (4,3) and (4,-3)
//
// Every function in this package is pure and safe for concurrent use.
package geom
