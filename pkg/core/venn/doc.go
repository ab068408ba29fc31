// Package venn computes the layout of two- and three-circle Venn diagrams.
//
// A [Spec] describes the canvas, the shared circle radius, how far the
// circles are pushed into each other, and the title of every region. [Layout]
// turns it into a [Diagram]: the circles (center, radius, fill color) and the
// labels (anchor point, text) that a renderer draws.
//
// # Circle Placement
//
// Circles one and two sit on the horizontal line Y = Center, symmetric
// around X = Center:
//
//	C1 = (Center + Overlap - Radius, Center)
//	C2 = (Center - Overlap + Radius, Center)
//
// The third circle, present only when [Spec.Third] is non-empty, sits above
// the midpoint of the first two at the apex of an isosceles triangle whose
// base and legs measure 2*(Radius-Overlap).
//
// # Label Placement
//
// Labels are anchored inside the region they name:
//
//   - Single-circle regions use the circle center when nothing overlaps. With
//     two overlapping circles the anchor moves away from the lens by Overlap.
//     With three, the anchor is the midpoint between the outer rim of the
//     circle and the nearest crossing of the two other circles.
//   - Pairwise overlaps use the midpoint of the two centers, except in
//     overlapping three-circle diagrams where the anchor sits halfway
//     between the outer tip of the lens and the rim of the third circle.
//   - The central region uses the centroid of the three centers.
//
// Labels with empty text are omitted. The order of the remaining labels is
// fixed: first, second, first-second, third, central, first-third,
// second-third.
//
// # Degenerate Input
//
// [Layout] never fails. When circles that should cross do not (for example a
// non-positive radius, or an overlap larger than the radius) the intersection
// step falls back to the circle centers and the anchors are approximate.
package venn
