package geom

import "math"

// IntersectionKind tags the outcome of [Intersect].
type IntersectionKind int

const (
	// NoIntersection means the circles are disjoint, nested or concentric.
	// The points carried by the result are the two input centers.
	NoIntersection IntersectionKind = iota
	// Intersected means the circles cross or touch. Tangent circles yield
	// two identical points.
	Intersected
)

func (k IntersectionKind) String() string {
	if k == Intersected {
		return "intersected"
	}
	return "no-intersection"
}

// Intersection is the result of intersecting two circles.
type Intersection struct {
	Kind IntersectionKind
	A, B Point
}

// Points returns the two points carried by the result, whatever its kind.
func (in Intersection) Points() (Point, Point) { return in.A, in.B }

// Ok reports whether the circles actually intersect.
func (in Intersection) Ok() bool { return in.Kind == Intersected }

// Intersect returns the intersection points of the circle (p1, r1) and the
// circle (p2, r2), found along the radical line of the two circles.
//
// When no real intersection exists the result has kind NoIntersection and
// carries p1 and p2 unchanged. Layout code relies on this fallback to keep
// producing approximate anchors for degenerate inputs.
func Intersect(p1 Point, r1 float64, p2 Point, r2 float64) Intersection {
	d := p1.Distance(p2)
	if d == 0 || d > r1+r2 || d < math.Abs(r1-r2) || math.IsNaN(d) {
		return Intersection{Kind: NoIntersection, A: p1, B: p2}
	}

	// a: distance from p1 to the chord midpoint along the center line.
	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, r1*r1-a*a))

	dir := p2.Sub(p1).Scale(1 / d)
	mid := p1.Add(dir.Scale(a))
	perp := Point{X: -dir.Y, Y: dir.X}.Scale(h)

	return Intersection{
		Kind: Intersected,
		A:    mid.Add(perp),
		B:    mid.Sub(perp),
	}
}
