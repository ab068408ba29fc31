package geom

import "math"

// Point is a position on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Length returns the distance of p from the origin.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return q.Sub(p).Length() }

// Unit returns p scaled to length 1. The zero vector is returned unchanged.
func (p Point) Unit() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return p.Scale(1 / l)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Centroid returns the unweighted average of pts.
// It returns the zero Point when pts is empty.
func Centroid(pts ...Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Scale(1 / float64(len(pts)))
}

// Polar returns the point at distance r from center in direction angle
// (radians, counter-clockwise, Y pointing up on screen).
func Polar(center Point, r, angle float64) Point {
	return Point{
		X: center.X + r*math.Cos(angle),
		Y: center.Y - r*math.Sin(angle),
	}
}

// Toward returns the point at distance r from center in the direction of
// target. If target equals center the center itself is returned.
func Toward(center Point, r float64, target Point) Point {
	dir := target.Sub(center).Unit()
	return center.Add(dir.Scale(r))
}

// Nearest returns whichever of a and b is closer to target.
// Ties resolve to a.
func Nearest(target, a, b Point) Point {
	if target.Distance(b) < target.Distance(a) {
		return b
	}
	return a
}

// Farthest returns whichever of a and b is further from target.
// Ties resolve to a.
func Farthest(target, a, b Point) Point {
	if target.Distance(b) > target.Distance(a) {
		return b
	}
	return a
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}
