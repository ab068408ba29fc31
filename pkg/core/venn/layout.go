package venn

import (
	"math"

	"github.com/matzehuels/venngen/pkg/core/geom"
)

// outwardStep is the angular offset of the outer label anchors in an
// equilateral three-circle diagram. Circle one faces 180°+30°, circle two
// faces -30° and circle three faces 90° (three steps).
const outwardStep = math.Pi / 6

// Region names the part of the diagram a label belongs to.
type Region string

const (
	RegionFirst       Region = "first"
	RegionSecond      Region = "second"
	RegionThird       Region = "third"
	RegionFirstSecond Region = "first_second"
	RegionFirstThird  Region = "first_third"
	RegionSecondThird Region = "second_third"
	RegionCentral     Region = "central"
)

// Circle is one circle of the diagram.
type Circle struct {
	Center geom.Point `json:"center"`
	Radius float64    `json:"radius"`
	Color  string     `json:"color"`
}

// Label is a piece of text anchored at the middle of its region.
type Label struct {
	Anchor geom.Point `json:"anchor"`
	Text   string     `json:"text"`
	Region Region     `json:"region"`
}

// Diagram is the computed layout of a Spec.
type Diagram struct {
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	Circles []Circle `json:"circles"`
	Labels  []Label  `json:"labels"`
}

// Layout computes circles and labels for s. It is a pure function: equal
// specs always produce identical diagrams.
func Layout(s Spec) Diagram {
	g := newGeometry(s)
	return Diagram{
		Width:   s.Width,
		Height:  s.Height,
		Circles: g.circles(),
		Labels:  g.labels(),
	}
}

// Circles returns the circles of s without computing labels.
func (s Spec) Circles() []Circle { return newGeometry(s).circles() }

// Labels returns the labels of s in their fixed order.
func (s Spec) Labels() []Label { return newGeometry(s).labels() }

// geometry holds the derived centers of one spec.
type geometry struct {
	spec    Spec
	three   bool
	centers map[Ordinal]geom.Point
}

func newGeometry(s Spec) geometry {
	g := geometry{
		spec:  s,
		three: s.HasThird(),
		centers: map[Ordinal]geom.Point{
			First:  geom.Pt(s.Center+s.Overlap-s.Radius, s.Center),
			Second: geom.Pt(s.Center-s.Overlap+s.Radius, s.Center),
		},
	}
	if g.three {
		long := 2 * (s.Radius - s.Overlap)
		g.centers[Third] = geom.Pt(s.Center, s.Center-math.Sqrt(long*long-(long/2)*(long/2)))
	}
	return g
}

func (g geometry) ordinals() []Ordinal {
	if g.three {
		return []Ordinal{First, Second, Third}
	}
	return []Ordinal{First, Second}
}

func (g geometry) circles() []Circle {
	out := make([]Circle, 0, 3)
	for _, o := range g.ordinals() {
		out = append(out, Circle{
			Center: g.centers[o],
			Radius: g.spec.Radius,
			Color:  ColorFor(o),
		})
	}
	return out
}

func (g geometry) labels() []Label {
	s := g.spec
	out := make([]Label, 0, 7)
	add := func(text string, region Region, anchor func() geom.Point) {
		if text == "" {
			return
		}
		out = append(out, Label{Anchor: anchor(), Text: text, Region: region})
	}

	add(s.First, RegionFirst, func() geom.Point { return g.single(First) })
	add(s.Second, RegionSecond, func() geom.Point { return g.single(Second) })
	add(s.FirstSecond, RegionFirstSecond, func() geom.Point { return g.pair(First, Second) })

	if !g.three {
		return out
	}

	add(s.Third, RegionThird, func() geom.Point { return g.single(Third) })
	add(s.Central, RegionCentral, func() geom.Point {
		return geom.Centroid(g.centers[First], g.centers[Second], g.centers[Third])
	})
	add(s.FirstThird, RegionFirstThird, func() geom.Point { return g.pair(First, Third) })
	add(s.SecondThird, RegionSecondThird, func() geom.Point { return g.pair(Second, Third) })
	return out
}

// single returns the anchor of the region covered only by circle o.
func (g geometry) single(o Ordinal) geom.Point {
	c := g.centers[o]
	overlap := g.spec.Overlap

	switch {
	case overlap <= 0:
		return c
	case !g.three && o == First:
		return geom.Pt(c.X-overlap, c.Y)
	case !g.three:
		return geom.Pt(c.X+overlap, c.Y)
	}

	j, k := others(o)
	a, b := g.intersect(j, k).Points()
	inner := geom.Nearest(c, a, b)
	rim := geom.Polar(c, g.spec.Radius, outwardAngle(o))
	return rim.Midpoint(inner)
}

// pair returns the anchor of the region shared by circles i and j but not
// by the third circle. When the third circle does not reach the i/j lens the
// anchor is the chord midpoint.
func (g geometry) pair(i, j Ordinal) geom.Point {
	ci, cj := g.centers[i], g.centers[j]
	if g.spec.Overlap <= 0 || !g.three {
		return ci.Midpoint(cj)
	}

	ck := g.centers[third(i, j)]
	a, b := g.intersect(i, j).Points()
	tip := geom.Farthest(ck, a, b)
	edge := geom.Toward(ck, g.spec.Radius, tip)
	if r := g.spec.Radius; edge.Distance(ci) > r || edge.Distance(cj) > r {
		return a.Midpoint(b)
	}
	return tip.Midpoint(edge)
}

func (g geometry) intersect(i, j Ordinal) geom.Intersection {
	r := g.spec.Radius
	return geom.Intersect(g.centers[i], r, g.centers[j], r)
}

func outwardAngle(o Ordinal) float64 {
	switch o {
	case First:
		return math.Pi + outwardStep
	case Second:
		return -outwardStep
	default:
		return 3 * outwardStep
	}
}

// others returns the two ordinals different from o, in ascending order.
func others(o Ordinal) (Ordinal, Ordinal) {
	switch o {
	case First:
		return Second, Third
	case Second:
		return First, Third
	default:
		return First, Second
	}
}

// third returns the ordinal not in {i, j}.
func third(i, j Ordinal) Ordinal { return First + Second + Third - i - j }
