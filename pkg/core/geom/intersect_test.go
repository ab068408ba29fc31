package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectCrossing(t *testing.T) {
	in := Intersect(Pt(0, 0), 5, Pt(8, 0), 5)
	require.True(t, in.Ok())

	a, b := in.Points()
	assert.InDelta(t, 4.0, a.X, 1e-9)
	assert.InDelta(t, 3.0, a.Y, 1e-9)
	assert.InDelta(t, 4.0, b.X, 1e-9)
	assert.InDelta(t, -3.0, b.Y, 1e-9)

	// Both points lie on both circles.
	for _, p := range []Point{a, b} {
		assert.InDelta(t, 5.0, p.Distance(Pt(0, 0)), 1e-9)
		assert.InDelta(t, 5.0, p.Distance(Pt(8, 0)), 1e-9)
	}
}

func TestIntersectUnequalRadii(t *testing.T) {
	p1, p2 := Pt(10, 20), Pt(14, 23)
	in := Intersect(p1, 4, p2, 2)
	require.Equal(t, Intersected, in.Kind)

	a, b := in.Points()
	for _, p := range []Point{a, b} {
		assert.InDelta(t, 4.0, p.Distance(p1), 1e-9)
		assert.InDelta(t, 2.0, p.Distance(p2), 1e-9)
	}
}

func TestIntersectTangent(t *testing.T) {
	in := Intersect(Pt(0, 0), 1, Pt(2, 0), 1)
	require.True(t, in.Ok())

	a, b := in.Points()
	assert.Equal(t, a, b, "tangent circles yield identical points")
	assert.InDelta(t, 1.0, a.X, 1e-12)
	assert.InDelta(t, 0.0, a.Y, 1e-12)
}

func TestIntersectFallback(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		r1, r2 float64
	}{
		{"identical circles", Pt(3, 4), Pt(3, 4), 2, 2},
		{"concentric", Pt(3, 4), Pt(3, 4), 2, 5},
		{"disjoint", Pt(0, 0), Pt(10, 0), 2, 3},
		{"nested", Pt(0, 0), Pt(1, 0), 10, 2},
		{"zero radii", Pt(0, 0), Pt(1, 1), 0, 0},
		{"negative radii", Pt(0, 0), Pt(1, 0), -4, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Intersect(tt.p1, tt.r1, tt.p2, tt.r2)
			assert.Equal(t, NoIntersection, in.Kind)

			a, b := in.Points()
			assert.Equal(t, tt.p1, a)
			assert.Equal(t, tt.p2, b)
			assert.True(t, a.IsFinite() && b.IsFinite())
		})
	}
}

func TestIntersectNeverNaN(t *testing.T) {
	// Nearly tangent configurations push r1²-a² slightly below zero.
	for _, d := range []float64{1.9999999999999998, 2, 2.0000000000000004} {
		in := Intersect(Pt(0, 0), 1, Pt(d, 0), 1)
		a, b := in.Points()
		assert.False(t, math.IsNaN(a.X) || math.IsNaN(a.Y), "d=%v", d)
		assert.False(t, math.IsNaN(b.X) || math.IsNaN(b.Y), "d=%v", d)
	}
}

func TestIntersectionKindString(t *testing.T) {
	assert.Equal(t, "intersected", Intersected.String())
	assert.Equal(t, "no-intersection", NoIntersection.String())
}
