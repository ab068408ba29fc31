package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidpoint(t *testing.T) {
	assert.Equal(t, Pt(400, 400), Pt(280, 400).Midpoint(Pt(520, 400)))
	assert.Equal(t, Pt(0, 0), Pt(-1, 2).Midpoint(Pt(1, -2)))
}

func TestCentroid(t *testing.T) {
	assert.Equal(t, Point{}, Centroid())
	assert.Equal(t, Pt(2, 3), Centroid(Pt(2, 3)))
	assert.Equal(t, Pt(1, 1), Centroid(Pt(0, 0), Pt(3, 0), Pt(0, 3)))
}

func TestPolar(t *testing.T) {
	c := Pt(100, 100)

	up := Polar(c, 10, math.Pi/2)
	assert.InDelta(t, 100.0, up.X, 1e-9)
	assert.InDelta(t, 90.0, up.Y, 1e-9, "positive angles point up on screen")

	right := Polar(c, 10, 0)
	assert.InDelta(t, 110.0, right.X, 1e-9)
	assert.InDelta(t, 100.0, right.Y, 1e-9)
}

func TestToward(t *testing.T) {
	p := Toward(Pt(0, 0), 5, Pt(30, 40))
	assert.InDelta(t, 3.0, p.X, 1e-9)
	assert.InDelta(t, 4.0, p.Y, 1e-9)

	// Degenerate direction returns the center.
	assert.Equal(t, Pt(7, 7), Toward(Pt(7, 7), 5, Pt(7, 7)))
}

func TestNearestFarthest(t *testing.T) {
	target := Pt(0, 0)
	a, b := Pt(1, 0), Pt(5, 0)

	assert.Equal(t, a, Nearest(target, a, b))
	assert.Equal(t, a, Nearest(target, b, a))
	assert.Equal(t, b, Farthest(target, a, b))
	assert.Equal(t, b, Farthest(target, b, a))

	// Ties resolve to the first argument.
	assert.Equal(t, Pt(0, 1), Nearest(target, Pt(0, 1), Pt(1, 0)))
	assert.Equal(t, Pt(0, 1), Farthest(target, Pt(0, 1), Pt(1, 0)))
}

func TestUnit(t *testing.T) {
	assert.Equal(t, Point{}, Point{}.Unit())
	u := Pt(3, 4).Unit()
	assert.InDelta(t, 1.0, u.Length(), 1e-12)
}

func TestIsFinite(t *testing.T) {
	assert.True(t, Pt(1, 2).IsFinite())
	assert.False(t, Pt(math.NaN(), 0).IsFinite())
	assert.False(t, Pt(0, math.Inf(-1)).IsFinite())
}
