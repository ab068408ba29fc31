package venn

import "github.com/matzehuels/venngen/pkg/errors"

// Default values used when a caller leaves a dimension unset.
const (
	DefaultRadius  = 160.0
	DefaultSize    = 800.0
	DefaultOverlap = 40.0
)

// Spec describes a single diagram. It is consumed by value and never
// modified by this package.
type Spec struct {
	Height  float64 `json:"height"`
	Width   float64 `json:"width"`
	Center  float64 `json:"center"`
	Overlap float64 `json:"overlap"`
	Radius  float64 `json:"radius"`

	First       string `json:"first,omitempty"`
	Second      string `json:"second,omitempty"`
	Central     string `json:"central,omitempty"`
	Third       string `json:"third,omitempty"`
	FirstThird  string `json:"first_third,omitempty"`
	SecondThird string `json:"second_third,omitempty"`
	FirstSecond string `json:"first_second,omitempty"`
}

// NewSpec returns a Spec for a square canvas of the given size with the
// layout origin in its middle. Titles are left empty.
func NewSpec(size, radius, overlap float64) Spec {
	return Spec{
		Height:  size,
		Width:   size,
		Center:  size / 2,
		Overlap: overlap,
		Radius:  radius,
	}
}

// DefaultSpec returns NewSpec(DefaultSize, DefaultRadius, DefaultOverlap).
func DefaultSpec() Spec {
	return NewSpec(DefaultSize, DefaultRadius, DefaultOverlap)
}

// HasThird reports whether the diagram has three circles.
//
// The third title is the only switch: when it is empty the central,
// first-third and second-third titles are ignored even if they are set.
func (s Spec) HasThird() bool { return s.Third != "" }

// CircleCount returns 3 when HasThird is true, 2 otherwise.
func (s Spec) CircleCount() int {
	if s.HasThird() {
		return 3
	}
	return 2
}

// Validate checks that the numeric fields are usable for rendering.
// Layout itself accepts any input; Validate is for callers that want to
// reject nonsense before producing a document.
func (s Spec) Validate() error {
	for _, f := range []struct {
		name     string
		v        float64
		positive bool
	}{
		{"height", s.Height, true},
		{"width", s.Width, true},
		{"radius", s.Radius, true},
		{"center", s.Center, false},
		{"overlap", s.Overlap, false},
	} {
		if err := errors.ValidateNumber(f.name, f.v, f.positive); err != nil {
			return err
		}
	}
	for _, t := range s.titles() {
		if err := errors.ValidateTitle(t); err != nil {
			return err
		}
	}
	return nil
}

func (s Spec) titles() []string {
	return []string{s.First, s.Second, s.FirstSecond, s.Third, s.Central, s.FirstThird, s.SecondThird}
}
