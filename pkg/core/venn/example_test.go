package venn_test

import (
	"fmt"

	"github.com/matzehuels/venngen/pkg/core/venn"
)

func ExampleLayout() {
	s := venn.DefaultSpec()
	s.First, s.Second, s.FirstSecond = "Cats", "Dogs", "Pets"

	d := venn.Layout(s)
	for _, c := range d.Circles {
		fmt.Printf("circle at (%g, %g) r=%g %s\n", c.Center.X, c.Center.Y, c.Radius, c.Color)
	}
	for _, l := range d.Labels {
		fmt.Printf("%s at (%g, %g)\n", l.Text, l.Anchor.X, l.Anchor.Y)
	}
	// Output:
	// circle at (280, 400) r=160 #FF00D9
	// circle at (520, 400) r=160 #14CCC0
	// Cats at (240, 400)
	// Dogs at (560, 400)
	// Pets at (400, 400)
}
