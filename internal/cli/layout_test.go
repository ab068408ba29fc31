package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/venngen/pkg/core/venn"
)

func TestFormatNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{400, "400"},
		{254.8923, "254.89"},
		{0.5, "0.5"},
		{-12.5, "-12.5"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := formatNum(tt.in); got != tt.want {
			t.Errorf("formatNum(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayoutTables(t *testing.T) {
	s := venn.DefaultSpec()
	s.First = "Cats"
	s.Second = "Dogs"
	s.FirstSecond = "Pets"
	d := venn.Layout(s)

	circles := circleTable(d.Circles)
	for _, want := range []string{"first", "second", "(280, 400)", "(520, 400)", venn.ColorFirst, venn.ColorSecond} {
		if !strings.Contains(circles, want) {
			t.Errorf("circle table missing %q:\n%s", want, circles)
		}
	}
	if strings.Contains(circles, "third") {
		t.Errorf("two-circle table should not list a third circle:\n%s", circles)
	}

	labels := labelTable(d.Labels)
	for _, want := range []string{"first_second", "Pets", "(400, 400)", "(240, 400)"} {
		if !strings.Contains(labels, want) {
			t.Errorf("label table missing %q:\n%s", want, labels)
		}
	}
}
