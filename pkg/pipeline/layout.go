package pipeline

import (
	"github.com/matzehuels/venngen/pkg/core/venn"
)

// GenerateLayout computes the diagram for opts. Options must already have
// their layout defaults applied.
func GenerateLayout(opts Options) (venn.Spec, venn.Diagram) {
	spec := opts.Spec()
	return spec, venn.Layout(spec)
}
