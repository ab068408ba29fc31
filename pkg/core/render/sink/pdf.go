package sink

import (
	"github.com/matzehuels/venngen/pkg/core/render"
	"github.com/matzehuels/venngen/pkg/errors"
)

// RenderPDF converts an SVG document produced by [RenderSVG] to PDF.
// Requires rsvg-convert on PATH.
func RenderPDF(svg []byte) ([]byte, error) {
	out, err := render.ToPDF(svg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "render pdf")
	}
	return out, nil
}
