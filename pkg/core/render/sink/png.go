package sink

import (
	"bytes"
	"math"

	"fortio.org/safecast"
	"github.com/gogpu/gg"

	"github.com/matzehuels/venngen/pkg/core/venn"
	"github.com/matzehuels/venngen/pkg/errors"
	"github.com/matzehuels/venngen/pkg/fonts"
)

// DefaultScale is the PNG scale factor used when none is given.
const DefaultScale = 1.0

// fillOpacity matches the fill-opacity of the SVG circles.
const fillOpacity = 0.5

type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	fontSize   float64
	background string
}

// WithScale multiplies every coordinate and the font size by scale.
func WithScale(scale float64) PNGOption { return func(r *pngRenderer) { r.scale = scale } }

// WithFontSize sets the label size in points at scale 1.
func WithFontSize(size float64) PNGOption { return func(r *pngRenderer) { r.fontSize = size } }

// WithBackground sets the background color as a hex string.
func WithBackground(hex string) PNGOption { return func(r *pngRenderer) { r.background = hex } }

// RenderPNG rasterizes d. Circles are filled at 50% opacity in palette
// order, labels are centered on their anchors in black.
func RenderPNG(d venn.Diagram, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: DefaultScale, fontSize: fonts.DefaultSize, background: "#FFFFFF"}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) || math.IsInf(r.scale, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be a positive number, got %v", r.scale)
	}

	w, err := pixels(d.Width, r.scale)
	if err != nil {
		return nil, err
	}
	h, err := pixels(d.Height, r.scale)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	dc.ClearWithColor(gg.Hex(r.background))

	for _, c := range d.Circles {
		dc.SetFillBrush(gg.SolidHex(c.Color).WithAlpha(fillOpacity))
		dc.DrawCircle(c.Center.X*r.scale, c.Center.Y*r.scale, c.Radius*r.scale)
		if err := dc.Fill(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "fill circle")
		}
	}

	if len(d.Labels) > 0 {
		face, err := fonts.Face(r.fontSize * r.scale)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "load font")
		}
		dc.SetFont(face)
		dc.SetHexColor("#000000")
		for _, l := range d.Labels {
			dc.DrawStringAnchored(l.Text, l.Anchor.X*r.scale, l.Anchor.Y*r.scale, 0.5, 0.5)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// pixels converts a canvas dimension to a pixel count, rounding up.
func pixels(v, scale float64) (int, error) {
	n, err := safecast.Convert[int](math.Ceil(v * scale))
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidDimension, err, "canvas dimension %g", v)
	}
	if n <= 0 {
		return 0, errors.New(errors.ErrCodeInvalidDimension, "canvas dimension must be positive, got %g", v)
	}
	return n, nil
}
