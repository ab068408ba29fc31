// Package fonts provides the embedded font used for raster output.
//
// The font is the Go Regular typeface shipped with golang.org/x/image, so
// PNG rendering works without any system fonts installed.
package fonts

import (
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name of the embedded font.
const FontFamily = "Go"

// FallbackFontFamily lists fallbacks for viewers without the embedded font.
const FallbackFontFamily = `'Go', 'Helvetica Neue', Arial, sans-serif`

// DefaultSize is the label size in points at scale 1.
const DefaultSize = 16.0

// RegularTTF returns the raw TTF data.
func RegularTTF() []byte {
	return goregular.TTF
}

// Parsed font source, shared by every caller (computed once on first access).
var (
	regular     *text.FontSource
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the shared font source. The source is parsed once and
// must not be closed by callers.
func Regular() (*text.FontSource, error) {
	regularOnce.Do(func() {
		regular, regularErr = text.NewFontSource(goregular.TTF)
	})
	return regular, regularErr
}

// Face returns a face of the regular font at size points.
func Face(size float64) (text.Face, error) {
	src, err := Regular()
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}
