package sink

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
	"text/template"

	"github.com/matzehuels/venngen/pkg/core/venn"
	"github.com/matzehuels/venngen/pkg/errors"
)

// DefaultTitle is the document title used when none is given.
const DefaultTitle = "Venn Diagram showing overlap"

const svgSkeleton = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.0//EN" "http://www.w3.org/TR/2001/REC-SVG-20010904/DTD/svg10.dtd">
<svg height="{{num .Canvas.Height}}" width="{{num .Canvas.Width}}" xmlns="http://www.w3.org/2000/svg" xmlns:svg="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">
  <title>{{xml .Title}}</title>
{{- range .Circles}}
  <circle cx="{{num .Center.X}}" cy="{{num .Center.Y}}" r="{{num .Radius}}" style="fill-opacity: 0.5; fill: {{xml .Color}}"/>
{{- end}}
{{- range .Labels}}
  <text x="{{num .Anchor.X}}" y="{{num .Anchor.Y}}" dominant-baseline="middle" text-anchor="middle">{{xml .Text}}</text>
{{- end}}
</svg>
`

var svgTemplate = template.Must(template.New("venn.svg").Funcs(template.FuncMap{
	"num": FormatNumber,
	"xml": EscapeXML,
}).Parse(svgSkeleton))

// Canvas is the size of the output document.
type Canvas struct {
	Width  float64
	Height float64
}

// CanvasOf returns the canvas of d.
func CanvasOf(d venn.Diagram) Canvas {
	return Canvas{Width: d.Width, Height: d.Height}
}

type svgData struct {
	Canvas  Canvas
	Title   string
	Circles []venn.Circle
	Labels  []venn.Label
}

// RenderSVG interpolates circles and labels into the SVG skeleton. An empty
// title falls back to DefaultTitle. The only possible error is an
// INTERNAL_ERROR from template execution.
func RenderSVG(canvas Canvas, circles []venn.Circle, labels []venn.Label, title string) (string, error) {
	if title == "" {
		title = DefaultTitle
	}

	var buf strings.Builder
	err := svgTemplate.Execute(&buf, svgData{
		Canvas:  canvas,
		Title:   title,
		Circles: circles,
		Labels:  labels,
	})
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "render svg")
	}
	return buf.String(), nil
}

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title string
}

func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// RenderDiagram renders a complete diagram as SVG bytes.
func RenderDiagram(d venn.Diagram, opts ...SVGOption) ([]byte, error) {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}
	svg, err := RenderSVG(CanvasOf(d), d.Circles, d.Labels, r.title)
	if err != nil {
		return nil, err
	}
	return []byte(svg), nil
}

// ErrorSVG returns a small standalone document showing msg. HTTP handlers
// send it in place of a diagram when rendering fails.
func ErrorSVG(msg string) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	buf.WriteString(`<svg height="120" width="480" xmlns="http://www.w3.org/2000/svg">` + "\n")
	buf.WriteString(`  <title>Error</title>` + "\n")
	buf.WriteString(`  <rect width="480" height="120" style="fill: #FFF0F0; stroke: #CC0000"/>` + "\n")
	buf.WriteString(`  <text x="240" y="60" dominant-baseline="middle" text-anchor="middle">`)
	buf.WriteString(EscapeXML(msg))
	buf.WriteString("</text>\n</svg>\n")
	return buf.Bytes()
}

// EscapeXML escapes s for use as XML text or attribute content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// FormatNumber prints f in the shortest form that parses back to f.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
