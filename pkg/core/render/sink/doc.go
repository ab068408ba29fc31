// Package sink turns a computed [venn.Diagram] into output documents.
//
// # Overview
//
// A "sink" consumes the result of [venn.Layout] and produces bytes in one
// output format:
//
//   - SVG: the canonical document, interpolated into a fixed skeleton
//   - PNG: rasterized in-process with an embedded font
//   - PDF: converted from the SVG (requires rsvg-convert)
//   - JSON: the layout itself, for other tools
//
// # SVG Output
//
// [RenderSVG] writes an XML declaration, the SVG 1.0 doctype and an <svg>
// root sized to the canvas. Each circle becomes a half-transparent <circle>
// filled with its palette color; each label becomes a <text> centered on
// its anchor. Titles are XML-escaped, numbers use the shortest
// representation that round-trips.
//
//	d := venn.Layout(spec)
//	svg, err := sink.RenderDiagram(d, sink.WithTitle("Pets"))
//
// # PNG Output
//
// [RenderPNG] draws the same picture with [github.com/gogpu/gg]. Use
// [WithScale] for high-DPI output:
//
//	png, err := sink.RenderPNG(d, sink.WithScale(2))
//
// # PDF Output
//
// [RenderPDF] pipes an SVG document through rsvg-convert:
//
//	brew install librsvg      # macOS
//	apt install librsvg2-bin  # Linux
package sink
