// Package pkg provides the core libraries for venngen Venn diagram rendering.
//
// # Overview
//
// venngen computes where the circles and labels of a two- or three-circle Venn
// diagram go and writes the result as SVG, PNG, PDF or JSON. The pkg
// directory is organized into three main areas:
//
//  1. [core] - Domain logic (geometry, layout, rendering)
//  2. [pipeline] - Orchestration (layout → render) shared by CLI and server
//  3. Support packages ([config], [io], [errors], [observability], [fonts], [buildinfo])
//
// # Architecture
//
// The data flow through venngen:
//
//	Titles + dimensions (flags, spec file, query string)
//	         ↓
//	    [pipeline] package (defaults + validation)
//	         ↓
//	    [core/venn] package (circle centers + label anchors)
//	         ↓
//	    [core/render/sink] package (SVG, PNG, PDF, JSON)
//
// # Quick Start
//
// Lay out and render a two-circle diagram:
//
//	import (
//	    "github.com/matzehuels/venngen/pkg/core/render/sink"
//	    "github.com/matzehuels/venngen/pkg/core/venn"
//	)
//
//	s := venn.DefaultSpec()
//	s.First, s.Second, s.FirstSecond = "Cats", "Dogs", "Pets"
//	svg, _ := sink.RenderDiagram(venn.Layout(s))
//
// Or run the whole pipeline with defaults and several formats:
//
//	runner := pipeline.NewRunner(logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    First:   "Cats",
//	    Second:  "Dogs",
//	    Formats: []string{"svg", "png"},
//	})
//
// # Main Packages
//
// [core/geom] - Points and circle-circle intersection.
//
// [core/venn] - Diagram spec, circle placement, label placement and the
// fixed circle palette. Pure and deterministic.
//
// [core/render/sink] - Output formats: SVG from a constant skeleton, PNG
// rasterized in-process, PDF through rsvg-convert, JSON layout export.
//
// [pipeline] - Options with defaults and validation, and a Runner that emits
// observability hooks.
//
// [io] - Diagram spec files in JSON or TOML.
//
// [config] - The TOML config file with diagram defaults and server settings.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/core/venn    # Specific package
//	go test -run Example       # Examples only
//
// [core]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/core
// [core/geom]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/core/geom
// [core/venn]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/core/venn
// [core/render/sink]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/core/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/observability
// [fonts]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/venngen/pkg/buildinfo
package pkg
