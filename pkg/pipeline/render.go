package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/venngen/pkg/core/render/sink"
	"github.com/matzehuels/venngen/pkg/core/venn"
)

// Render generates output artifacts in the requested formats. Formats are
// rendered concurrently; the first failure cancels the rest.
func Render(ctx context.Context, d venn.Diagram, opts Options) (map[string][]byte, error) {
	var (
		mu        sync.Mutex
		artifacts = make(map[string][]byte, len(opts.Formats))
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, format := range opts.Formats {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := renderFormat(d, format, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}
			mu.Lock()
			artifacts[format] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func renderFormat(d venn.Diagram, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderDiagram(d, sink.WithTitle(opts.Title))
	case FormatPNG:
		return sink.RenderPNG(d, sink.WithScale(opts.Scale))
	case FormatPDF:
		svg, err := sink.RenderDiagram(d, sink.WithTitle(opts.Title))
		if err != nil {
			return nil, err
		}
		return sink.RenderPDF(svg)
	case FormatJSON:
		return sink.RenderJSON(d)
	default:
		return nil, ValidateFormat(format)
	}
}
