package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/venngen/pkg/core/venn"
	"github.com/matzehuels/venngen/pkg/observability"
)

// Runner executes the pipeline with logging and observability hooks.
//
// The Runner holds no per-run state. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	layoutStart := time.Now()
	spec, d, err := r.layout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Spec = spec
	result.Diagram = d
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.CircleCount = len(d.Circles)
	result.Stats.LabelCount = len(d.Labels)

	opts.Logger.Debug("computed layout",
		"circles", len(d.Circles),
		"labels", len(d.Labels),
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, err := r.Render(ctx, d, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Layout validates the layout options and computes the diagram.
func (r *Runner) Layout(ctx context.Context, opts Options) (venn.Diagram, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return venn.Diagram{}, err
	}
	_, d, err := r.layout(ctx, opts)
	return d, err
}

func (r *Runner) layout(ctx context.Context, opts Options) (venn.Spec, venn.Diagram, error) {
	if err := ctx.Err(); err != nil {
		return venn.Spec{}, venn.Diagram{}, err
	}

	hooks := observability.Pipeline()
	circles := 2
	if opts.IsThreeCircle() {
		circles = 3
	}
	start := time.Now()
	hooks.OnLayoutStart(ctx, circles)

	spec, d := GenerateLayout(opts)

	hooks.OnLayoutComplete(ctx, len(d.Circles), len(d.Labels), time.Since(start))
	return spec, d, nil
}

// Render validates the render options and produces artifacts for d.
func (r *Runner) Render(ctx context.Context, d venn.Diagram, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	artifacts, err := Render(ctx, d, opts)

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
