// Package pipeline provides the diagram pipeline shared by the CLI and the
// HTTP server.
//
// The pipeline has two stages:
//
//  1. Layout: turn titles and dimensions into circles and labels
//  2. Render: produce output in one or more formats (SVG, PNG, PDF, JSON)
//
// Centralizing defaults and validation here keeps every entry point
// consistent: a request to /venn.svg and `venngen render` with the same
// inputs produce the same bytes.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    First:   "Cats",
//	    Second:  "Dogs",
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	d, err := runner.Layout(ctx, opts)
//	artifacts, err := runner.Render(ctx, d, opts)
package pipeline

import (
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/venngen/pkg/core/render/sink"
	"github.com/matzehuels/venngen/pkg/core/venn"
	"github.com/matzehuels/venngen/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultRadius is the circle radius.
	DefaultRadius = venn.DefaultRadius

	// DefaultSize is the canvas width and height.
	DefaultSize = venn.DefaultSize

	// DefaultOverlap is how far each circle reaches past the canvas center.
	DefaultOverlap = venn.DefaultOverlap

	// DefaultScale is the PNG scale factor.
	DefaultScale = sink.DefaultScale

	// DefaultTitle is the document title.
	DefaultTitle = sink.DefaultTitle

	// MaxSize bounds the canvas so a single request cannot allocate an
	// unbounded raster.
	MaxSize = 10000.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the diagram pipeline.
// This struct supports JSON serialization.
type Options struct {
	// Titles. Third switches the diagram to three circles.
	First       string `json:"first"`
	Second      string `json:"second"`
	FirstSecond string `json:"first_second,omitempty"`
	Third       string `json:"third,omitempty"`
	FirstThird  string `json:"first_third,omitempty"`
	SecondThird string `json:"second_third,omitempty"`
	Central     string `json:"central,omitempty"`

	// Layout options
	Radius  float64  `json:"radius,omitempty"`
	Size    float64  `json:"size,omitempty"`
	Overlap *float64 `json:"overlap,omitempty"` // nil means DefaultOverlap; 0 is a real value

	// Render options
	Formats []string `json:"formats,omitempty"`
	Title   string   `json:"title,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Spec is the resolved diagram spec the layout was computed from.
	Spec venn.Spec

	// Diagram is the computed layout.
	Diagram venn.Diagram

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CircleCount int
	LabelCount  int
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// Float returns a pointer to v, for setting Options.Overlap.
func Float(v float64) *float64 { return &v }

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks and
// dropping duplicates while keeping the first-seen order.
func ParseFormats(s string) []string {
	var formats []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	return formats
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.Overlap == nil {
		o.Overlap = Float(DefaultOverlap)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()

	if err := errors.ValidateDimension("radius", o.Radius); err != nil {
		return err
	}
	if err := errors.ValidateDimension("size", o.Size); err != nil {
		return err
	}
	if o.Size > MaxSize {
		return errors.New(errors.ErrCodeInvalidDimension, "size too large (max %g)", MaxSize)
	}
	if err := errors.ValidateOverlap(*o.Overlap, o.Radius); err != nil {
		return err
	}
	for _, t := range o.titles() {
		if err := errors.ValidateTitle(t); err != nil {
			return err
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := errors.ValidateTitle(o.Title); err != nil {
		return err
	}
	if o.Scale < 0 || math.IsNaN(o.Scale) || math.IsInf(o.Scale, 0) || o.Scale > 8 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between 0 and 8, got %v", o.Scale)
	}
	return nil
}

// IsThreeCircle reports whether the options describe a three-circle diagram.
func (o Options) IsThreeCircle() bool {
	return o.Third != ""
}

// Spec returns the diagram spec described by o. Call SetLayoutDefaults
// first; unset numbers are otherwise passed through as zero.
func (o *Options) Spec() venn.Spec {
	overlap := 0.0
	if o.Overlap != nil {
		overlap = *o.Overlap
	}
	s := venn.NewSpec(o.Size, o.Radius, overlap)
	s.First = o.First
	s.Second = o.Second
	s.FirstSecond = o.FirstSecond
	s.Third = o.Third
	s.FirstThird = o.FirstThird
	s.SecondThird = o.SecondThird
	s.Central = o.Central
	return s
}

func (o *Options) titles() []string {
	return []string{o.First, o.Second, o.FirstSecond, o.Third, o.FirstThird, o.SecondThird, o.Central}
}
