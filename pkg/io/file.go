package io

import (
	"github.com/matzehuels/venngen/pkg/pipeline"
)

// File is the on-disk form of a diagram spec.
type File struct {
	First       string `json:"first,omitempty" toml:"first,omitempty"`
	Second      string `json:"second,omitempty" toml:"second,omitempty"`
	FirstSecond string `json:"first_second,omitempty" toml:"first_second,omitempty"`
	Third       string `json:"third,omitempty" toml:"third,omitempty"`
	FirstThird  string `json:"first_third,omitempty" toml:"first_third,omitempty"`
	SecondThird string `json:"second_third,omitempty" toml:"second_third,omitempty"`
	Central     string `json:"central,omitempty" toml:"central,omitempty"`

	Title   string   `json:"title,omitempty" toml:"title,omitempty"`
	Radius  float64  `json:"radius,omitempty" toml:"radius,omitempty"`
	Size    float64  `json:"size,omitempty" toml:"size,omitempty"`
	Overlap *float64 `json:"overlap,omitempty" toml:"overlap,omitempty"`
}

// Options converts f to pipeline options. Render settings other than the
// title are left unset.
func (f File) Options() pipeline.Options {
	opts := pipeline.Options{
		First:       f.First,
		Second:      f.Second,
		FirstSecond: f.FirstSecond,
		Third:       f.Third,
		FirstThird:  f.FirstThird,
		SecondThird: f.SecondThird,
		Central:     f.Central,
		Title:       f.Title,
		Radius:      f.Radius,
		Size:        f.Size,
	}
	if f.Overlap != nil {
		opts.Overlap = pipeline.Float(*f.Overlap)
	}
	return opts
}

// FromOptions returns the spec file describing opts.
func FromOptions(opts pipeline.Options) File {
	f := File{
		First:       opts.First,
		Second:      opts.Second,
		FirstSecond: opts.FirstSecond,
		Third:       opts.Third,
		FirstThird:  opts.FirstThird,
		SecondThird: opts.SecondThird,
		Central:     opts.Central,
		Title:       opts.Title,
		Radius:      opts.Radius,
		Size:        opts.Size,
	}
	if opts.Overlap != nil {
		f.Overlap = pipeline.Float(*opts.Overlap)
	}
	return f
}
