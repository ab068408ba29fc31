package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/venngen/pkg/io"
	"github.com/matzehuels/venngen/pkg/pipeline"
)

// Flag names shared by render and layout. Title flags mirror the spec file keys.
const (
	flagFirst       = "first"
	flagSecond      = "second"
	flagFirstSecond = "first-second"
	flagThird       = "third"
	flagFirstThird  = "first-third"
	flagSecondThird = "second-third"
	flagCentral     = "central"
	flagRadius      = "radius"
	flagSize        = "size"
	flagOverlap     = "overlap"
	flagTitle       = "title"
)

// diagramFlags holds the values of the diagram flags before they are merged
// with a spec file and the config.
type diagramFlags struct {
	first, second, firstSecond              string
	third, firstThird, secondThird, central string
	title                                   string
	radius, size, overlap                   float64
}

// register adds the diagram flags to cmd.
func (f *diagramFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.first, flagFirst, "", "title of the first (left) circle")
	fs.StringVar(&f.second, flagSecond, "", "title of the second (right) circle")
	fs.StringVar(&f.firstSecond, flagFirstSecond, "", "title of the first/second overlap")
	fs.StringVar(&f.third, flagThird, "", "title of the third (top) circle; enables three-circle mode")
	fs.StringVar(&f.firstThird, flagFirstThird, "", "title of the first/third overlap")
	fs.StringVar(&f.secondThird, flagSecondThird, "", "title of the second/third overlap")
	fs.StringVar(&f.central, flagCentral, "", "title of the region shared by all three circles")
	fs.StringVar(&f.title, flagTitle, "", "document title (default from config)")
	fs.Float64Var(&f.radius, flagRadius, 0, "circle radius (default from config)")
	fs.Float64Var(&f.size, flagSize, 0, "canvas width and height (default from config)")
	fs.Float64Var(&f.overlap, flagOverlap, 0, "how far each circle reaches past the center (default from config)")
}

// apply copies every flag the user set onto opts. changed reports whether a
// flag was given on the command line.
func (f *diagramFlags) apply(opts *pipeline.Options, changed func(string) bool) {
	strs := []struct {
		name string
		src  string
		dst  *string
	}{
		{flagFirst, f.first, &opts.First},
		{flagSecond, f.second, &opts.Second},
		{flagFirstSecond, f.firstSecond, &opts.FirstSecond},
		{flagThird, f.third, &opts.Third},
		{flagFirstThird, f.firstThird, &opts.FirstThird},
		{flagSecondThird, f.secondThird, &opts.SecondThird},
		{flagCentral, f.central, &opts.Central},
		{flagTitle, f.title, &opts.Title},
	}
	for _, s := range strs {
		if changed(s.name) {
			*s.dst = s.src
		}
	}

	if changed(flagRadius) {
		opts.Radius = f.radius
	}
	if changed(flagSize) {
		opts.Size = f.size
	}
	if changed(flagOverlap) {
		opts.Overlap = pipeline.Float(f.overlap)
	}
}

// resolveOptions builds pipeline options from, in order of precedence, the
// command-line flags, the spec file (if any) and the config file.
func (c *CLI) resolveOptions(cmd *cobra.Command, args []string, f *diagramFlags) (pipeline.Options, error) {
	var opts pipeline.Options
	if len(args) > 0 {
		file, err := io.Import(args[0])
		if err != nil {
			return opts, err
		}
		opts = file.Options()
	}

	f.apply(&opts, cmd.Flags().Changed)

	cfg, err := c.loadConfig()
	if err != nil {
		return opts, err
	}
	cfg.Apply(&opts)
	return opts, nil
}

// specInput returns the spec file argument, or "" when none was given.
func specInput(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
