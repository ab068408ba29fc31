package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/venngen/pkg/pipeline"
)

// renderOpts holds the output flags of the render command.
type renderOpts struct {
	output  string  // output file, or base path for multiple formats
	formats string  // comma-separated output formats
	scale   float64 // PNG scale factor
}

// renderCommand creates the render command for writing diagrams to files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags diagramFlags
		ro    renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [spec-file]",
		Short: "Render a Venn diagram to SVG, PNG, PDF or JSON",
		Long: `Render a Venn diagram to SVG, PNG, PDF or JSON.

Titles and dimensions come from flags, an optional spec file (.json or .toml)
and the config file, in that order of precedence. Setting --third switches to
a three-circle diagram.

PDF output requires rsvg-convert (librsvg) on PATH.`,
		Example: `  venngen render --first Cats --second Dogs --first-second Pets
  venngen render diagram.toml -f svg,png -o out/diagram
  venngen render --first A --second B -o - | less`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, args, &flags)
			if err != nil {
				return err
			}
			opts.Formats = parseFormats(ro.formats)
			opts.Scale = ro.scale
			return c.runRender(cmd.Context(), specInput(args), opts, ro.output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&ro.scale, "scale", pipeline.DefaultScale, "PNG scale factor")

	return cmd
}

// runRender runs the pipeline and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string) error {
	if output == stdoutPath && len(opts.Formats) > 1 {
		return fmt.Errorf("cannot write %d formats to stdout", len(opts.Formats))
	}
	toStdout := output == stdoutPath

	opts.Logger = c.Logger
	if !toStdout && opts.First == "" && opts.Second == "" {
		printWarning("No circle titles set; the diagram will have no circle labels")
	}

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths := outputPaths(output, input, opts.Formats)
	written, err := writeArtifacts(result.Artifacts, paths)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(written)))

	if toStdout {
		return nil
	}
	printSuccess("Rendered %d-circle diagram", result.Stats.CircleCount)
	for _, p := range written {
		printFile(p)
	}
	printDetail("%d labels · layout %s · render %s",
		result.Stats.LabelCount, result.Stats.LayoutTime, result.Stats.RenderTime)
	return nil
}

// writeArtifacts writes each artifact to its path and returns the written
// paths in sorted order.
func writeArtifacts(artifacts map[string][]byte, paths map[string]string) ([]string, error) {
	formats := make([]string, 0, len(paths))
	for f := range paths {
		formats = append(formats, f)
	}
	sort.Strings(formats)

	written := make([]string, 0, len(formats))
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			return written, fmt.Errorf("no %s output produced", f)
		}
		path := paths[f]
		if err := writeFile(path, data); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
