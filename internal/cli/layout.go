package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/venngen/pkg/core/geom"
	"github.com/matzehuels/venngen/pkg/core/render/sink"
	"github.com/matzehuels/venngen/pkg/core/venn"
	"github.com/matzehuels/venngen/pkg/pipeline"
)

// layoutCommand creates the layout command for inspecting computed geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  diagramFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "layout [spec-file]",
		Short: "Print the computed circle and label positions",
		Long: `Print the computed circle and label positions.

The layout command runs only the geometry stage and prints the result as two
tables. Use --json for the same data in the format written by
'render -f json'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.resolveOptions(cmd, args, &flags)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), opts, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")

	return cmd
}

// runLayout computes the diagram and prints it.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, asJSON bool) error {
	opts.Logger = c.Logger
	d, err := c.newRunner().Layout(ctx, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	if asJSON {
		data, err := sink.RenderJSON(d)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%d-circle diagram", len(d.Circles))) +
		StyleDim.Render(fmt.Sprintf("  %s × %s", formatNum(d.Width), formatNum(d.Height))))
	fmt.Println(circleTable(d.Circles))
	if len(d.Labels) == 0 {
		printInfo("No labels (all titles are empty)")
		return nil
	}
	fmt.Println(labelTable(d.Labels))
	return nil
}

// =============================================================================
// Tables
// =============================================================================

var tableHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return tableHeaderStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})
}

// circleTable renders one row per circle with its ordinal, center, radius and color.
func circleTable(circles []venn.Circle) string {
	t := newTable("Circle", "Center", "Radius", "Color")
	for i, ci := range circles {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(ci.Color)).Render("●")
		t.Row(venn.Ordinal(i+1).String(), formatPoint(ci.Center), formatNum(ci.Radius), swatch+" "+ci.Color)
	}
	return t.Render()
}

// labelTable renders one row per label with its region, text and anchor.
func labelTable(labels []venn.Label) string {
	t := newTable("Region", "Text", "Anchor")
	for _, l := range labels {
		t.Row(string(l.Region), l.Text, formatPoint(l.Anchor))
	}
	return t.Render()
}

// formatNum prints v with at most two decimals and no trailing zeros.
func formatNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func formatPoint(p geom.Point) string {
	return "(" + formatNum(p.X) + ", " + formatNum(p.Y) + ")"
}
