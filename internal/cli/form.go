package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/venngen/pkg/io"
	"github.com/matzehuels/venngen/pkg/pipeline"
)

// Form styles
var (
	formFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	formLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	formValueStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	formDimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// formCommand creates the form command: enter titles interactively, then render.
func (c *CLI) formCommand() *cobra.Command {
	var (
		ro   renderOpts
		save string
	)

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Enter titles interactively, then render",
		Long: `Enter titles interactively, then render.

The form asks for the same titles as the web form. Leave the third circle
empty for a two-circle diagram. Dimensions come from the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p := tea.NewProgram(newFormModel(), tea.WithContext(ctx), tea.WithOutput(os.Stderr))
			final, err := p.Run()
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("form: %w", err)
			}

			m := final.(formModel)
			if !m.Submitted {
				printInfo("Cancelled")
				return nil
			}

			opts := m.Options()
			if save != "" {
				if err := io.Export(io.FromOptions(opts), save); err != nil {
					return fmt.Errorf("save spec: %w", err)
				}
				printSuccess("Saved spec")
				printFile(save)
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			cfg.Apply(&opts)
			opts.Formats = parseFormats(ro.formats)
			opts.Scale = ro.scale
			return c.runRender(ctx, "", opts, ro.output)
		},
	}

	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&ro.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().StringVar(&save, "save", "", "also save the entered titles as a spec file (.json or .toml)")

	return cmd
}

// =============================================================================
// formModel - Interactive title entry
// =============================================================================

// formField is one editable title.
type formField struct {
	Label string
	Value string
	set   func(*pipeline.Options, string)
}

// formModel is the bubbletea model for interactive title entry.
type formModel struct {
	Fields    []formField
	Cursor    int
	Submitted bool
}

// newFormModel creates a form with one field per diagram title, in the
// order the web form asks for them.
func newFormModel() formModel {
	return formModel{
		Fields: []formField{
			{Label: "Left", set: func(o *pipeline.Options, v string) { o.First = v }},
			{Label: "Right", set: func(o *pipeline.Options, v string) { o.Second = v }},
			{Label: "Left ∩ Right", set: func(o *pipeline.Options, v string) { o.FirstSecond = v }},
			{Label: "Top", set: func(o *pipeline.Options, v string) { o.Third = v }},
			{Label: "Left ∩ Top", set: func(o *pipeline.Options, v string) { o.FirstThird = v }},
			{Label: "Right ∩ Top", set: func(o *pipeline.Options, v string) { o.SecondThird = v }},
			{Label: "Middle", set: func(o *pipeline.Options, v string) { o.Central = v }},
		},
	}
}

// Options returns pipeline options holding the entered titles.
func (m formModel) Options() pipeline.Options {
	var opts pipeline.Options
	for _, f := range m.Fields {
		f.set(&opts, strings.TrimSpace(f.Value))
	}
	return opts
}

func (m formModel) Init() tea.Cmd {
	return nil
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyUp, tea.KeyShiftTab:
		if m.Cursor > 0 {
			m.Cursor--
		}
	case tea.KeyDown, tea.KeyTab:
		if m.Cursor < len(m.Fields)-1 {
			m.Cursor++
		}
	case tea.KeyEnter:
		if m.Cursor < len(m.Fields)-1 {
			m.Cursor++
			return m, nil
		}
		m.Submitted = true
		return m, tea.Quit
	case tea.KeyCtrlS:
		m.Submitted = true
		return m, tea.Quit
	case tea.KeyBackspace:
		m.Fields = m.withValue(func(v string) string {
			r := []rune(v)
			if len(r) == 0 {
				return v
			}
			return string(r[:len(r)-1])
		})
	case tea.KeyRunes, tea.KeySpace:
		m.Fields = m.withValue(func(v string) string { return v + string(key.Runes) })
	}
	return m, nil
}

// withValue returns a copy of the fields with the focused value replaced by
// edit(value). Fields are copied so earlier model values stay unchanged.
func (m formModel) withValue(edit func(string) string) []formField {
	fields := make([]formField, len(m.Fields))
	copy(fields, m.Fields)
	fields[m.Cursor].Value = edit(fields[m.Cursor].Value)
	return fields
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("New Venn Diagram"))
	b.WriteString("\n")
	b.WriteString(formDimStyle.Render("↑/↓ move  ⏎ next  ctrl+s render  esc quit"))
	b.WriteString("\n\n")

	threeCircle := strings.TrimSpace(m.Fields[3].Value) != ""
	for i, f := range m.Fields {
		cursor := "  "
		label := formLabelStyle.Render(f.Label)
		value := formValueStyle.Render(f.Value)
		if i == m.Cursor {
			cursor = formFocusedStyle.Render("▸ ")
			value += formFocusedStyle.Render("█")
		}
		line := cursor + label + " " + value
		if i > 3 && !threeCircle {
			line = formDimStyle.Render(cursor + f.Label + "  (needs a top circle)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	mode := "two-circle"
	if threeCircle {
		mode = "three-circle"
	}
	b.WriteString(formDimStyle.Render("  " + mode + " diagram"))
	b.WriteString("\n")

	return b.String()
}
