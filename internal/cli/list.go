package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/chazuruo/actiondoc/internal/app"
)

// OutputFormat defines the output format for the list command.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatPlain OutputFormat = "plain"
)

var headerStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("86")).
	Bold(true)

// ListOptions contains the options for the list command.
type ListOptions struct {
	All    bool
	Format string
}

// NewListCommand creates the list command for listing workflows.
func NewListCommand(g *GlobalOptions) *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflows and their interfaces",
		Long: `List the workflows actiondoc would document.

By default only reusable workflows (those with a workflow_call trigger) are
shown. Files that fail to parse are skipped with a warning.

Examples:
  actiondoc list                  # Reusable workflows in table format
  actiondoc list --all            # Include internal workflows
  actiondoc list --format json    # Machine-readable output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "include workflows without a workflow_call trigger")
	cmd.Flags().StringVar(&opts.Format, "format", "table", "output format (table, json, plain)")

	return cmd
}

func runList(cmd *cobra.Command, g *GlobalOptions, opts *ListOptions) error {
	format := OutputFormat(opts.Format)
	switch format {
	case FormatTable, FormatJSON, FormatPlain:
	default:
		return fmt.Errorf("invalid format: %s (must be table, json, or plain)", opts.Format)
	}

	p := newPrinter(cmd)

	cfg, _, err := g.loadConfig(cmd)
	if err != nil {
		printHint(p, err)
		return err
	}

	entries, err := app.List(cmd.Context(), cfg, app.ListOptions{All: opts.All})
	if err != nil {
		printHint(p, err)
		return err
	}

	switch format {
	case FormatJSON:
		return p.JSON(entries)
	case FormatPlain:
		printPlain(p.out, entries)
	default:
		printTable(p.out, entries)
	}
	return nil
}

// printTable prints workflows in table format.
func printTable(w io.Writer, entries []app.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No workflows found.")
		return
	}

	tbl := table.New("Name", "Category", "File", "Reusable", "Inputs", "Outputs", "Secrets").
		WithWriter(w).
		WithHeaderFormatter(func(format string, vals ...interface{}) string {
			return headerStyle.Render(fmt.Sprintf(format, vals...))
		})

	for _, e := range entries {
		tbl.AddRow(e.Name, e.Category, e.File, yesNo(e.Reusable),
			joinOrDash(e.Inputs), joinOrDash(e.Outputs), joinOrDash(e.Secrets))
	}
	tbl.Print()
}

// printPlain prints one tab-separated line per workflow.
func printPlain(w io.Writer, entries []app.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.File, e.Category, e.Name)
	}
}

func joinOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
