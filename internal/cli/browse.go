package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/chazuruo/actiondoc/internal/app"
	"github.com/chazuruo/actiondoc/internal/tui"
)

// BrowseOptions contains the options for the browse command.
type BrowseOptions struct {
	All bool
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(g *GlobalOptions) *cobra.Command {
	opts := &BrowseOptions{}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse workflows interactively",
		Long: `Browse the collected workflows in a terminal UI.

Type to filter, move with the arrow keys and press enter to print the
selected workflow's path. Use 'actiondoc list' for non-interactive output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "include workflows without a workflow_call trigger")

	return cmd
}

func runBrowse(cmd *cobra.Command, g *GlobalOptions, opts *BrowseOptions) error {
	if g.IsNoTUI() {
		return fmt.Errorf("browse is interactive; use 'actiondoc list' with --no-tui")
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
	if len(entries) == 0 {
		p.Info("No workflows found.")
		return nil
	}

	program := tea.NewProgram(tui.NewBrowseModel(entries),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("browse failed: %w", err)
	}

	m, ok := final.(tui.BrowseModel)
	if !ok || !m.Confirmed {
		return nil
	}
	if sel := m.Selected(); sel != nil {
		fmt.Fprintln(cmd.OutOrStdout(), sel.File)
	}
	return nil
}
