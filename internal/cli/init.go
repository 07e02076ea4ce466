package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/chazuruo/actiondoc/internal/app"
	"github.com/chazuruo/actiondoc/internal/config"
	"github.com/chazuruo/actiondoc/internal/gitrepo"
)

// InitOptions contains the options for the init command.
type InitOptions struct {
	Force bool

	// Scriptable/flag options for --no-tui mode
	WorkflowsDir string
	ActionsDir   string
	Readme       string
	TitlePrefix  string
	Markers      bool
}

// NewInitCommand creates the init command.
func NewInitCommand(g *GlobalOptions) *cobra.Command {
	opts := &InitOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an actiondoc configuration file",
		Long: `Create .actiondoc.toml at the repository root.

The init command asks for:
- the workflows and actions directories
- the README to update
- the title prefix stripped from workflow names
- whether to add the marker comments to the README

Use --no-tui with flags for scripted setup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, g, opts)
		},
	}

	defaults := config.DefaultConfig()
	cmd.Flags().BoolVar(&opts.Force, "force", false, "overwrite an existing config file")
	cmd.Flags().StringVar(&opts.WorkflowsDir, "workflows-dir", defaults.Paths.WorkflowsDir, "workflows directory relative to the repository root")
	cmd.Flags().StringVar(&opts.ActionsDir, "actions-dir", defaults.Paths.ActionsDir, "composite actions directory relative to the repository root")
	cmd.Flags().StringVar(&opts.Readme, "readme", defaults.Paths.Readme, "document to update relative to the repository root")
	cmd.Flags().StringVar(&opts.TitlePrefix, "title-prefix", defaults.Naming.TitlePrefix, "prefix stripped from workflow names")
	cmd.Flags().BoolVar(&opts.Markers, "markers", true, "append missing marker comments to the README")

	return cmd
}

func runInit(cmd *cobra.Command, g *GlobalOptions, opts *InitOptions) error {
	p := newPrinter(cmd)

	path, err := initConfigPath(cmd, g)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
	}

	if !g.IsNoTUI() {
		if err := runInitForm(opts); err != nil {
			return err
		}
	}

	cfg := config.DefaultConfig()
	cfg.Paths.Root = filepath.Dir(path)
	cfg.Paths.WorkflowsDir = opts.WorkflowsDir
	cfg.Paths.ActionsDir = opts.ActionsDir
	cfg.Paths.Readme = opts.Readme
	cfg.Naming.TitlePrefix = opts.TitlePrefix

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := config.Write(path, cfg); err != nil {
		return err
	}
	p.Success("configuration written to %s", path)

	if opts.Markers {
		added, err := app.EnsureMarkers(cfg)
		if err != nil {
			return err
		}
		if len(added) > 0 {
			p.Success("added %s markers to %s", strings.Join(added, " and "), cfg.Paths.Readme)
		}
	}

	p.Info("\nRun 'actiondoc generate' to fill in the README.")
	return nil
}

// initConfigPath returns --config when given, otherwise the config file at
// the repository root of the working directory.
func initConfigPath(cmd *cobra.Command, g *GlobalOptions) (string, error) {
	if g.ConfigPath != "" {
		return filepath.Abs(g.ConfigPath)
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := gitrepo.FindRoot(cmd.Context(), dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, config.FileName), nil
}

// runInitForm asks for the init options interactively, starting from the
// flag values.
func runInitForm(opts *InitOptions) error {
	notEmpty := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("value cannot be empty")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Workflows directory").
				Description("Where workflow files live, relative to the repository root").
				Value(&opts.WorkflowsDir).
				Validate(notEmpty),
			huh.NewInput().
				Title("Actions directory").
				Description("Where composite actions live, relative to the repository root").
				Value(&opts.ActionsDir).
				Validate(notEmpty),
			huh.NewInput().
				Title("README").
				Description("Document whose marker regions are regenerated").
				Value(&opts.Readme).
				Validate(notEmpty),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Title prefix").
				Description("Stripped from workflow names, e.g. 'Reusable: Deploy' becomes 'Deploy'").
				Value(&opts.TitlePrefix),
			huh.NewConfirm().
				Title("Add marker comments to the README?").
				Value(&opts.Markers),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("form error: %w", err)
	}
	return nil
}
