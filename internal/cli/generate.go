package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazuruo/actiondoc/internal/app"
	docerrors "github.com/chazuruo/actiondoc/internal/errors"
)

// GenerateOptions contains the options for the generate command.
type GenerateOptions struct {
	Check  bool
	DryRun bool
	Readme string
	JSON   bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(g *GlobalOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Regenerate the workflow sections of the README",
		Long: `Regenerate the workflow table and folder tree regions of the README.

The README must contain both marker pairs:
  <!-- WORKFLOWS_START --> ... <!-- WORKFLOWS_END -->
  <!-- FOLDER_STRUCTURE_START --> ... <!-- FOLDER_STRUCTURE_END -->

Everything outside the two regions is left as is. If a marker is missing
the README is not modified.

Examples:
  actiondoc generate                  # Rewrite README.md in place
  actiondoc generate --check          # Fail if README.md is out of date
  actiondoc generate --dry-run        # Print the generated README
  actiondoc generate --readme docs/CI.md`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "exit with an error if the README is out of date; do not write")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the generated README instead of writing it")
	cmd.Flags().StringVar(&opts.Readme, "readme", "", "target document (default from config)")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print the run report as JSON")
	cmd.MarkFlagsMutuallyExclusive("check", "dry-run")

	return cmd
}

func runGenerate(cmd *cobra.Command, g *GlobalOptions, opts *GenerateOptions) error {
	p := newPrinter(cmd)

	cfg, _, err := g.loadConfig(cmd)
	if err != nil {
		printHint(p, err)
		return err
	}

	readme := opts.Readme
	if readme != "" && !filepath.IsAbs(readme) {
		if readme, err = filepath.Abs(readme); err != nil {
			return fmt.Errorf("failed to resolve %s: %w", opts.Readme, err)
		}
	}

	report, err := app.Generate(cmd.Context(), cfg, app.GenerateOptions{
		Check:  opts.Check,
		DryRun: opts.DryRun,
		Readme: readme,
	})

	if opts.JSON && report != nil {
		if jerr := p.JSON(report); jerr != nil {
			return jerr
		}
		return err
	}

	if err != nil {
		if docerrors.IsStale(err) && report != nil {
			p.Info("%s", report.Diff)
			p.Error("%s is out of date; run 'actiondoc generate' to update it", displayPath(cfg.Paths.Root, report.Readme))
		}
		printHint(p, err)
		return err
	}

	if len(report.Skipped) > 0 {
		p.Warning("skipped %d workflow file(s) that could not be parsed", len(report.Skipped))
	}

	name := displayPath(cfg.Paths.Root, report.Readme)
	switch {
	case opts.DryRun:
		fmt.Fprint(cmd.OutOrStdout(), report.Output)
	case opts.Check:
		p.Success("%s is up to date", name)
	case report.Written:
		p.Success("updated %s (%d reusable of %d workflows, %d actions)", name, report.Reusable, report.Workflows, report.Actions)
	default:
		p.Info("%s is already up to date", name)
	}
	return nil
}

// displayPath shortens path to be relative to root when possible.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
