package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo is the version metadata stamped into the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// NewRootCommand creates the actiondoc command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	g := &GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "actiondoc",
		Short: "Generate README documentation for GitHub Actions workflows",
		Long: `actiondoc scans .github/workflows, extracts the interface of every reusable
workflow (inputs, outputs, secrets) and rewrites two marker-delimited regions
of the README: a categorized workflow table and a folder tree.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setupLogging(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	AddGlobalFlags(rootCmd, g)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(NewGenerateCommand(g))
	rootCmd.AddCommand(NewListCommand(g))
	rootCmd.AddCommand(NewBrowseCommand(g))
	rootCmd.AddCommand(NewInitCommand(g))
	rootCmd.AddCommand(NewConfigCommand(g))
	rootCmd.AddCommand(NewVersionCommand(info))

	return rootCmd
}
