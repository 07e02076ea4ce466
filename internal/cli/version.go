package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

// VersionInfo contains version information for the binary.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	BuiltBy string `json:"built_by"`
	Go      string `json:"go_version"`
}

// VersionOptions contains the options for the version command.
type VersionOptions struct {
	Short bool
	JSON  bool
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	opts := &VersionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long: `Display the actiondoc version information.

Shows version, commit hash, build date, who built it, and Go version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion(newPrinter(cmd), opts, info)
		},
	}

	cmd.Flags().BoolVar(&opts.Short, "short", false, "print only the version number")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output in JSON format")

	return cmd
}

func runVersion(p *printer, opts *VersionOptions, build BuildInfo) error {
	info := VersionInfo{
		Version: build.Version,
		Commit:  build.Commit,
		Date:    build.Date,
		BuiltBy: build.BuiltBy,
		Go:      runtime.Version(),
	}

	if opts.JSON {
		return p.JSON(info)
	}

	if opts.Short {
		p.Info("%s", info.Version)
		return nil
	}

	p.Info("actiondoc version %s", info.Version)
	p.Info("commit: %s", info.Commit)
	p.Info("built at: %s", info.Date)
	if info.BuiltBy != "" && info.BuiltBy != "unknown" {
		p.Info("built by: %s", info.BuiltBy)
	}
	p.Info("go version: %s", info.Go)

	return nil
}
