package cli

import (
	"github.com/spf13/cobra"

	"github.com/chazuruo/actiondoc/internal/app"
)

// ConfigOptions contains the options for the config command.
type ConfigOptions struct {
	JSON bool
}

// NewConfigCommand creates the config command.
func NewConfigCommand(g *GlobalOptions) *cobra.Command {
	opts := &ConfigOptions{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration actiondoc resolves for the current directory:
the config file in use, the repository root and the resolved paths.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := g.loadConfig(cmd)
			if err != nil {
				printHint(newPrinter(cmd), err)
				return err
			}

			out := app.DescribeConfig(cfg, path)
			if opts.JSON {
				return app.PrintConfigJSON(cmd.OutOrStdout(), out)
			}
			app.PrintConfig(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "output in JSON format")

	return cmd
}
