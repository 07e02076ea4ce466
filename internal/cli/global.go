// Package cli provides Cobra command definitions for actiondoc.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazuruo/actiondoc/internal/app"
	"github.com/chazuruo/actiondoc/internal/config"
	"github.com/chazuruo/actiondoc/internal/logger"
)

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	// ConfigPath is an explicit config file. Empty means detect from the
	// repository root.
	ConfigPath string
	// LogLevel overrides [log].level when set.
	LogLevel string
	// LogFormat overrides [log].format when set.
	LogFormat string
	// NoTUI disables interactive prompts.
	NoTUI bool
}

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command, g *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "config file path (default: <repo root>/"+config.FileName+")")
	cmd.PersistentFlags().StringVar(&g.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&g.LogFormat, "log-format", "", "log format (text, json)")
	cmd.PersistentFlags().BoolVar(&g.NoTUI, "no-tui", false,
		"disable TUI/interactive mode; use plain text or JSON output")
}

// IsNoTUI returns true if interactive mode is disabled.
func (g *GlobalOptions) IsNoTUI() bool {
	return g.NoTUI
}

// setupLogging applies the logging flags. It runs before config is loaded so
// that config errors are logged with the requested settings.
func (g *GlobalOptions) setupLogging(cmd *cobra.Command) error {
	logger.SetLogOutput(cmd.ErrOrStderr())
	return g.applyLogging("", "")
}

// applyLogging sets the log level and format, preferring the flags over the
// given config values.
func (g *GlobalOptions) applyLogging(level, format string) error {
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	if g.LogFormat != "" {
		format = g.LogFormat
	}

	if level != "" {
		if err := logger.SetLogLevel(level); err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	if format != "" {
		if format != "text" && format != "json" {
			return fmt.Errorf("invalid log format %q (must be text or json)", format)
		}
		logger.SetLogFormat(format)
	}
	return nil
}

// loadConfig resolves the configuration for the working directory and
// applies its logging settings.
func (g *GlobalOptions) loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, path, err := app.LoadConfig(cmd.Context(), g.ConfigPath, dir)
	if err != nil {
		return nil, "", err
	}

	if err := g.applyLogging(cfg.Log.Level, cfg.Log.Format); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
