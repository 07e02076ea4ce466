// Package app provides high-level application logic for actiondoc commands.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/chazuruo/actiondoc/internal/config"
	"github.com/chazuruo/actiondoc/internal/gitrepo"
)

// LoadConfig resolves the configuration for a run started in dir. An
// explicit configPath is loaded as is. Otherwise the repository root is
// detected from dir and .actiondoc.toml is read from it when present.
// The returned string is the config file used, empty for defaults.
func LoadConfig(ctx context.Context, configPath, dir string) (*config.Config, string, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, configPath, nil
	}

	root, err := gitrepo.FindRoot(ctx, dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to detect repository root: %w", err)
	}

	cfg, err := config.LoadWithDefaults(root)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, config.DetectConfigPath(root), nil
}

// ConfigOutput describes the effective configuration of a repository.
type ConfigOutput struct {
	ConfigPath    string `json:"config_path"`
	Root          string `json:"root"`
	WorkflowsDir  string `json:"workflows_dir"`
	WorkflowsGlob string `json:"workflows_glob"`
	ActionsDir    string `json:"actions_dir"`
	Readme        string `json:"readme"`
	TitlePrefix   string `json:"title_prefix"`
	Workers       int    `json:"workers"`
}

// DescribeConfig summarizes cfg, loaded from configPath.
func DescribeConfig(cfg *config.Config, configPath string) *ConfigOutput {
	return &ConfigOutput{
		ConfigPath:    configPath,
		Root:          cfg.Paths.Root,
		WorkflowsDir:  cfg.WorkflowsPath(),
		WorkflowsGlob: cfg.Paths.WorkflowsGlob,
		ActionsDir:    cfg.ActionsPath(),
		Readme:        cfg.ReadmePath(),
		TitlePrefix:   cfg.Naming.TitlePrefix,
		Workers:       cfg.Scan.Workers,
	}
}

// PrintConfig prints the configuration summary in plain text format.
func PrintConfig(w io.Writer, output *ConfigOutput) {
	configPath := output.ConfigPath
	if configPath == "" {
		configPath = "(defaults)"
	}
	fmt.Fprintf(w, "Config: %s\n", configPath)
	fmt.Fprintf(w, "Root: %s\n", output.Root)
	fmt.Fprintf(w, "Workflows: %s (%s)\n", output.WorkflowsDir, output.WorkflowsGlob)
	fmt.Fprintf(w, "Actions: %s\n", output.ActionsDir)
	fmt.Fprintf(w, "Readme: %s\n", output.Readme)
	fmt.Fprintf(w, "Title prefix: %q\n", output.TitlePrefix)
	fmt.Fprintf(w, "Workers: %d\n", output.Workers)
}

// PrintConfigJSON prints the configuration summary in JSON format.
func PrintConfigJSON(w io.Writer, output *ConfigOutput) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
