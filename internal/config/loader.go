// Package config provides configuration management for actiondoc.
//
// This file contains config loading functionality including:
// - repository-local config detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	docerrors "github.com/chazuruo/actiondoc/internal/errors"
)

// DetectConfigPath looks for .actiondoc.toml in the given repository root.
// Returns empty string if no config file is found (caller should use defaults).
func DetectConfigPath(root string) string {
	configPath := filepath.Join(root, FileName)
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}
	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &docerrors.ConfigError{Path: path, Err: docerrors.ErrNotFound}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &docerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &docerrors.ConfigError{Path: path, Err: fmt.Errorf("failed to parse config file: %w", err)}
	}

	applyEnvOverrides(cfg)
	expandPath(cfg)

	// A relative root is relative to the config file's directory.
	if cfg.Paths.Root == "" {
		cfg.Paths.Root = filepath.Dir(path)
	} else if !filepath.IsAbs(cfg.Paths.Root) {
		cfg.Paths.Root = filepath.Join(filepath.Dir(path), cfg.Paths.Root)
	}

	if err := cfg.Validate(); err != nil {
		return nil, &docerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", docerrors.ErrInvalid, err)}
	}

	return cfg, nil
}

// LoadWithDefaults loads .actiondoc.toml from root when present.
// If no config file is found, returns a validated default config rooted at root.
func LoadWithDefaults(root string) (*Config, error) {
	configPath := DetectConfigPath(root)
	if configPath != "" {
		return Load(configPath)
	}

	cfg := DefaultConfig()
	cfg.Paths.Root = root
	applyEnvOverrides(cfg)
	expandPath(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &docerrors.ConfigError{Err: fmt.Errorf("%w: %w", docerrors.ErrInvalid, err)}
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: ACTIONDOC_<SECTION>_<FIELD>
//
// Examples:
// - ACTIONDOC_PATHS_README overrides [paths].readme
// - ACTIONDOC_LOG_LEVEL overrides [log].level
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				*target = i
			}
		}
	}

	// Paths section
	applyString("ACTIONDOC_PATHS_ROOT", &c.Paths.Root)
	applyString("ACTIONDOC_PATHS_WORKFLOWS_DIR", &c.Paths.WorkflowsDir)
	applyString("ACTIONDOC_PATHS_WORKFLOWS_GLOB", &c.Paths.WorkflowsGlob)
	applyString("ACTIONDOC_PATHS_ACTIONS_DIR", &c.Paths.ActionsDir)
	applyString("ACTIONDOC_PATHS_README", &c.Paths.Readme)

	// Naming section
	applyString("ACTIONDOC_NAMING_TITLE_PREFIX", &c.Naming.TitlePrefix)

	// Render section
	applyInt("ACTIONDOC_RENDER_NAME_WIDTH", &c.Render.NameWidth)
	applyInt("ACTIONDOC_RENDER_DESCRIPTION_WIDTH", &c.Render.DescriptionWidth)

	// Scan section
	applyInt("ACTIONDOC_SCAN_WORKERS", &c.Scan.Workers)

	// Log section
	applyString("ACTIONDOC_LOG_LEVEL", &c.Log.Level)
	applyString("ACTIONDOC_LOG_FORMAT", &c.Log.Format)
}

// expandPath expands ~ to the home directory in the root path.
func expandPath(c *Config) {
	if strings.HasPrefix(c.Paths.Root, "~/") || c.Paths.Root == "~" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			c.Paths.Root = filepath.Join(homeDir, strings.TrimPrefix(c.Paths.Root, "~/"))
		}
	}
}
