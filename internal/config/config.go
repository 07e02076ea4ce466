// Package config provides configuration management for actiondoc.
//
// The configuration is stored in TOML format at the repository root
// (.actiondoc.toml) and supports validation and default values for all fields.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// FileName is the name of the per-repository configuration file.
const FileName = ".actiondoc.toml"

// Config is the top-level configuration struct for actiondoc.
type Config struct {
	Paths    PathsConfig    `toml:"paths"`
	Naming   NamingConfig   `toml:"naming"`
	Render   RenderConfig   `toml:"render"`
	Markers  MarkersConfig  `toml:"markers"`
	Sections SectionsConfig `toml:"sections"`
	Scan     ScanConfig     `toml:"scan"`
	Log      LogConfig      `toml:"log"`
}

// PathsConfig contains file-system locations. All paths except Root are
// relative to Root.
type PathsConfig struct {
	// Root is the repository root. Empty means "detect from the working directory".
	Root string `toml:"root"`

	// WorkflowsDir is the directory holding workflow definition files.
	WorkflowsDir string `toml:"workflows_dir"`

	// WorkflowsGlob selects workflow files relative to WorkflowsDir.
	// Uses gobwas/glob syntax with '/' as separator.
	WorkflowsGlob string `toml:"workflows_glob"`

	// ActionsDir is the directory holding composite action subdirectories.
	ActionsDir string `toml:"actions_dir"`

	// Readme is the document whose marker regions are regenerated.
	Readme string `toml:"readme"`
}

// NamingConfig controls how display names are derived.
type NamingConfig struct {
	// TitlePrefix is stripped (case-insensitively) from declared workflow names.
	TitlePrefix string `toml:"title_prefix"`
}

// RenderConfig contains table rendering settings.
type RenderConfig struct {
	// NameWidth is the wrap width for workflow names.
	NameWidth int `toml:"name_width"`

	// DescriptionWidth is the wrap width for descriptions.
	DescriptionWidth int `toml:"description_width"`
}

// MarkersConfig holds the literal comments bracketing generated regions.
type MarkersConfig struct {
	WorkflowsStart string `toml:"workflows_start"`
	WorkflowsEnd   string `toml:"workflows_end"`
	TreeStart      string `toml:"tree_start"`
	TreeEnd        string `toml:"tree_end"`
}

// SectionsConfig holds the headings and notice emitted inside generated regions.
type SectionsConfig struct {
	WorkflowsHeading string `toml:"workflows_heading"`
	TreeHeading      string `toml:"tree_heading"`
	Notice           string `toml:"notice"`
}

// ScanConfig contains collector settings.
type ScanConfig struct {
	// Workers is the number of files parsed concurrently.
	Workers int `toml:"workers"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is a logrus level name.
	Level string `toml:"level"`

	// Format is "text" or "json".
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			Root:          "",
			WorkflowsDir:  ".github/workflows",
			WorkflowsGlob: "*.{yml,yaml}",
			ActionsDir:    ".github/actions",
			Readme:        "README.md",
		},
		Naming: NamingConfig{
			TitlePrefix: "Reusable",
		},
		Render: RenderConfig{
			NameWidth:        30,
			DescriptionWidth: 60,
		},
		Markers: MarkersConfig{
			WorkflowsStart: "<!-- WORKFLOWS_START -->",
			WorkflowsEnd:   "<!-- WORKFLOWS_END -->",
			TreeStart:      "<!-- FOLDER_STRUCTURE_START -->",
			TreeEnd:        "<!-- FOLDER_STRUCTURE_END -->",
		},
		Sections: SectionsConfig{
			WorkflowsHeading: "## 📋 Available Workflows",
			TreeHeading:      "## 📁 Folder Structure",
			Notice:           "> [!NOTE]\n> This section is generated by `actiondoc generate`. Manual edits will be overwritten.",
		},
		Scan: ScanConfig{
			Workers: 4,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	// Paths section
	relPaths := []struct{ key, val string }{
		{"paths.workflows_dir", c.Paths.WorkflowsDir},
		{"paths.actions_dir", c.Paths.ActionsDir},
		{"paths.readme", c.Paths.Readme},
	}
	for _, p := range relPaths {
		if p.val == "" {
			return fmt.Errorf("%s cannot be empty", p.key)
		}
		if filepath.IsAbs(p.val) || isWindowsAbsPath(p.val) {
			return fmt.Errorf("%s must be relative to paths.root: %q", p.key, p.val)
		}
	}
	if c.Paths.WorkflowsGlob == "" {
		return fmt.Errorf("paths.workflows_glob cannot be empty")
	}
	if _, err := glob.Compile(c.Paths.WorkflowsGlob, '/'); err != nil {
		return fmt.Errorf("paths.workflows_glob is not a valid pattern: %w", err)
	}

	// Render section
	if c.Render.NameWidth < 1 {
		return fmt.Errorf("render.name_width must be >= 1; got %d", c.Render.NameWidth)
	}
	if c.Render.DescriptionWidth < 1 {
		return fmt.Errorf("render.description_width must be >= 1; got %d", c.Render.DescriptionWidth)
	}

	// Markers section
	markers := []struct{ key, val string }{
		{"markers.workflows_start", c.Markers.WorkflowsStart},
		{"markers.workflows_end", c.Markers.WorkflowsEnd},
		{"markers.tree_start", c.Markers.TreeStart},
		{"markers.tree_end", c.Markers.TreeEnd},
	}
	seen := make(map[string]string, len(markers))
	for _, m := range markers {
		if strings.TrimSpace(m.val) == "" {
			return fmt.Errorf("%s cannot be empty", m.key)
		}
		if prev, ok := seen[m.val]; ok {
			return fmt.Errorf("%s duplicates %s: %q", m.key, prev, m.val)
		}
		seen[m.val] = m.key
	}

	// Scan section
	if c.Scan.Workers < 1 {
		return fmt.Errorf("scan.workers must be >= 1; got %d", c.Scan.Workers)
	}

	// Log section
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true,
		"warn": true, "warning": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("log.level must be one of: trace, debug, info, warn, error; got %q", c.Log.Level)
	}
	validFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validFormats[c.Log.Format] {
		return fmt.Errorf("log.format must be one of: text, json; got %q", c.Log.Format)
	}

	return nil
}

// WorkflowsPath returns the absolute-or-root-relative workflows directory.
func (c *Config) WorkflowsPath() string {
	return filepath.Join(c.Paths.Root, filepath.FromSlash(c.Paths.WorkflowsDir))
}

// ActionsPath returns the composite actions directory.
func (c *Config) ActionsPath() string {
	return filepath.Join(c.Paths.Root, filepath.FromSlash(c.Paths.ActionsDir))
}

// ReadmePath returns the target document path.
func (c *Config) ReadmePath() string {
	return filepath.Join(c.Paths.Root, filepath.FromSlash(c.Paths.Readme))
}

// isWindowsAbsPath detects Windows-style absolute paths (e.g., "C:\Windows", "D:\path").
func isWindowsAbsPath(path string) bool {
	if len(path) < 3 {
		return false
	}
	return (path[0] >= 'A' && path[0] <= 'Z' || path[0] >= 'a' && path[0] <= 'z') &&
		path[1] == ':' &&
		(path[2] == '\\' || path[2] == '/')
}
