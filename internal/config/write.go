package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Write writes the config to a file in TOML format.
// Root is omitted because it is implied by the file's location.
func Write(path string, cfg *Config) error {
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out := *cfg
	out.Paths.Root = ""

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(&out); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
