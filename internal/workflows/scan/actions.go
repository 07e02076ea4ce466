package scan

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	docerrors "github.com/chazuruo/actiondoc/internal/errors"
	"github.com/chazuruo/actiondoc/internal/logger"
	"github.com/chazuruo/actiondoc/internal/workflows"
)

// actionFileNames are the accepted composite action definition names,
// in lookup order.
var actionFileNames = []string{"action.yml", "action.yaml"}

// Action is a composite action directory.
type Action struct {
	// Dir is the directory name.
	Dir string
	// File is the definition file name inside Dir.
	File string
}

// ListActions returns the composite action directories under the configured
// actions directory, sorted by name. A missing actions directory yields no
// actions.
func (c *Collector) ListActions(ctx context.Context) ([]Action, error) {
	dir := c.config.ActionsPath()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list actions in %s: %w: %w", dir, docerrors.ErrIO, err)
	}

	var actions []Action
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		file := findActionFile(filepath.Join(dir, entry.Name()))
		if file == "" {
			logger.G(ctx).WithField("dir", entry.Name()).Debug("directory has no action definition")
			continue
		}
		actions = append(actions, Action{Dir: entry.Name(), File: file})
	}
	return actions, nil
}

func findActionFile(dir string) string {
	for _, name := range actionFileNames {
		if info, err := os.Stat(filepath.Join(dir, name)); err == nil && !info.IsDir() {
			return name
		}
	}
	return ""
}

// IsCallable re-reads a workflow file and reports whether its raw text
// declares the callable trigger.
func IsCallable(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return workflows.IsCallableText(data), nil
}
