// Package testutil provides helper functions for testing.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/chazuruo/actiondoc/internal/config"
)

// TempDir creates a temporary directory and registers a cleanup function.
// The directory is automatically deleted when the test completes.
func TempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "actiondoc-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(dir); err != nil {
			t.Errorf("failed to cleanup temp dir %s: %v", dir, err)
		}
	})

	return dir
}

// WriteFile writes content to root/rel (slash-separated), creating parent
// directories, and returns the full path.
func WriteFile(t *testing.T, root, rel, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}

	return path
}

// WriteWorkflow writes a workflow file into the default workflows directory.
func WriteWorkflow(t *testing.T, root, name, content string) string {
	t.Helper()
	return WriteFile(t, root, ".github/workflows/"+name, content)
}

// WriteAction writes a composite action definition into the default actions directory.
func WriteAction(t *testing.T, root, dir string) string {
	t.Helper()
	return WriteFile(t, root, ".github/actions/"+dir+"/action.yml",
		"name: "+dir+"\nruns:\n  using: composite\n  steps: []\n")
}

// NewRepo creates an empty repository layout and a default config rooted at it.
func NewRepo(t *testing.T) (string, *config.Config) {
	t.Helper()

	root := TempDir(t)
	if err := os.MkdirAll(filepath.Join(root, ".github", "workflows"), 0755); err != nil {
		t.Fatalf("failed to create workflows dir: %v", err)
	}

	cfg := config.DefaultConfig()
	cfg.Paths.Root = root
	return root, cfg
}

// ReadFile returns the content of root/rel or fails the test.
func ReadFile(t *testing.T, root, rel string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", rel, err)
	}
	return string(data)
}

// InitGitRepo runs git init in dir, skipping the test when git is missing.
func InitGitRepo(t *testing.T, dir string) {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	cmd := exec.Command("git", "init", "--quiet")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git init failed: %v: %s", err, out)
	}
}
