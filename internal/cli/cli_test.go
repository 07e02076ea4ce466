package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/actiondoc/internal/app"
	"github.com/chazuruo/actiondoc/internal/config"
	docerrors "github.com/chazuruo/actiondoc/internal/errors"
	"github.com/chazuruo/actiondoc/internal/logger"
	"github.com/chazuruo/actiondoc/internal/testutil"
)

const testReadme = "# Workflows\n\n<!-- WORKFLOWS_START -->\n<!-- WORKFLOWS_END -->\n\n<!-- FOLDER_STRUCTURE_START -->\n<!-- FOLDER_STRUCTURE_END -->\n"

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { logger.SetLogOutput(os.Stderr) })

	cmd := NewRootCommand(BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2026-01-02"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// newTestRepo creates a repository with a config file, two workflows and a
// README carrying empty marker regions. It returns the root and config path.
func newTestRepo(t *testing.T) (string, string) {
	t.Helper()

	root, cfg := testutil.NewRepo(t)
	testutil.WriteWorkflow(t, root, "ci-go.yml", "# Builds Go code.\nname: 'Reusable: Go Build'\non:\n  workflow_call:\n    inputs:\n      go-version:\n        type: string\n")
	testutil.WriteWorkflow(t, root, "nightly.yml", "on:\n  schedule:\n    - cron: '0 0 * * *'\n")
	testutil.WriteFile(t, root, "README.md", testReadme)

	path := filepath.Join(root, config.FileName)
	require.NoError(t, config.Write(path, cfg))
	return root, path
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "abc123", info.Commit)
	assert.NotEmpty(t, info.Go)

	out, _, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "actiondoc version 1.2.3\n")
	assert.NotContains(t, out, "built by")
}

func TestGenerateCommand(t *testing.T) {
	root, cfgPath := newTestRepo(t)

	out, _, err := execute(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "updated README.md (1 reusable of 2 workflows, 0 actions)")

	readme := testutil.ReadFile(t, root, "README.md")
	assert.Contains(t, readme, "[Go Build](.github/workflows/ci-go.yml)")
	assert.Contains(t, readme, "nightly.yml (internal)")

	out, _, err = execute(t, "generate", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "README.md is already up to date")

	out, _, err = execute(t, "generate", "--config", cfgPath, "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "README.md is up to date")
	assert.Equal(t, readme, testutil.ReadFile(t, root, "README.md"))
}

func TestGenerateCommand_CheckStale(t *testing.T) {
	root, cfgPath := newTestRepo(t)

	out, stderr, err := execute(t, "generate", "--config", cfgPath, "--check")
	require.Error(t, err)
	assert.True(t, docerrors.IsStale(err))
	assert.Contains(t, out, "+++ README.md (generated)")
	assert.Contains(t, stderr, "README.md is out of date")
	assert.Equal(t, testReadme, testutil.ReadFile(t, root, "README.md"))
}

func TestGenerateCommand_DryRun(t *testing.T) {
	root, cfgPath := newTestRepo(t)

	out, _, err := execute(t, "generate", "--config", cfgPath, "--dry-run")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# Workflows\n"))
	assert.Contains(t, out, "### 🔨 CI / Build")
	assert.Equal(t, testReadme, testutil.ReadFile(t, root, "README.md"))
}

func TestGenerateCommand_JSON(t *testing.T) {
	_, cfgPath := newTestRepo(t)

	out, _, err := execute(t, "generate", "--config", cfgPath, "--json")
	require.NoError(t, err)

	var report app.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Written)
	assert.Equal(t, 2, report.Workflows)
	assert.NotEmpty(t, report.RunID)
}

func TestGenerateCommand_MissingMarker(t *testing.T) {
	root, cfgPath := newTestRepo(t)
	testutil.WriteFile(t, root, "README.md", "# No markers\n")

	_, stderr, err := execute(t, "generate", "--config", cfgPath)
	require.Error(t, err)
	assert.True(t, docerrors.IsMarkerMissing(err))
	assert.Contains(t, stderr, "add the missing marker")
	assert.Equal(t, "# No markers\n", testutil.ReadFile(t, root, "README.md"))
}

func TestGenerateCommand_CheckAndDryRunExclusive(t *testing.T) {
	_, cfgPath := newTestRepo(t)

	_, _, err := execute(t, "generate", "--config", cfgPath, "--check", "--dry-run")
	assert.Error(t, err)
}

func TestGenerateCommand_InvalidLogLevel(t *testing.T) {
	_, cfgPath := newTestRepo(t)

	_, _, err := execute(t, "generate", "--config", cfgPath, "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestListCommand(t *testing.T) {
	_, cfgPath := newTestRepo(t)

	out, _, err := execute(t, "list", "--config", cfgPath, "--format", "json")
	require.NoError(t, err)
	var entries []app.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Go Build", entries[0].Name)

	out, _, err = execute(t, "list", "--config", cfgPath, "--format", "plain", "--all")
	require.NoError(t, err)
	assert.Equal(t,
		".github/workflows/ci-go.yml\tCI / Build\tGo Build\n.github/workflows/nightly.yml\tMiscellaneous\tnightly\n",
		out)

	out, _, err = execute(t, "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "Go Build")
	assert.Contains(t, out, "go-version")
	assert.NotContains(t, out, "nightly")

	_, _, err = execute(t, "list", "--config", cfgPath, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestListCommand_Empty(t *testing.T) {
	root, cfg := testutil.NewRepo(t)
	cfgPath := filepath.Join(root, config.FileName)
	require.NoError(t, config.Write(cfgPath, cfg))

	out, _, err := execute(t, "list", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "No workflows found.\n", out)
}

func TestInitCommand(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(root, config.FileName)

	out, _, err := execute(t, "init", "--no-tui", "--config", cfgPath, "--title-prefix", "Shared")
	require.NoError(t, err)
	assert.Contains(t, out, "configuration written to "+cfgPath)
	assert.Contains(t, out, "added workflows and folder structure markers to README.md")

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Shared", cfg.Naming.TitlePrefix)
	assert.Equal(t, root, cfg.Paths.Root)

	readme := testutil.ReadFile(t, root, "README.md")
	assert.Contains(t, readme, "<!-- WORKFLOWS_START -->")
	assert.Contains(t, readme, "<!-- FOLDER_STRUCTURE_END -->")

	_, _, err = execute(t, "init", "--no-tui", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "init", "--no-tui", "--config", cfgPath, "--force", "--markers=false", "--readme", "docs/CI.md")
	require.NoError(t, err)
	cfg, err = config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "docs/CI.md", cfg.Paths.Readme)
	assert.NoFileExists(t, filepath.Join(root, "docs", "CI.md"))
}

func TestInitCommand_InvalidInput(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), config.FileName)

	_, _, err := execute(t, "init", "--no-tui", "--config", cfgPath, "--workflows-dir", "/abs/path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.NoFileExists(t, cfgPath)
}

func TestConfigCommand(t *testing.T) {
	root, cfgPath := newTestRepo(t)

	out, _, err := execute(t, "config", "--config", cfgPath, "--json")
	require.NoError(t, err)

	var got app.ConfigOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, cfgPath, got.ConfigPath)
	assert.Equal(t, root, got.Root)
	assert.Equal(t, filepath.Join(root, "README.md"), got.Readme)

	out, _, err = execute(t, "config", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Config: "+cfgPath)
}

func TestDisplayPath(t *testing.T) {
	assert.Equal(t, "README.md", displayPath("/repo", "/repo/README.md"))
	assert.Equal(t, ".github/README.md", displayPath("/repo", "/repo/.github/README.md"))
	assert.Equal(t, "/other/README.md", displayPath("/repo", "/other/README.md"))
}

func TestBrowseCommand_NoTUI(t *testing.T) {
	_, cfgPath := newTestRepo(t)

	_, _, err := execute(t, "browse", "--config", cfgPath, "--no-tui")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use 'actiondoc list'")
}
