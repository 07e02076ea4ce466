package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazuruo/actiondoc/internal/config"
	docerrors "github.com/chazuruo/actiondoc/internal/errors"
	"github.com/chazuruo/actiondoc/internal/testutil"
)

func TestList(t *testing.T) {
	_, cfg := setupRepo(t)
	ctx := context.Background()

	entries, err := List(ctx, cfg, ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{
		Name:        "Go Build",
		File:        ".github/workflows/ci-go.yml",
		Category:    "CI / Build",
		Description: "Builds and tests a Go module.",
		Reusable:    true,
		Inputs:      []string{"go-version"},
		Outputs:     []string{},
		Secrets:     []string{"codecov-token"},
	}, entries[0])

	all, err := List(ctx, cfg, ListOptions{All: true})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "stale", all[1].Name)
	assert.Equal(t, "Maintenance", all[1].Category)
	assert.False(t, all[1].Reusable)

	data, err := json.Marshal(all[1])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"inputs":[]`)
}

func TestList_MissingDirectory(t *testing.T) {
	_, cfg := testutil.NewRepo(t)
	cfg.Paths.WorkflowsDir = "nope"

	_, err := List(context.Background(), cfg, ListOptions{})
	assert.True(t, docerrors.IsNotFound(err))
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "custom.toml")
		cfg := config.DefaultConfig()
		cfg.Paths.Readme = "docs/README.md"
		require.NoError(t, config.Write(path, cfg))

		got, used, err := LoadConfig(ctx, path, t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, path, used)
		assert.Equal(t, dir, got.Paths.Root)
		assert.Equal(t, "docs/README.md", got.Paths.Readme)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, _, err := LoadConfig(ctx, filepath.Join(t.TempDir(), "missing.toml"), "")
		require.Error(t, err)
		assert.True(t, docerrors.IsNotFound(err))
	})

	t.Run("defaults outside a repository", func(t *testing.T) {
		dir := t.TempDir()

		got, used, err := LoadConfig(ctx, "", dir)
		require.NoError(t, err)
		assert.Empty(t, used)
		assert.Equal(t, dir, got.Paths.Root)
		assert.Equal(t, "README.md", got.Paths.Readme)
	})

	t.Run("repository config from a subdirectory", func(t *testing.T) {
		if _, err := exec.LookPath("git"); err != nil {
			t.Skip("git not installed")
		}
		root := t.TempDir()
		cmd := exec.Command("git", "init", "--quiet")
		cmd.Dir = root
		require.NoError(t, cmd.Run())

		cfg := config.DefaultConfig()
		cfg.Naming.TitlePrefix = "Shared"
		require.NoError(t, config.Write(filepath.Join(root, config.FileName), cfg))
		sub := filepath.Join(root, ".github", "workflows")
		require.NoError(t, os.MkdirAll(sub, 0755))

		got, used, err := LoadConfig(ctx, "", sub)
		require.NoError(t, err)
		assert.NotEmpty(t, used)
		assert.Equal(t, "Shared", got.Naming.TitlePrefix)
	})
}

func TestDescribeConfig(t *testing.T) {
	root, cfg := testutil.NewRepo(t)

	out := DescribeConfig(cfg, "")
	assert.Equal(t, root, out.Root)
	assert.Equal(t, filepath.Join(root, ".github", "workflows"), out.WorkflowsDir)
	assert.Equal(t, filepath.Join(root, "README.md"), out.Readme)

	var buf bytes.Buffer
	PrintConfig(&buf, out)
	assert.Contains(t, buf.String(), "Config: (defaults)\n")
	assert.Contains(t, buf.String(), "Title prefix: \"Reusable\"\n")

	buf.Reset()
	require.NoError(t, PrintConfigJSON(&buf, out))
	var decoded ConfigOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *out, decoded)
}
