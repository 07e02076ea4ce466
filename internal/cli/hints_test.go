package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docerrors "github.com/chazuruo/actiondoc/internal/errors"
	"github.com/chazuruo/actiondoc/internal/testutil"
)

func TestHint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "config error",
			err:  &docerrors.ConfigError{Path: "/repo/.actiondoc.toml", Err: docerrors.ErrInvalid},
			want: "fix /repo/.actiondoc.toml or run 'actiondoc init --force' to recreate it",
		},
		{
			name: "missing marker",
			err: fmt.Errorf("failed to update README.md: %w",
				&docerrors.MarkerError{Region: "workflows", Marker: "<!-- WORKFLOWS_END -->", Err: docerrors.ErrMarkerMissing}),
			want: "add the missing marker <!-- WORKFLOWS_END --> to the README and run again",
		},
		{
			name: "overlapping regions",
			err:  &docerrors.MarkerError{Region: "workflows", Marker: "<!-- WORKFLOWS_START -->", Err: docerrors.ErrInvalid},
			want: "each marker must appear once and the workflows region must not overlap the other",
		},
		{
			name: "not found",
			err:  docerrors.Wrap(fmt.Errorf("readme /repo/README.md: %w", docerrors.ErrNotFound), "generate"),
			want: "run 'actiondoc init' to create the configuration and README markers",
		},
		{
			name: "io",
			err:  fmt.Errorf("%w: %w", docerrors.ErrIO, os.ErrPermission),
			want: "check that the files are readable and the README is writable",
		},
		{
			name: "other",
			err:  errors.New("boom"),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hint(tt.err))
		})
	}
}

func TestGenerateCommand_MissingReadmeHint(t *testing.T) {
	root, cfgPath := newTestRepo(t)
	require.NoError(t, os.Remove(filepath.Join(root, "README.md")))

	_, stderr, err := execute(t, "generate", "--config", cfgPath)
	require.Error(t, err)
	assert.True(t, docerrors.IsNotFound(err))
	assert.Contains(t, stderr, "run 'actiondoc init'")
}

func TestListCommand_BrokenConfigHint(t *testing.T) {
	root := t.TempDir()
	cfgPath := testutil.WriteFile(t, root, ".actiondoc.toml", "[scan]\nworkers = 0\n")

	_, stderr, err := execute(t, "list", "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, stderr, "fix "+cfgPath)
}
