// Package gitrepo locates the Git repository that holds the workflows.
// It shells out to the git binary rather than reading .git directly.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repo is a Git working tree rooted at Path.
type Repo interface {
	// Path returns the directory the repository was opened at.
	Path() string

	// TopLevel returns the absolute path of the working tree root.
	TopLevel(ctx context.Context) (string, error)
}

type gitRepo struct {
	path string
}

// GitError wraps an error from a Git command.
type GitError struct {
	// Args is the arguments passed to the Git command.
	Args []string
	// Err is the underlying error.
	Err error
	// ExitCode is the exit code from the Git command.
	ExitCode int
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), e.Err.Error())
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// New returns a Repo for the directory at path. The directory is not checked.
func New(path string) Repo {
	return &gitRepo{path: path}
}

func (r *gitRepo) Path() string {
	return r.path
}

func (r *gitRepo) TopLevel(ctx context.Context) (string, error) {
	output, err := r.runGit(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return filepath.Clean(strings.TrimSpace(output)), nil
}

// FindRoot returns the working tree root containing dir, or dir itself when
// dir is not inside a Git repository or git is not installed.
func FindRoot(ctx context.Context, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	top, err := New(abs).TopLevel(ctx)
	if err != nil {
		var gitErr *GitError
		var execErr *exec.Error
		if errors.As(err, &gitErr) || errors.As(err, &execErr) {
			return abs, nil
		}
		return "", err
	}
	return top, nil
}

// runGit executes a git command in the repository directory.
func (r *gitRepo) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.path

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		var exitCode int
		var stderr []byte
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			exitCode = ee.ExitCode()
			stderr = ee.Stderr
		} else {
			return "", err
		}
		return "", &GitError{
			Args:     args,
			Err:      fmt.Errorf("%w: %s", err, strings.TrimSpace(string(stderr))),
			ExitCode: exitCode,
		}
	}

	return string(output), nil
}
