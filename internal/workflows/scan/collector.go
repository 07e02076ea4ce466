// Package scan enumerates workflow definition files and builds their
// documentation records.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/chazuruo/actiondoc/internal/config"
	docerrors "github.com/chazuruo/actiondoc/internal/errors"
	"github.com/chazuruo/actiondoc/internal/logger"
	"github.com/chazuruo/actiondoc/internal/workflows"
)

// Collector reads workflow files from the configured directory.
type Collector struct {
	config  *config.Config
	matcher glob.Glob
}

// File is a workflow file found during enumeration.
type File struct {
	// Path is the on-disk path.
	Path string
	// RelPath is the slash-separated path relative to the repository root.
	RelPath string
	// Name is the file's base name.
	Name string
}

// Result is the outcome of Collect.
type Result struct {
	// Records holds one record per successfully parsed file, sorted by file name.
	Records []workflows.Record
	// Skipped aggregates the per-file errors of excluded files. Nil when
	// every file parsed.
	Skipped *multierror.Error
}

// SkippedCount returns the number of files excluded from Records.
func (r *Result) SkippedCount() int {
	if r.Skipped == nil {
		return 0
	}
	return len(r.Skipped.Errors)
}

// New creates a Collector for cfg.
func New(cfg *config.Config) (*Collector, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	matcher, err := glob.Compile(cfg.Paths.WorkflowsGlob, '/')
	if err != nil {
		return nil, &docerrors.ConfigError{Err: fmt.Errorf("invalid workflows glob %q: %w", cfg.Paths.WorkflowsGlob, err)}
	}

	return &Collector{
		config:  cfg,
		matcher: matcher,
	}, nil
}

// ListFiles returns every workflow file matching the configured pattern,
// sorted by file name.
func (c *Collector) ListFiles(ctx context.Context) ([]File, error) {
	dir := c.config.WorkflowsPath()
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("workflows directory %s: %w", dir, docerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("workflows directory %s: %w: %w", dir, docerrors.ErrIO, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workflows path %s is not a directory: %w", dir, docerrors.ErrInvalid)
	}

	var files []File
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if !c.matcher.Match(filepath.ToSlash(rel)) {
			return nil
		}

		files = append(files, File{
			Path:    path,
			RelPath: c.repoRelative(path),
			Name:    d.Name(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Name != files[j].Name {
			return files[i].Name < files[j].Name
		}
		return files[i].RelPath < files[j].RelPath
	})

	logger.G(ctx).WithField("count", len(files)).Debug("enumerated workflow files")
	return files, nil
}

// Collect parses every workflow file. Files that cannot be read or parsed
// are logged as warnings and left out of the result; they never fail the
// batch.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	files, err := c.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	opts := workflows.ParseOptions{TitlePrefix: c.config.Naming.TitlePrefix}
	records := make([]*workflows.Record, len(files))
	errs := make([]error, len(files))

	workers := c.config.Scan.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	// Each worker writes only to its own slots, so no locking is needed.
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rec, err := workflows.LoadYAML(files[i].Path, files[i].RelPath, opts)
				if err != nil {
					errs[i] = &docerrors.ParseError{Path: files[i].RelPath, Err: err}
					continue
				}
				records[i] = &rec
			}
		}()
	}

dispatch:
	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Records: make([]workflows.Record, 0, len(files))}
	log := logger.G(ctx)
	for i := range files {
		if errs[i] != nil {
			log.WithFields(logrus.Fields{
				"file":  files[i].RelPath,
				"error": errs[i].(*docerrors.ParseError).Err,
			}).Warn("skipping workflow file")
			result.Skipped = multierror.Append(result.Skipped, errs[i])
			continue
		}
		result.Records = append(result.Records, *records[i])
	}

	log.WithFields(logrus.Fields{
		"parsed":  len(result.Records),
		"skipped": result.SkippedCount(),
	}).Debug("collected workflows")

	return result, nil
}

// repoRelative converts an on-disk path to a slash-separated path relative
// to the repository root.
func (c *Collector) repoRelative(path string) string {
	rel, err := filepath.Rel(c.config.Paths.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
