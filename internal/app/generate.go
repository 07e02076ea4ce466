package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sirupsen/logrus"

	"github.com/chazuruo/actiondoc/internal/config"
	docerrors "github.com/chazuruo/actiondoc/internal/errors"
	"github.com/chazuruo/actiondoc/internal/logger"
	"github.com/chazuruo/actiondoc/internal/render"
	"github.com/chazuruo/actiondoc/internal/workflows/scan"
)

// GenerateOptions contains the options for the generate operation.
type GenerateOptions struct {
	// Check compares the generated document with the file on disk and
	// returns ErrStale when they differ. Nothing is written.
	Check bool
	// DryRun renders the document into Report.Output without writing it.
	DryRun bool
	// Readme overrides the configured target document. Relative paths are
	// resolved against the repository root.
	Readme string
}

// Report contains the result of a generate operation.
type Report struct {
	// RunID identifies the run in log output.
	RunID string `json:"run_id"`
	// Readme is the target document path.
	Readme string `json:"readme"`
	// Workflows is the number of parsed workflow files.
	Workflows int `json:"workflows"`
	// Reusable is the number of parsed reusable workflows.
	Reusable int `json:"reusable"`
	// Skipped lists the paths of files left out because they could not be parsed.
	Skipped []string `json:"skipped,omitempty"`
	// Actions is the number of composite actions in the folder tree.
	Actions int `json:"actions"`
	// Changed is true if the generated document differs from the file on disk.
	Changed bool `json:"changed"`
	// Written is true if the document was replaced on disk.
	Written bool `json:"written"`
	// Diff is a unified diff from the current to the generated document,
	// filled in check and dry-run modes.
	Diff string `json:"diff,omitempty"`
	// Output is the generated document.
	Output string `json:"-"`
}

// Generate regenerates the workflows table and folder tree regions of the
// target document. Any error leaves the document on disk untouched.
func Generate(ctx context.Context, cfg *config.Config, opts GenerateOptions) (*Report, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	report := &Report{RunID: uuid.New().String()}
	ctx = logger.WithLogger(ctx, logger.G(ctx).WithField("run", report.RunID))
	log := logger.G(ctx)

	report.Readme = cfg.ReadmePath()
	if opts.Readme != "" {
		report.Readme = opts.Readme
		if !filepath.IsAbs(report.Readme) {
			report.Readme = filepath.Join(cfg.Paths.Root, report.Readme)
		}
	}

	collector, err := scan.New(cfg)
	if err != nil {
		return nil, err
	}

	result, err := collector.Collect(ctx)
	if err != nil {
		return nil, docerrors.Wrap(err, "collect workflows")
	}
	report.Workflows = len(result.Records)
	for _, rec := range result.Records {
		if rec.IsReusable {
			report.Reusable++
		}
	}
	if result.Skipped != nil {
		for _, e := range result.Skipped.Errors {
			if pe, ok := docerrors.AsParseError(e); ok {
				report.Skipped = append(report.Skipped, pe.Path)
				continue
			}
			report.Skipped = append(report.Skipped, e.Error())
		}
	}

	treeFiles, err := treeFiles(ctx, collector)
	if err != nil {
		return nil, err
	}
	actions, err := collector.ListActions(ctx)
	if err != nil {
		return nil, err
	}
	treeActions := make([]render.TreeAction, len(actions))
	for i, a := range actions {
		treeActions[i] = render.TreeAction{Dir: a.Dir, File: a.File}
	}
	report.Actions = len(actions)

	r := render.FromConfig(cfg).WithLinkBase(linkBase(cfg.Paths.Root, report.Readme))
	table := r.RenderTable(result.Records)
	tree := r.RenderTree(treeFiles, treeActions)

	info, err := os.Stat(report.Readme)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("readme %s: %w", report.Readme, docerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("readme %s: %w: %w", report.Readme, docerrors.ErrIO, err)
	}
	current, err := os.ReadFile(report.Readme)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w: %w", report.Readme, docerrors.ErrIO, err)
	}

	output, err := render.Splice(string(current), table, tree, render.MarkersFromConfig(cfg), render.SectionsFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", report.Readme, err)
	}
	report.Output = output
	report.Changed = output != string(current)

	if (opts.Check || opts.DryRun) && report.Changed {
		report.Diff = unifiedDiff(cfg, report.Readme, string(current), output)
	}

	fields := logrus.Fields{
		"readme":    report.Readme,
		"workflows": report.Workflows,
		"reusable":  report.Reusable,
		"skipped":   len(report.Skipped),
		"changed":   report.Changed,
	}

	switch {
	case opts.Check:
		if report.Changed {
			log.WithFields(fields).Info("readme is out of date")
			return report, fmt.Errorf("%s: %w", report.Readme, docerrors.ErrStale)
		}
		log.WithFields(fields).Info("readme is up to date")
		return report, nil
	case opts.DryRun:
		log.WithFields(fields).Info("dry run, readme not written")
		return report, nil
	case !report.Changed:
		log.WithFields(fields).Info("readme already up to date")
		return report, nil
	}

	if err := writeFileAtomic(report.Readme, []byte(output), info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("%w: %w", docerrors.ErrIO, err)
	}
	report.Written = true

	log.WithFields(fields).Info("readme updated")
	return report, nil
}

// treeFiles re-enumerates the workflow files and annotates each with a
// textual reusability check. Files that cannot be read are left out.
func treeFiles(ctx context.Context, collector *scan.Collector) ([]render.TreeFile, error) {
	files, err := collector.ListFiles(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]render.TreeFile, 0, len(files))
	for _, f := range files {
		reusable, err := scan.IsCallable(f.Path)
		if err != nil {
			logger.G(ctx).WithFields(logrus.Fields{
				"file":  f.RelPath,
				"error": err,
			}).Warn("skipping workflow file in folder tree")
			continue
		}
		out = append(out, render.TreeFile{Name: f.Name, Reusable: reusable})
	}
	return out, nil
}

// linkBase returns the directory of readme relative to root, or "" when
// readme lies outside root.
func linkBase(root, readme string) string {
	rel, err := filepath.Rel(root, filepath.Dir(readme))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ""
	}
	return filepath.ToSlash(rel)
}

func unifiedDiff(cfg *config.Config, path, current, generated string) string {
	name := path
	if rel, err := filepath.Rel(cfg.Paths.Root, path); err == nil {
		name = filepath.ToSlash(rel)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(generated),
		FromFile: name + " (current)",
		ToFile:   name + " (generated)",
		Context:  3,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	return text
}
