package app

import (
	"context"

	"github.com/chazuruo/actiondoc/internal/config"
	docerrors "github.com/chazuruo/actiondoc/internal/errors"
	"github.com/chazuruo/actiondoc/internal/render"
	"github.com/chazuruo/actiondoc/internal/workflows/scan"
)

// ListOptions contains the options for the list operation.
type ListOptions struct {
	// All includes workflows without the callable trigger.
	All bool
}

// Entry is one workflow in list output.
type Entry struct {
	Name        string   `json:"name"`
	File        string   `json:"file"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Reusable    bool     `json:"reusable"`
	Inputs      []string `json:"inputs"`
	Outputs     []string `json:"outputs"`
	Secrets     []string `json:"secrets"`
}

// List collects the workflows of the repository, classified the same way
// the generated table groups them.
func List(ctx context.Context, cfg *config.Config, opts ListOptions) ([]Entry, error) {
	collector, err := scan.New(cfg)
	if err != nil {
		return nil, err
	}

	result, err := collector.Collect(ctx)
	if err != nil {
		return nil, docerrors.Wrap(err, "collect workflows")
	}

	classifier := render.DefaultClassifier()
	entries := make([]Entry, 0, len(result.Records))
	for _, rec := range result.Records {
		if !opts.All && !rec.IsReusable {
			continue
		}
		entries = append(entries, Entry{
			Name:        rec.Name,
			File:        rec.FilePath,
			Category:    classifier.Classify(rec.FileName, rec.Name).Label,
			Description: rec.Description,
			Reusable:    rec.IsReusable,
			Inputs:      rec.Inputs.Names(),
			Outputs:     rec.Outputs.Names(),
			Secrets:     rec.Secrets.Names(),
		})
	}
	return entries, nil
}
