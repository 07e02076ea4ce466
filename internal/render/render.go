// Package render turns workflow records into markdown fragments and splices
// them into marker-delimited regions of a document.
package render

import (
	"path/filepath"

	"github.com/chazuruo/actiondoc/internal/config"
)

// Options configures a Renderer.
type Options struct {
	// NameWidth is the wrap width for workflow names in the table.
	NameWidth int
	// DescriptionWidth is the wrap width for descriptions in the table.
	DescriptionWidth int
	// Classifier assigns categories. Nil means DefaultClassifier.
	Classifier *Classifier
	// LinkBase is the slash-separated directory of the target document,
	// relative to the repository root. Table links are made relative to it.
	// Empty means the repository root.
	LinkBase string
}

// Renderer produces the workflows table and folder tree fragments.
type Renderer struct {
	opts Options
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	if opts.Classifier == nil {
		opts.Classifier = DefaultClassifier()
	}
	return &Renderer{opts: opts}
}

// FromConfig creates a Renderer using the widths from cfg.
func FromConfig(cfg *config.Config) *Renderer {
	return New(Options{
		NameWidth:        cfg.Render.NameWidth,
		DescriptionWidth: cfg.Render.DescriptionWidth,
	})
}

// Classifier returns the classifier used by the renderer.
func (r *Renderer) Classifier() *Classifier {
	return r.opts.Classifier
}

// WithLinkBase returns a copy of r whose table links are relative to dir.
func (r *Renderer) WithLinkBase(dir string) *Renderer {
	opts := r.opts
	opts.LinkBase = dir
	return &Renderer{opts: opts}
}

// linkTarget rewrites a repository-relative path so that it resolves from
// LinkBase. Paths that cannot be expressed that way are returned unchanged.
func (r *Renderer) linkTarget(repoPath string) string {
	base := r.opts.LinkBase
	if base == "" || base == "." {
		return repoPath
	}
	rel, err := filepath.Rel(filepath.FromSlash(base), filepath.FromSlash(repoPath))
	if err != nil {
		return repoPath
	}
	return filepath.ToSlash(rel)
}
