package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chazuruo/actiondoc/internal/config"
	docerrors "github.com/chazuruo/actiondoc/internal/errors"
	"github.com/chazuruo/actiondoc/internal/render"
)

// EnsureMarkers appends the marker pairs that are absent from the target
// document, creating the document when it does not exist. It returns the
// names of the regions that were added. A pair with only one of its markers
// present is left alone and reported as an error.
func EnsureMarkers(cfg *config.Config) ([]string, error) {
	path := cfg.ReadmePath()
	markers := render.MarkersFromConfig(cfg)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w: %w", path, docerrors.ErrIO, err)
	}
	exists := err == nil
	doc := string(data)
	if !exists {
		doc = "# " + filepath.Base(cfg.Paths.Root) + "\n"
	}

	pairs := []struct {
		region     string
		begin, end string
	}{
		{render.RegionWorkflows, markers.WorkflowsStart, markers.WorkflowsEnd},
		{render.RegionTree, markers.TreeStart, markers.TreeEnd},
	}

	var added []string
	for _, pair := range pairs {
		hasBegin := strings.Contains(doc, pair.begin)
		hasEnd := strings.Contains(doc, pair.end)
		switch {
		case hasBegin && hasEnd:
			continue
		case hasBegin:
			return nil, &docerrors.MarkerError{Region: pair.region, Marker: pair.end, Err: docerrors.ErrMarkerMissing}
		case hasEnd:
			return nil, &docerrors.MarkerError{Region: pair.region, Marker: pair.begin, Err: docerrors.ErrMarkerMissing}
		}

		if !strings.HasSuffix(doc, "\n") {
			doc += "\n"
		}
		doc += "\n" + pair.begin + "\n" + pair.end + "\n"
		added = append(added, pair.region)
	}

	if len(added) == 0 {
		return nil, nil
	}

	perm := os.FileMode(0644)
	if exists {
		if info, err := os.Stat(path); err == nil {
			perm = info.Mode().Perm()
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := writeFileAtomic(path, []byte(doc), perm); err != nil {
		return nil, fmt.Errorf("%w: %w", docerrors.ErrIO, err)
	}
	return added, nil
}
