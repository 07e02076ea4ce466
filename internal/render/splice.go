package render

import (
	"fmt"
	"strings"

	"github.com/chazuruo/actiondoc/internal/config"
	docerrors "github.com/chazuruo/actiondoc/internal/errors"
)

// Region names used in MarkerError.
const (
	RegionWorkflows = "workflows"
	RegionTree      = "folder structure"
)

// Markers are the literal comments bracketing the generated regions.
type Markers struct {
	WorkflowsStart string
	WorkflowsEnd   string
	TreeStart      string
	TreeEnd        string
}

// Sections are the fixed texts emitted at the top of each generated region.
type Sections struct {
	WorkflowsHeading string
	TreeHeading      string
	Notice           string
}

// MarkersFromConfig returns the markers configured in cfg.
func MarkersFromConfig(cfg *config.Config) Markers {
	return Markers{
		WorkflowsStart: cfg.Markers.WorkflowsStart,
		WorkflowsEnd:   cfg.Markers.WorkflowsEnd,
		TreeStart:      cfg.Markers.TreeStart,
		TreeEnd:        cfg.Markers.TreeEnd,
	}
}

// SectionsFromConfig returns the section texts configured in cfg.
func SectionsFromConfig(cfg *config.Config) Sections {
	return Sections{
		WorkflowsHeading: cfg.Sections.WorkflowsHeading,
		TreeHeading:      cfg.Sections.TreeHeading,
		Notice:           cfg.Sections.Notice,
	}
}

type span struct {
	region      string
	begin, end  string
	heading     string
	content     string
	start, stop int
}

// Splice replaces the workflows and folder structure regions of doc. Each
// region, from its begin marker through its end marker inclusive, becomes
// the begin marker, the heading, the notice, the content and the end
// marker. Text outside both regions is returned unchanged.
//
// A missing marker, an end marker preceding its begin marker or two
// overlapping regions yield a *errors.MarkerError and no output.
func Splice(doc, workflowsMD, treeMD string, markers Markers, sections Sections) (string, error) {
	spans := []*span{
		{
			region:  RegionWorkflows,
			begin:   markers.WorkflowsStart,
			end:     markers.WorkflowsEnd,
			heading: sections.WorkflowsHeading,
			content: workflowsMD,
		},
		{
			region:  RegionTree,
			begin:   markers.TreeStart,
			end:     markers.TreeEnd,
			heading: sections.TreeHeading,
			content: treeMD,
		},
	}

	for _, s := range spans {
		if err := s.locate(doc); err != nil {
			return "", err
		}
		if err := checkContent(s, markers); err != nil {
			return "", err
		}
	}

	first, second := spans[0], spans[1]
	if second.start < first.start {
		first, second = second, first
	}
	if second.start < first.stop {
		return "", &docerrors.MarkerError{
			Region: second.region,
			Marker: second.begin,
			Err:    fmt.Errorf("overlaps %s region: %w", first.region, docerrors.ErrInvalid),
		}
	}

	var b strings.Builder
	b.Grow(len(doc) + len(workflowsMD) + len(treeMD))
	b.WriteString(doc[:first.start])
	b.WriteString(first.block(sections.Notice))
	b.WriteString(doc[first.stop:second.start])
	b.WriteString(second.block(sections.Notice))
	b.WriteString(doc[second.stop:])
	return b.String(), nil
}

// locate finds the first begin marker and the first end marker after it.
func (s *span) locate(doc string) error {
	start := strings.Index(doc, s.begin)
	if start < 0 {
		return &docerrors.MarkerError{Region: s.region, Marker: s.begin, Err: docerrors.ErrMarkerMissing}
	}

	afterBegin := start + len(s.begin)
	end := strings.Index(doc[afterBegin:], s.end)
	if end < 0 {
		err := docerrors.ErrMarkerMissing
		if strings.Contains(doc[:start], s.end) {
			return &docerrors.MarkerError{
				Region: s.region,
				Marker: s.end,
				Err:    fmt.Errorf("end marker precedes begin marker: %w", err),
			}
		}
		return &docerrors.MarkerError{Region: s.region, Marker: s.end, Err: err}
	}

	s.start = start
	s.stop = afterBegin + end + len(s.end)
	return nil
}

func (s *span) block(notice string) string {
	var parts []string
	if s.heading != "" {
		parts = append(parts, s.heading)
	}
	if notice != "" {
		parts = append(parts, notice)
	}
	if content := strings.TrimSpace(s.content); content != "" {
		parts = append(parts, content)
	}
	return s.begin + "\n" + strings.Join(parts, "\n\n") + "\n" + s.end
}

// checkContent rejects generated content that would reintroduce a marker
// and break the next splice.
func checkContent(s *span, markers Markers) error {
	for _, m := range []string{markers.WorkflowsStart, markers.WorkflowsEnd, markers.TreeStart, markers.TreeEnd} {
		if strings.Contains(s.content, m) {
			return &docerrors.MarkerError{
				Region: s.region,
				Marker: m,
				Err:    fmt.Errorf("generated content contains marker: %w", docerrors.ErrInvalid),
			}
		}
	}
	return nil
}
