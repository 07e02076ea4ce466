package render

import (
	"sort"
	"strings"
)

// Box-drawing connectors.
const (
	branchMid   = "├── "
	branchLast  = "└── "
	pipeIndent  = "│   "
	spaceIndent = "    "
)

// TreeFile is a workflow file listed in the folder tree.
type TreeFile struct {
	Name     string
	Reusable bool
}

// TreeAction is a composite action directory listed in the folder tree.
type TreeAction struct {
	Dir  string
	File string
}

// RenderTree renders the .github folder layout as a fenced text block.
// Workflow files are sorted by name and a category header is emitted each
// time the category changes along that order.
func (r *Renderer) RenderTree(files []TreeFile, actions []TreeAction) string {
	sorted := append([]TreeFile(nil), files...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	hasActions := len(actions) > 0

	lines := []string{".github/"}

	workflowsBranch, childIndent := branchMid, pipeIndent
	if !hasActions {
		workflowsBranch, childIndent = branchLast, spaceIndent
	}
	lines = append(lines, workflowsBranch+"workflows/")

	var current Category
	for i, f := range sorted {
		cat := r.opts.Classifier.Classify(f.Name, f.Name)
		if i == 0 || cat != current {
			if i > 0 {
				lines = append(lines, childIndent+"│")
			}
			lines = append(lines, childIndent+"# "+cat.String())
			current = cat
		}

		connector := branchMid
		if i == len(sorted)-1 {
			connector = branchLast
		}
		lines = append(lines, childIndent+connector+f.Name+" "+annotation(f.Reusable))
	}

	if hasActions {
		lines = append(lines, branchLast+"actions/")
		for i, a := range actions {
			connector, indent := branchMid, pipeIndent
			if i == len(actions)-1 {
				connector, indent = branchLast, spaceIndent
			}
			lines = append(lines,
				spaceIndent+connector+a.Dir+"/",
				spaceIndent+indent+branchLast+a.File,
			)
		}
	}

	return "```text\n" + strings.Join(lines, "\n") + "\n```"
}

func annotation(reusable bool) string {
	if reusable {
		return "(reusable)"
	}
	return "(internal)"
}
