package render

import (
	"strings"

	"github.com/chazuruo/actiondoc/internal/workflows"
)

// NoWorkflows is rendered instead of a table when there are no reusable workflows.
const NoWorkflows = "No reusable workflows found."

const (
	tableHeader    = "| Workflow | Description | Inputs | Outputs | Secrets |"
	tableSeparator = "|----------|-------------|--------|---------|---------|"
	noneCell       = "_None_"
)

type categoryGroup struct {
	category Category
	records  []workflows.Record
}

// RenderTable renders the reusable records as one markdown table per
// category. Categories appear in the order they are first seen in records
// and each category keeps the input order of its records.
func (r *Renderer) RenderTable(records []workflows.Record) string {
	var groups []*categoryGroup
	index := make(map[Category]*categoryGroup)

	for _, rec := range records {
		if !rec.IsReusable {
			continue
		}
		cat := r.opts.Classifier.Classify(rec.FileName, rec.Name)
		g, ok := index[cat]
		if !ok {
			g = &categoryGroup{category: cat}
			index[cat] = g
			groups = append(groups, g)
		}
		g.records = append(g.records, rec)
	}

	if len(groups) == 0 {
		return NoWorkflows
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("### " + g.category.String() + "\n\n")
		b.WriteString(tableHeader + "\n")
		b.WriteString(tableSeparator + "\n")
		for _, rec := range g.records {
			b.WriteString(r.tableRow(rec))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) tableRow(rec workflows.Record) string {
	name := escapeCell(WrapText(singleLine(rec.Name), r.opts.NameWidth))
	desc := escapeCell(WrapText(singleLine(rec.Description), r.opts.DescriptionWidth))

	cells := []string{
		"[" + name + "](" + r.linkTarget(rec.FilePath) + ")",
		desc,
		paramCell(rec.Inputs),
		paramCell(rec.Outputs),
		paramCell(rec.Secrets),
	}
	return "| " + strings.Join(cells, " | ") + " |"
}

func paramCell(params workflows.Params) string {
	if len(params) == 0 {
		return noneCell
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = "`" + escapeCell(p.Name) + "`"
	}
	return strings.Join(names, LineBreak)
}

// singleLine folds line breaks into spaces; a raw newline ends a table row.
func singleLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
