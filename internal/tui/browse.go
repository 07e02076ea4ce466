// Package tui provides Bubble Tea models for terminal UI interactions.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chazuruo/actiondoc/internal/app"
)

const (
	listWidth    = 44
	previewWidth = 60
	minHeight    = 10
)

// BrowseModel is a Bubble Tea model for browsing collected workflows with a
// filter box and a preview of the selected workflow's interface.
type BrowseModel struct {
	// Entries are all workflows available to browse.
	Entries []app.Entry

	// Filtered holds indices into Entries matching the filter.
	Filtered []int

	// Filter is the text input narrowing the list.
	Filter textinput.Model

	// Preview shows the selected workflow.
	Preview viewport.Model

	// Quit indicates the user left without selecting.
	Quit bool

	// Confirmed indicates the user selected a workflow.
	Confirmed bool

	cursor int
	height int

	normalStyle   lipgloss.Style
	selectedStyle lipgloss.Style
	headerStyle   lipgloss.Style
	metadataStyle lipgloss.Style
	boxStyle      lipgloss.Style
}

// NewBrowseModel creates a browse model over entries.
func NewBrowseModel(entries []app.Entry) BrowseModel {
	ti := textinput.New()
	ti.Placeholder = "Filter workflows..."
	ti.Focus()

	m := BrowseModel{
		Entries: entries,
		Filter:  ti,
		Preview: viewport.New(previewWidth-4, 20),
		height:  24,

		normalStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		headerStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		metadataStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
	}
	m.applyFilter("")
	return m
}

// Init implements tea.Model.
func (m BrowseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.Quit = true
			return m, tea.Quit

		case "enter":
			if len(m.Filtered) > 0 {
				m.Confirmed = true
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
				m.refreshPreview()
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.Filtered)-1 {
				m.cursor++
				m.refreshPreview()
			}
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.Preview, cmd = m.Preview.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.height = max(msg.Height, minHeight)
		m.Preview.Height = m.height - 6
		return m, nil
	}

	var cmd tea.Cmd
	before := m.Filter.Value()
	m.Filter, cmd = m.Filter.Update(msg)
	if after := m.Filter.Value(); after != before {
		m.applyFilter(after)
	}
	return m, cmd
}

// applyFilter keeps the entries whose name, file, category or description
// contain query, case-insensitively, and resets the cursor.
func (m *BrowseModel) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	m.Filtered = m.Filtered[:0]
	for i, e := range m.Entries {
		if query == "" || matches(e, query) {
			m.Filtered = append(m.Filtered, i)
		}
	}
	m.cursor = 0
	m.refreshPreview()
}

func matches(e app.Entry, query string) bool {
	for _, field := range []string{e.Name, e.File, e.Category, e.Description} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func (m *BrowseModel) refreshPreview() {
	if sel := m.Selected(); sel != nil {
		m.Preview.SetContent(Details(*sel))
	} else {
		m.Preview.SetContent("")
	}
	m.Preview.GotoTop()
}

// Selected returns the entry under the cursor, or nil if nothing matches.
func (m BrowseModel) Selected() *app.Entry {
	if m.cursor < 0 || m.cursor >= len(m.Filtered) {
		return nil
	}
	return &m.Entries[m.Filtered[m.cursor]]
}

// View implements tea.Model.
func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(m.headerStyle.Render("Workflows"))
	b.WriteString("\n\n  ")
	b.WriteString(m.metadataStyle.Render("↑/↓: move • pgup/pgdown: scroll preview • enter: select • esc: quit"))
	b.WriteString("\n\n")

	left := m.boxStyle.Width(listWidth).Render(m.renderList())
	right := m.boxStyle.Width(previewWidth).Render(m.Preview.View())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	return b.String()
}

func (m BrowseModel) renderList() string {
	var b strings.Builder

	b.WriteString(m.Filter.View())
	b.WriteString("\n\n")
	b.WriteString(m.metadataStyle.Render(fmt.Sprintf("%d of %d workflow(s)", len(m.Filtered), len(m.Entries))))
	b.WriteString("\n\n")

	if len(m.Filtered) == 0 {
		b.WriteString("(no matches)")
		return b.String()
	}

	visible := max(m.height-10, 1)
	start := max(0, m.cursor-visible/2)
	end := min(len(m.Filtered), start+visible)

	for i := start; i < end; i++ {
		e := m.Entries[m.Filtered[i]]
		line := truncate(e.Name, listWidth-4)
		if i == m.cursor {
			b.WriteString(m.selectedStyle.Render("> " + line))
		} else {
			b.WriteString(m.normalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// Details renders the plain-text preview of one workflow.
func Details(e app.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", e.Name, e.File)
	fmt.Fprintf(&b, "Category: %s\n", e.Category)
	if e.Reusable {
		b.WriteString("Trigger:  workflow_call\n")
	} else {
		b.WriteString("Trigger:  internal\n")
	}
	fmt.Fprintf(&b, "\n%s\n", e.Description)

	for _, section := range []struct {
		title string
		names []string
	}{
		{"Inputs", e.Inputs},
		{"Outputs", e.Outputs},
		{"Secrets", e.Secrets},
	} {
		fmt.Fprintf(&b, "\n%s:\n", section.title)
		if len(section.names) == 0 {
			b.WriteString("  (none)\n")
			continue
		}
		for _, name := range section.names {
			fmt.Fprintf(&b, "  • %s\n", name)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
