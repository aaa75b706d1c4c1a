// Package ui implements the interactive corpus browser: a filterable table
// of patterns and a rendered document view with on-demand example runs.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"patternbook/internal/catalog"
	"patternbook/internal/logging"
	"patternbook/internal/render"
	"patternbook/internal/runner"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// viewMode selects which pane the browser shows.
type viewMode int

const (
	listView viewMode = iota
	docView
)

// runResultMsg carries the outcome of an example run back into Update.
type runResultMsg struct {
	slug   string
	output string
	err    error
}

// Model is the bubbletea model for the browser.
type Model struct {
	cat    *catalog.Catalog
	runner *runner.Runner
	style  string // glamour style
	wrap   int

	mode     viewMode
	table    table.Model
	viewport viewport.Model
	filter   textinput.Model
	filtered []*catalog.Document

	current   *catalog.Document
	runOutput string // transcript of the last example run, shown under the doc
	running   bool

	styles Styles
	width  int
	height int
	ready  bool
}

// New creates a browser over the corpus.
func New(cat *catalog.Catalog, r *runner.Runner, glamourStyle string, wrap int) Model {
	t := table.New(
		table.WithColumns(patternColumns(60)),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	fi := textinput.New()
	fi.Placeholder = "Filter by slug or name..."
	fi.CharLimit = 64

	m := Model{
		cat:    cat,
		runner: r,
		style:  glamourStyle,
		wrap:   wrap,
		table:  t,
		filter: fi,
		styles: NewStyles(),
	}
	m.applyFilter("")
	return m
}

func patternColumns(width int) []table.Column {
	slugW := 26
	catW := 12
	nameW := width - slugW - catW
	if nameW < 10 {
		nameW = 10
	}
	return []table.Column{
		{Title: "Slug", Width: slugW},
		{Title: "Category", Width: catW},
		{Title: "Name", Width: nameW},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetColumns(patternColumns(msg.Width - 4))
		m.table.SetHeight(msg.Height - 6)
		m.viewport = viewport.New(msg.Width, msg.Height-4)
		m.ready = true
		if m.current != nil {
			m.viewport.SetContent(m.renderDoc())
		}
		return m, nil

	case runResultMsg:
		m.running = false
		if msg.err != nil {
			m.runOutput = m.styles.Error.Render("example failed: " + msg.err.Error())
		} else {
			m.runOutput = msg.output
		}
		logging.UI("browse: ran %s", msg.slug)
		if m.current != nil && m.current.Slug == msg.slug {
			m.viewport.SetContent(m.renderDoc())
			m.viewport.GotoBottom()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter input captures everything except its exit keys.
	if m.filter.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.filter.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter(m.filter.Value())
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		if m.mode == listView {
			m.filter.Focus()
			return m, textinput.Blink
		}

	case "enter":
		if m.mode == listView {
			if doc := m.selectedDoc(); doc != nil {
				m.current = doc
				m.runOutput = ""
				m.mode = docView
				if m.ready {
					m.viewport.SetContent(m.renderDoc())
					m.viewport.GotoTop()
				}
			}
			return m, nil
		}

	case "esc":
		if m.mode == docView {
			m.mode = listView
			return m, nil
		}

	case "r":
		if m.mode == docView && m.current != nil && !m.running {
			m.running = true
			return m, m.runExample(m.current)
		}
	}

	return m.updateFocused(msg)
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.mode == listView {
		m.table, cmd = m.table.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// runExample interprets the current document's snippet off the UI loop.
func (m Model) runExample(doc *catalog.Document) tea.Cmd {
	r := m.runner
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		res, err := r.Run(ctx, doc.Example.Source)
		if err != nil {
			return runResultMsg{slug: doc.Slug, err: err}
		}
		return runResultMsg{slug: doc.Slug, output: res.Stdout}
	}
}

// applyFilter rebuilds the table rows for the current filter text.
func (m *Model) applyFilter(q string) {
	q = strings.ToLower(strings.TrimSpace(q))
	m.filtered = m.filtered[:0]
	var rows []table.Row
	for _, doc := range m.cat.All() {
		if q != "" &&
			!strings.Contains(strings.ToLower(doc.Slug), q) &&
			!strings.Contains(strings.ToLower(doc.Name), q) {
			continue
		}
		m.filtered = append(m.filtered, doc)
		rows = append(rows, table.Row{doc.Slug, string(doc.Category), doc.Name})
	}
	m.table.SetRows(rows)
}

func (m Model) selectedDoc() *catalog.Document {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.filtered) {
		return nil
	}
	return m.filtered[idx]
}

// renderDoc renders the current document plus any captured run output.
func (m Model) renderDoc() string {
	if m.current == nil {
		return ""
	}
	wrap := m.wrap
	if m.width > 0 && m.width-4 < wrap {
		wrap = m.width - 4
	}
	out := render.Markdown(m.current.Body, m.style, wrap)
	if m.runOutput != "" {
		out += "\n" + m.styles.Success.Render("── example run ──") + "\n" + m.runOutput
	}
	return out
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading corpus..."
	}

	switch m.mode {
	case docView:
		header := m.styles.Header.Render("patternbook · " + m.current.Name)
		footer := m.styles.Footer.Render("esc back · r run example · q quit")
		return fmt.Sprintf("%s\n%s\n%s", header, m.viewport.View(), footer)
	default:
		header := m.styles.Header.Render(fmt.Sprintf("patternbook · %d patterns", len(m.filtered)))
		filterLine := ""
		if m.filter.Focused() || m.filter.Value() != "" {
			filterLine = m.styles.Filter.Render("filter: "+m.filter.View()) + "\n"
		}
		footer := m.styles.Footer.Render("enter open · / filter · q quit")
		return fmt.Sprintf("%s\n%s%s\n%s", header, filterLine, m.styles.Content.Render(m.table.View()), footer)
	}
}
