// Package render turns pattern documents into styled terminal output:
// glamour for the markdown bodies, lipgloss for listings and status lines.
package render

import (
	"fmt"
	"strings"

	"patternbook/internal/catalog"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Styles groups the lipgloss styles used by listings and reports.
type Styles struct {
	Title    lipgloss.Style
	Category lipgloss.Style
	Slug     lipgloss.Style
	Summary  lipgloss.Style
	Pass     lipgloss.Style
	Fail     lipgloss.Style
	Warn     lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultStyles returns the standard palette.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Category: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Slug:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Summary:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Pass:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Fail:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// NewMarkdownRenderer builds a glamour renderer for the configured style.
func NewMarkdownRenderer(style string, wrap int) (*glamour.TermRenderer, error) {
	if wrap <= 0 {
		wrap = 100
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wrap)}
	switch style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	return glamour.NewTermRenderer(opts...)
}

// Markdown renders a markdown body, falling back to the raw text when
// glamour fails or panics (it renders untrusted documents).
func Markdown(body, style string, wrap int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = body
		}
	}()

	renderer, err := NewMarkdownRenderer(style, wrap)
	if err != nil {
		return body
	}
	rendered, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return rendered
}

// Listing formats the catalog grouped by category.
func Listing(c *catalog.Catalog, styles Styles) string {
	var sb strings.Builder
	var current catalog.Category
	for _, doc := range c.All() {
		if doc.Category != current {
			if current != "" {
				sb.WriteString("\n")
			}
			current = doc.Category
			sb.WriteString(styles.Category.Render(strings.ToUpper(string(current))))
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("  %s  %s\n",
			styles.Slug.Render(fmt.Sprintf("%-24s", doc.Slug)),
			styles.Summary.Render(doc.Summary)))
	}
	return sb.String()
}
