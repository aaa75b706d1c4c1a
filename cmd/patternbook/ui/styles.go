package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the styled components of the browser.
type Styles struct {
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Content  lipgloss.Style
	Filter   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
}

// NewStyles returns the default browser palette.
func NewStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("62")).
			Padding(0, 2),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 2),
		Content: lipgloss.NewStyle().
			Padding(1, 2),
		Filter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}
