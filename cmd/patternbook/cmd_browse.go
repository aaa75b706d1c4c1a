package main

import (
	"fmt"

	"patternbook/cmd/patternbook/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCmd launches the interactive corpus browser.
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the corpus interactively",
	RunE:  runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	r, err := newRunner(0)
	if err != nil {
		return err
	}

	model := ui.New(cat, r, cfg.Render.Style, cfg.Render.Wrap)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
