package main

import (
	"fmt"
	"strings"

	"patternbook/internal/render"

	"github.com/spf13/cobra"
)

var showPlain bool

// showCmd renders a single pattern document.
var showCmd = &cobra.Command{
	Use:   "show [slug]",
	Short: "Render a pattern document in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print raw markdown without styling")
}

func runShow(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	doc, err := cat.Get(args[0])
	if err != nil {
		return err
	}

	if showPlain {
		fmt.Println(doc.Body)
		return nil
	}
	fmt.Print(render.Markdown(doc.Body, cfg.Render.Style, cfg.Render.Wrap))

	if related, _ := cat.Related(doc.Slug); len(related) > 0 {
		names := make([]string, 0, len(related))
		for _, r := range related {
			names = append(names, r.Slug)
		}
		styles := render.DefaultStyles()
		fmt.Printf("%s %s\n", styles.Muted.Render("related:"), strings.Join(names, ", "))
	}
	return nil
}
