package main

import (
	"fmt"

	"patternbook/internal/render"

	"github.com/spf13/cobra"
)

// listCmd prints the corpus grouped by category.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the patterns in the corpus",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	fmt.Print(render.Listing(cat, render.DefaultStyles()))
	fmt.Printf("\n%d patterns\n", cat.Len())
	return nil
}
