package main

import (
	"fmt"
	"strings"

	"patternbook/internal/index"
	"patternbook/internal/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var searchLimit int

// searchCmd queries the full-text index.
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over the corpus",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

// indexCmd groups index maintenance.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Search index maintenance",
}

var indexRebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the search index from the corpus",
	RunE:  runIndexRebuild,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "Maximum hits")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	ix, err := index.Open(cfg.IndexPath())
	if err != nil {
		return err
	}
	defer ix.Close()

	// First search builds the index; after that, corpus edits make the
	// index stale and the search warns instead of rebuilding behind the
	// user's back.
	built, err := ix.Built()
	if err != nil {
		return err
	}
	if !built {
		fmt.Println("building search index...")
		if err := ix.Rebuild(cat); err != nil {
			return err
		}
	} else if stale, err := ix.Stale(cat); err != nil {
		return err
	} else if stale {
		logger.Debug("index stale", zap.String("path", cfg.IndexPath()))
		fmt.Println("warning: the search index is stale for this corpus; run `patternbook index rebuild` to refresh it")
	}

	query := strings.Join(args, " ")
	hits, err := ix.Search(query, searchLimit)
	if err != nil {
		return err
	}

	styles := render.DefaultStyles()
	if len(hits) == 0 {
		fmt.Printf("no matches for %q\n", query)
		return nil
	}
	for _, h := range hits {
		fmt.Printf("%s %s\n    %s\n",
			styles.Slug.Render(h.Slug),
			styles.Muted.Render("("+h.Category+")"),
			h.Fragment)
	}
	return nil
}

func runIndexRebuild(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	ix, err := index.Open(cfg.IndexPath())
	if err != nil {
		return err
	}
	defer ix.Close()

	if err := ix.Rebuild(cat); err != nil {
		return err
	}
	fmt.Printf("indexed %d documents at %s\n", cat.Len(), cfg.IndexPath())
	return nil
}
