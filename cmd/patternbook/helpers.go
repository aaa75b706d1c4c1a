package main

import (
	"fmt"
	"os"
	"time"

	"patternbook/docs"
	"patternbook/internal/catalog"
	"patternbook/internal/runner"
)

// loadCatalog loads the corpus: a directory when one is configured, the
// embedded corpus otherwise.
func loadCatalog() (*catalog.Catalog, error) {
	if cfg.Docs.Dir != "" {
		c, err := catalog.Load(os.DirFS(cfg.Docs.Dir), ".")
		if err != nil {
			return nil, fmt.Errorf("loading corpus from %s: %w", cfg.Docs.Dir, err)
		}
		return c, nil
	}
	return catalog.Load(docs.FS, docs.Root)
}

// newRunner builds the snippet runner from config, with an optional
// command-level timeout override.
func newRunner(override time.Duration) (*runner.Runner, error) {
	perSnippet, err := cfg.RunnerTimeout()
	if err != nil {
		return nil, err
	}
	if override > 0 {
		perSnippet = override
	}
	return runner.New(perSnippet, cfg.Runner.ExtraPackages), nil
}
