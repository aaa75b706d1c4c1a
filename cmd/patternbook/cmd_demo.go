package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// demoCmd interprets a pattern's example and prints its transcript.
var demoCmd = &cobra.Command{
	Use:   "demo [slug]",
	Short: "Run a pattern's example and print its console output",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	doc, err := cat.Get(args[0])
	if err != nil {
		return err
	}
	r, err := newRunner(0)
	if err != nil {
		return err
	}

	logger.Debug("running example", zap.String("slug", doc.Slug))
	res, err := r.Run(ctx, doc.Example.Source)
	if err != nil {
		return fmt.Errorf("example failed: %w", err)
	}

	fmt.Print(res.Stdout)
	if res.Stderr != "" {
		fmt.Print(res.Stderr)
	}
	logger.Debug("example finished", zap.Duration("elapsed", res.Duration))
	return nil
}
