package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"patternbook/internal/render"
	"patternbook/internal/verify"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verifyWatch   bool
	verifyWorkers int
)

// verifyCmd checks that every example still prints its documented transcript.
var verifyCmd = &cobra.Command{
	Use:   "verify [slug...]",
	Short: "Check documents' examples against their expected transcripts",
	Long: `Interprets each document's example snippet and compares the captured
output to the transcript the document shows. Any difference is drift: either
the snippet or the transcript is lying to the reader.

With --watch, the corpus directory is watched and edited documents are
re-verified as they settle.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVarP(&verifyWatch, "watch", "w", false, "Re-verify documents as they change (requires --docs)")
	verifyCmd.Flags().IntVar(&verifyWorkers, "workers", 4, "Snippets verified in parallel")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if verifyWatch {
		return runVerifyWatch(ctx, cancel)
	}

	ctx, tcancel := context.WithTimeout(ctx, timeout)
	defer tcancel()

	v, err := buildVerifier()
	if err != nil {
		return err
	}
	report, err := v.Corpus(ctx, args, verifyWorkers)
	if err != nil {
		return err
	}
	printReport(report)
	if !report.OK() {
		return fmt.Errorf("%d of %d documents drifted or failed",
			report.Drifted+report.Failed, len(report.Results))
	}
	return nil
}

func buildVerifier() (*verify.Verifier, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	r, err := newRunner(0)
	if err != nil {
		return nil, err
	}
	return verify.New(cat, r), nil
}

func printReport(report *verify.Report) {
	styles := render.DefaultStyles()
	for _, res := range report.Results {
		switch res.Status {
		case verify.StatusPass:
			fmt.Printf("%s %s (%v)\n", styles.Pass.Render("PASS "), res.Slug, res.Duration)
		case verify.StatusDrift:
			fmt.Printf("%s %s\n%s\n", styles.Fail.Render("DRIFT"), res.Slug, res.Diff)
		case verify.StatusError:
			fmt.Printf("%s %s: %s\n", styles.Fail.Render("ERROR"), res.Slug, res.Err)
		}
	}
	fmt.Printf("\n%d pass, %d drift, %d error in %v\n",
		report.Passed, report.Drifted, report.Failed, report.Elapsed)
}

// runVerifyWatch re-verifies documents as the corpus directory changes.
func runVerifyWatch(ctx context.Context, cancel context.CancelFunc) error {
	if cfg.Docs.Dir == "" {
		return fmt.Errorf("--watch needs a corpus directory (--docs); the embedded corpus cannot change")
	}

	onChange := func(ctx context.Context, path string) {
		// Reload so the edited document is picked up; a corpus that no
		// longer loads is reported and watched for the fix.
		v, err := buildVerifier()
		if err != nil {
			fmt.Printf("corpus broken: %v\n", err)
			return
		}
		slug := slugForPath(path)
		var slugs []string
		if slug != "" {
			slugs = []string{slug}
		}
		report, err := v.Corpus(ctx, slugs, verifyWorkers)
		if err != nil {
			fmt.Printf("verify failed: %v\n", err)
			return
		}
		printReport(report)
	}

	w, err := verify.NewWatcher(cfg.Docs.Dir, onChange)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	logger.Info("watching corpus", zap.String("dir", cfg.Docs.Dir))
	fmt.Printf("watching %s: edit a document to re-verify it (ctrl-c to stop)\n", cfg.Docs.Dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		cancel()
	case <-ctx.Done():
	}
	return nil
}

// slugForPath maps an edited file back to its slug via the loaded corpus.
// Returns "" (verify everything) when the file is unknown, e.g. brand new.
func slugForPath(path string) string {
	cat, err := loadCatalog()
	if err != nil {
		return ""
	}
	base := filepath.Base(path)
	for _, doc := range cat.All() {
		if filepath.Base(doc.SourcePath) == base {
			return doc.Slug
		}
	}
	return ""
}
