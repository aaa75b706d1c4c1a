// Package verify checks documentation accuracy: every pattern document's
// example must produce the literal console transcript the document shows.
// Drift between the two is the one failure mode a teaching corpus has.
package verify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"patternbook/internal/catalog"
	"patternbook/internal/logging"
	"patternbook/internal/runner"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Status classifies the outcome for one document.
type Status string

const (
	StatusPass  Status = "pass"  // transcript matches
	StatusDrift Status = "drift" // snippet ran, output differs
	StatusError Status = "error" // snippet failed to run
)

// Result is the verification outcome for one document.
type Result struct {
	Slug     string
	Status   Status
	Diff     string // populated on drift
	Err      string // populated on error
	Duration time.Duration
}

// Report aggregates a corpus run.
type Report struct {
	RunID   string
	Results []Result
	Passed  int
	Drifted int
	Failed  int
	Elapsed time.Duration
}

// OK reports whether every document passed.
func (r *Report) OK() bool { return r.Drifted == 0 && r.Failed == 0 }

// Verifier runs example snippets and compares their output against the
// documents' expected transcripts.
type Verifier struct {
	cat    *catalog.Catalog
	runner *runner.Runner
}

// New creates a Verifier over the given corpus.
func New(cat *catalog.Catalog, r *runner.Runner) *Verifier {
	return &Verifier{cat: cat, runner: r}
}

// Document verifies a single document by slug.
func (v *Verifier) Document(ctx context.Context, slug string) (Result, error) {
	doc, err := v.cat.Get(slug)
	if err != nil {
		return Result{}, err
	}

	res, err := v.runner.Run(ctx, doc.Example.Source)
	if err != nil {
		logging.Verify("%s: snippet failed: %v", slug, err)
		return Result{Slug: slug, Status: StatusError, Err: err.Error()}, nil
	}

	want := normalize(doc.Transcript)
	got := normalize(res.Stdout)
	if want == got {
		logging.VerifyDebug("%s: transcript matches (%v)", slug, res.Duration)
		return Result{Slug: slug, Status: StatusPass, Duration: res.Duration}, nil
	}

	diff := cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n"))
	logging.Verify("%s: transcript drift", slug)
	return Result{Slug: slug, Status: StatusDrift, Diff: diff, Duration: res.Duration}, nil
}

// Corpus verifies the given slugs (all documents when slugs is empty) with
// at most workers snippets in flight. Results keep the catalog's order.
func (v *Verifier) Corpus(ctx context.Context, slugs []string, workers int) (*Report, error) {
	if len(slugs) == 0 {
		for _, doc := range v.cat.All() {
			slugs = append(slugs, doc.Slug)
		}
	}
	if workers < 1 {
		workers = 1
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Results: make([]Result, len(slugs)),
	}
	logging.Verify("run %s: verifying %d documents (%d workers)", report.RunID, len(slugs), workers)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, slug := range slugs {
		g.Go(func() error {
			res, err := v.Document(gctx, slug)
			if err != nil {
				return fmt.Errorf("verifying %s: %w", slug, err)
			}
			report.Results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	report.Elapsed = time.Since(start)

	for _, res := range report.Results {
		switch res.Status {
		case StatusPass:
			report.Passed++
		case StatusDrift:
			report.Drifted++
		case StatusError:
			report.Failed++
		}
	}
	logging.Verify("run %s: %d pass, %d drift, %d error in %v",
		report.RunID, report.Passed, report.Drifted, report.Failed, report.Elapsed)
	return report, nil
}

// normalize strips trailing whitespace per line and trailing blank lines,
// the two differences that are invisible in a rendered document.
func normalize(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.Join(lines, "\n")
	return strings.TrimRight(out, "\n")
}
