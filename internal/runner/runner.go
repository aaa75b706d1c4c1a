// Package runner interprets example snippets with Yaegi instead of shelling
// out to the Go toolchain. Interpreting keeps demos instant and sandboxed:
// no temp modules, no compiler on PATH, and an import whitelist instead of
// arbitrary process access.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"patternbook/internal/logging"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// entrypoint is what the snippet's main function is renamed to before
// evaluation, so execution is an explicit call rather than an interpreter
// side effect.
const entrypoint = "patternbookMain"

// defaultAllowed is the stdlib import whitelist. Snippets are teaching
// material; nothing in the corpus needs filesystem, network or process
// access, so those packages stay rejected.
var defaultAllowed = map[string]bool{
	"errors":  true,
	"fmt":     true,
	"math":    true,
	"sort":    true,
	"strconv": true,
	"strings": true,
	"sync":    true,
	"time":    true,
}

// Result captures one snippet execution.
type Result struct {
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner executes Go snippets in a sandboxed interpreter.
type Runner struct {
	allowed map[string]bool
	timeout time.Duration
}

// New creates a Runner with the default whitelist, the given per-snippet
// timeout and any extra allowed packages from config.
func New(timeout time.Duration, extraPackages []string) *Runner {
	allowed := make(map[string]bool, len(defaultAllowed)+len(extraPackages))
	for pkg := range defaultAllowed {
		allowed[pkg] = true
	}
	for _, pkg := range extraPackages {
		allowed[pkg] = true
	}
	return &Runner{allowed: allowed, timeout: timeout}
}

// Run interprets a self-contained package-main snippet and returns its
// captured output. The snippet's imports are validated against the
// whitelist before anything is evaluated.
func (r *Runner) Run(ctx context.Context, source string) (*Result, error) {
	if err := r.validateImports(source); err != nil {
		return nil, err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	i := interp.New(interp.Options{Stdout: &stdout, Stderr: &stderr})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("loading stdlib symbols: %w", err)
	}

	// Rename main so evaluation only defines the program; execution is the
	// explicit call below. Corpus snippets always declare `func main()`.
	renamed := strings.Replace(source, "func main()", "func "+entrypoint+"()", 1)
	if renamed == source {
		return nil, fmt.Errorf("snippet has no main function")
	}

	start := time.Now()
	if _, err := i.Eval(renamed); err != nil {
		return nil, fmt.Errorf("snippet does not evaluate: %w", err)
	}

	v, err := i.Eval("main." + entrypoint)
	if err != nil {
		return nil, fmt.Errorf("resolving entrypoint: %w", err)
	}
	run, ok := v.Interface().(func())
	if !ok {
		return nil, fmt.Errorf("entrypoint has unexpected type %T", v.Interface())
	}

	// The interpreter has no preemption; run in a goroutine and abandon it
	// on timeout. The goroutine keeps the buffers alive, so a timed-out
	// run's late writes never touch a returned Result.
	done := make(chan error, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- fmt.Errorf("snippet panicked: %v", rec)
				return
			}
			done <- nil
		}()
		run()
	}()

	select {
	case err := <-done:
		elapsed := time.Since(start)
		logging.RunnerDebug("snippet ran in %v (stdout %d bytes)", elapsed, stdout.Len())
		if err != nil {
			return nil, err
		}
		return &Result{
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
			Duration: elapsed,
		}, nil
	case <-ctx.Done():
		logging.Runner("snippet abandoned after %v: %v", time.Since(start), ctx.Err())
		return nil, fmt.Errorf("snippet execution timed out: %w", ctx.Err())
	}
}

// validateImports checks that the snippet only imports whitelisted packages.
func (r *Runner) validateImports(source string) error {
	var forbidden []string
	for _, pkg := range scanImports(source) {
		if !r.allowed[pkg] {
			forbidden = append(forbidden, pkg)
		}
	}
	if len(forbidden) > 0 {
		return fmt.Errorf("forbidden imports: %s", strings.Join(forbidden, ", "))
	}
	return nil
}

// scanImports extracts import paths from single and block import forms.
// Comment and blank lines inside a block carry no quoted path and are
// skipped.
func scanImports(source string) []string {
	var imports []string
	inBlock := false
	for _, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "import ("):
			inBlock = true
		case inBlock && strings.HasPrefix(trimmed, ")"):
			inBlock = false
		case inBlock && strings.HasPrefix(trimmed, "//"):
		case inBlock && strings.Contains(trimmed, `"`):
			imports = append(imports, trimQuotedImport(trimmed))
		case strings.HasPrefix(trimmed, "import "):
			imports = append(imports, trimQuotedImport(strings.TrimPrefix(trimmed, "import ")))
		}
	}
	return imports
}

// trimQuotedImport returns the path between the first pair of quotes,
// dropping any alias before it and any trailing comment after it.
func trimQuotedImport(s string) string {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return s
	}
	rest := s[start+1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return rest
	}
	return rest[:end]
}
