// Package lint checks pattern documents beyond what loading enforces:
// section structure, resolvable cross-references, and that example snippets
// are syntactically valid Go. Syntax is checked with tree-sitter, which
// reports precise positions and never executes anything.
package lint

import (
	"context"
	"fmt"

	"patternbook/internal/catalog"
	"patternbook/internal/logging"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// Severity ranks a finding.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Finding is one lint result.
type Finding struct {
	Slug     string
	Rule     string
	Message  string
	Severity Severity
	Line     int // 1-based line in the source file, 0 when not positional
}

// requiredHeadings is the canonical section order of a pattern document.
var requiredHeadings = []string{"Intent", "Structure", "Example", "Output", "When to use"}

// Linter checks documents. Close releases the tree-sitter parser.
type Linter struct {
	parser *sitter.Parser
}

// New creates a Linter with a Go grammar loaded.
func New() *Linter {
	p := sitter.NewParser()
	p.SetLanguage(golang.GetLanguage())
	return &Linter{parser: p}
}

// Close releases parser resources.
func (l *Linter) Close() {
	l.parser.Close()
}

// Corpus lints every document and all cross-references.
func (l *Linter) Corpus(ctx context.Context, c *catalog.Catalog) []Finding {
	timer := logging.StartTimer(logging.CategoryLint, "corpus lint")
	defer timer.Stop()

	var findings []Finding
	for _, doc := range c.All() {
		findings = append(findings, l.Document(ctx, doc)...)
		findings = append(findings, checkRelated(c, doc)...)
	}
	logging.Lint("lint: %d findings over %d documents", len(findings), c.Len())
	return findings
}

// Document lints a single document's structure and snippet syntax.
func (l *Linter) Document(ctx context.Context, doc *catalog.Document) []Finding {
	var findings []Finding

	findings = append(findings, checkHeadings(doc)...)

	if doc.Summary == "" {
		findings = append(findings, Finding{
			Slug:     doc.Slug,
			Rule:     "summary",
			Message:  "front matter has no summary",
			Severity: Warning,
		})
	}

	findings = append(findings, l.checkSnippetSyntax(ctx, doc)...)
	return findings
}

// checkHeadings verifies the canonical sections are present and ordered.
func checkHeadings(doc *catalog.Document) []Finding {
	var findings []Finding
	pos := 0
	for _, want := range requiredHeadings {
		found := false
		for i := pos; i < len(doc.Headings); i++ {
			if doc.Headings[i] == want {
				pos = i + 1
				found = true
				break
			}
		}
		if !found {
			findings = append(findings, Finding{
				Slug:     doc.Slug,
				Rule:     "sections",
				Message:  fmt.Sprintf("missing or out-of-order section %q", want),
				Severity: Error,
			})
		}
	}
	return findings
}

// checkRelated verifies that related slugs resolve to documents.
func checkRelated(c *catalog.Catalog, doc *catalog.Document) []Finding {
	var findings []Finding
	for _, rel := range doc.Related {
		if _, err := c.Get(rel); err != nil {
			findings = append(findings, Finding{
				Slug:     doc.Slug,
				Rule:     "related",
				Message:  fmt.Sprintf("related slug %q resolves to no document", rel),
				Severity: Warning,
			})
		}
	}
	return findings
}

// checkSnippetSyntax parses the example with tree-sitter and reports any
// ERROR or MISSING node with its position in the source file.
func (l *Linter) checkSnippetSyntax(ctx context.Context, doc *catalog.Document) []Finding {
	source := []byte(doc.Example.Source)
	tree, err := l.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return []Finding{{
			Slug:     doc.Slug,
			Rule:     "syntax",
			Message:  fmt.Sprintf("tree-sitter parse failed: %v", err),
			Severity: Error,
			Line:     doc.Example.Line,
		}}
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return nil
	}

	var findings []Finding
	collectSyntaxErrors(root, func(n *sitter.Node) {
		msg := "syntax error"
		if n.IsMissing() {
			msg = fmt.Sprintf("missing %s", n.Type())
		}
		findings = append(findings, Finding{
			Slug:     doc.Slug,
			Rule:     "syntax",
			Message:  msg,
			Severity: Error,
			// Snippet rows are 0-based; Line points at the fence.
			Line: doc.Example.Line + int(n.StartPoint().Row) + 1,
		})
	})

	// HasError with no locatable node still means the snippet is broken.
	if len(findings) == 0 {
		findings = append(findings, Finding{
			Slug:     doc.Slug,
			Rule:     "syntax",
			Message:  "snippet does not parse",
			Severity: Error,
			Line:     doc.Example.Line,
		})
	}
	return findings
}

// collectSyntaxErrors walks the tree and invokes fn on ERROR/MISSING nodes.
func collectSyntaxErrors(n *sitter.Node, fn func(*sitter.Node)) {
	if n.Type() == "ERROR" || n.IsMissing() {
		fn(n)
		return
	}
	if !n.HasError() {
		return
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		collectSyntaxErrors(n.Child(i), fn)
	}
}
