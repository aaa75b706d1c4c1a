package catalog

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Section headings the extractor keys on. Lint enforces their presence;
// extraction falls back to "first matching fence" so a slightly malformed
// document still round-trips through show/verify.
const (
	headingExample = "Example"
	headingOutput  = "Output"
)

// extractBody walks the markdown AST and fills in Headings, Example and
// Transcript. bodyLine is the 1-based line the body starts on in the source
// file, used to report snippet positions against the real file.
func extractBody(doc *Document, body []byte, bodyLine int) error {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	section := ""
	var firstGo, firstText *Snippet

	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			title := nodeText(node, body)
			doc.Headings = append(doc.Headings, title)
			section = title

		case *ast.FencedCodeBlock:
			snip := Snippet{
				Language: string(node.Language(body)),
				Source:   fenceContent(node, body),
				Line:     fenceLine(node, body, bodyLine),
			}
			switch {
			case snip.Language == "go":
				if section == headingExample && doc.Example.Source == "" {
					doc.Example = snip
				}
				if firstGo == nil {
					s := snip
					firstGo = &s
				}
			case snip.Language == "text":
				if section == headingOutput && doc.Transcript == "" {
					doc.Transcript = snip.Source
				}
				if firstText == nil {
					s := snip
					firstText = &s
				}
			}
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return err
	}

	// Fallbacks for documents missing the canonical headings.
	if doc.Example.Source == "" && firstGo != nil {
		doc.Example = *firstGo
	}
	if doc.Transcript == "" && firstText != nil {
		doc.Transcript = firstText.Source
	}
	return nil
}

// nodeText collects the plain text under a node.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

// fenceContent joins the lines of a fenced code block.
func fenceContent(fcb *ast.FencedCodeBlock, source []byte) string {
	var sb strings.Builder
	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return sb.String()
}

// fenceLine returns the 1-based line of the opening fence in the source file.
func fenceLine(fcb *ast.FencedCodeBlock, source []byte, bodyLine int) int {
	lines := fcb.Lines()
	if lines.Len() == 0 {
		return bodyLine
	}
	first := lines.At(0).Start
	// Content starts one line after the fence.
	return bodyLine + strings.Count(string(source[:first]), "\n") - 1
}
