// Package catalog loads and indexes the pattern corpus. A corpus is a set of
// markdown documents, each carrying YAML front matter, prose sections, one
// runnable example snippet and the console transcript that snippet is
// expected to produce.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"patternbook/internal/logging"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a slug resolves to no document.
var ErrNotFound = errors.New("pattern not found")

// Category classifies a pattern document.
type Category string

const (
	Creational Category = "creational"
	Structural Category = "structural"
	Behavioral Category = "behavioral"
)

// knownCategories is the closed set a document may declare.
var knownCategories = map[Category]bool{
	Creational: true,
	Structural: true,
	Behavioral: true,
}

// Snippet is a fenced code block extracted from a document.
type Snippet struct {
	Language string
	Source   string
	Line     int // 1-based line of the opening fence in the document
}

// Document is one parsed pattern write-up. Immutable after load.
type Document struct {
	Slug     string
	Name     string
	Category Category
	Summary  string
	Related  []string

	// Body is the markdown after the front matter.
	Body string
	// Headings lists the section headings in document order.
	Headings []string
	// Example is the runnable snippet under the Example heading.
	Example Snippet
	// Transcript is the expected console output under the Output heading.
	Transcript string
	// SourcePath is the path of the file the document was loaded from.
	SourcePath string
}

// frontMatter mirrors the YAML header of a pattern document.
type frontMatter struct {
	Slug     string   `yaml:"slug"`
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Summary  string   `yaml:"summary"`
	Related  []string `yaml:"related"`
}

// Catalog is the loaded corpus.
type Catalog struct {
	docs  map[string]*Document
	order []string // slugs sorted by category, then name
}

// Load parses every .md file under root in fsys and builds the catalog.
// Any malformed document fails the whole load; the corpus is either
// trustworthy or rejected.
func Load(fsys fs.FS, root string) (*Catalog, error) {
	timer := logging.StartTimer(logging.CategoryCatalog, "catalog load")
	defer timer.Stop()

	entries, err := fs.ReadDir(fsys, root)
	if err != nil {
		return nil, fmt.Errorf("reading corpus dir %s: %w", root, err)
	}

	c := &Catalog{docs: make(map[string]*Document)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		p := path.Join(root, entry.Name())
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		doc, err := parseDocument(p, raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", p, err)
		}
		if _, dup := c.docs[doc.Slug]; dup {
			return nil, fmt.Errorf("duplicate slug %q in %s", doc.Slug, p)
		}
		c.docs[doc.Slug] = doc
		logging.CatalogDebug("loaded %s (%s, %d headings)", doc.Slug, doc.Category, len(doc.Headings))
	}

	if len(c.docs) == 0 {
		return nil, fmt.Errorf("no pattern documents under %s", root)
	}

	c.buildOrder()
	logging.Catalog("corpus loaded: %d documents", len(c.docs))
	return c, nil
}

// buildOrder sorts slugs by category then display name for stable listings.
func (c *Catalog) buildOrder() {
	c.order = c.order[:0]
	for slug := range c.docs {
		c.order = append(c.order, slug)
	}
	sort.Slice(c.order, func(i, j int) bool {
		a, b := c.docs[c.order[i]], c.docs[c.order[j]]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})
}

// All returns every document ordered by category, then name.
func (c *Catalog) All() []*Document {
	out := make([]*Document, 0, len(c.order))
	for _, slug := range c.order {
		out = append(out, c.docs[slug])
	}
	return out
}

// Len returns the number of documents in the corpus.
func (c *Catalog) Len() int { return len(c.docs) }

// Get returns the document for slug, or ErrNotFound.
func (c *Catalog) Get(slug string) (*Document, error) {
	doc, ok := c.docs[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	return doc, nil
}

// Categories returns the categories present in the corpus, sorted.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]bool)
	for _, doc := range c.docs {
		seen[doc.Category] = true
	}
	out := make([]Category, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Related resolves the related-slug list of a document. Slugs that resolve
// to no document are skipped here; lint reports them.
func (c *Catalog) Related(slug string) ([]*Document, error) {
	doc, err := c.Get(slug)
	if err != nil {
		return nil, err
	}
	var out []*Document
	for _, rel := range doc.Related {
		if d, ok := c.docs[rel]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// parseDocument splits the front matter, validates it and extracts the
// example snippet and expected transcript from the body.
func parseDocument(sourcePath string, raw []byte) (*Document, error) {
	fm, body, bodyLine, err := splitFrontMatter(raw)
	if err != nil {
		return nil, err
	}

	var meta frontMatter
	if err := yaml.Unmarshal(fm, &meta); err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	if meta.Slug == "" {
		return nil, errors.New("front matter: missing slug")
	}
	if meta.Name == "" {
		return nil, fmt.Errorf("front matter: document %q missing name", meta.Slug)
	}
	cat := Category(meta.Category)
	if !knownCategories[cat] {
		return nil, fmt.Errorf("front matter: document %q has unknown category %q", meta.Slug, meta.Category)
	}

	doc := &Document{
		Slug:       meta.Slug,
		Name:       meta.Name,
		Category:   cat,
		Summary:    meta.Summary,
		Related:    meta.Related,
		Body:       string(body),
		SourcePath: sourcePath,
	}

	if err := extractBody(doc, body, bodyLine); err != nil {
		return nil, err
	}

	if doc.Example.Source == "" {
		return nil, fmt.Errorf("document %q has no example snippet", doc.Slug)
	}
	if doc.Transcript == "" {
		return nil, fmt.Errorf("document %q has no expected output", doc.Slug)
	}
	return doc, nil
}

// splitFrontMatter returns the YAML header, the markdown body and the
// 1-based line number the body starts on.
func splitFrontMatter(raw []byte) (fm, body []byte, bodyLine int, err error) {
	const delim = "---"
	s := string(raw)
	if !strings.HasPrefix(s, delim+"\n") {
		return nil, nil, 0, errors.New("missing front matter")
	}
	rest := s[len(delim)+1:]
	idx := strings.Index(rest, "\n"+delim+"\n")
	if idx < 0 {
		return nil, nil, 0, errors.New("unterminated front matter")
	}
	fm = []byte(rest[:idx])
	body = []byte(rest[idx+len(delim)+2:])
	bodyLine = strings.Count(s[:len(s)-len(body)], "\n") + 1
	return fm, body, bodyLine, nil
}
