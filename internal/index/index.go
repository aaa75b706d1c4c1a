// Package index maintains a full-text search index over the pattern corpus
// in SQLite (FTS5). The index is derived state: it can always be rebuilt
// from the catalog, and searches against a stale index say so.
package index

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"patternbook/internal/catalog"
	"patternbook/internal/logging"

	_ "modernc.org/sqlite"
)

// Index wraps the SQLite database holding the FTS tables.
type Index struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
}

// Hit is one search result.
type Hit struct {
	Slug     string
	Name     string
	Category string
	Fragment string // snippet() highlight around the match
	Rank     float64
}

// Open initializes the SQLite database at the given path.
func Open(path string) (*Index, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index database: %w", err)
	}

	ix := &Index{db: db, path: path}
	if err := ix.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return ix, nil
}

// initialize creates the required tables.
func (ix *Index) initialize() error {
	schema := `
	CREATE VIRTUAL TABLE IF NOT EXISTS pattern_fts USING fts5(
		slug UNINDEXED,
		name,
		category,
		summary,
		body
	);
	CREATE TABLE IF NOT EXISTS index_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := ix.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create index schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (ix *Index) Close() error {
	return ix.db.Close()
}

// Rebuild replaces the index contents with the given corpus.
func (ix *Index) Rebuild(c *catalog.Catalog) error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	timer := logging.StartTimer(logging.CategoryIndex, "index rebuild")
	defer timer.Stop()

	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rebuild: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM pattern_fts`); err != nil {
		return fmt.Errorf("failed to clear index: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO pattern_fts (slug, name, category, summary, body) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, doc := range c.All() {
		if _, err := stmt.Exec(doc.Slug, doc.Name, string(doc.Category), doc.Summary, doc.Body); err != nil {
			return fmt.Errorf("failed to index %s: %w", doc.Slug, err)
		}
	}

	if _, err := tx.Exec(
		`INSERT INTO index_meta (key, value) VALUES ('fingerprint', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		Fingerprint(c),
	); err != nil {
		return fmt.Errorf("failed to record fingerprint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rebuild: %w", err)
	}
	logging.Index("index rebuilt: %d documents at %s", c.Len(), ix.path)
	return nil
}

// Search runs an FTS5 match and returns ranked hits.
func (ix *Index) Search(query string, limit int) ([]Hit, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if limit <= 0 {
		limit = 10
	}

	rows, err := ix.db.Query(`
		SELECT slug, name, category,
		       snippet(pattern_fts, 4, '[', ']', '…', 12),
		       bm25(pattern_fts)
		FROM pattern_fts
		WHERE pattern_fts MATCH ?
		ORDER BY bm25(pattern_fts)
		LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var h Hit
		if err := rows.Scan(&h.Slug, &h.Name, &h.Category, &h.Fragment, &h.Rank); err != nil {
			return nil, fmt.Errorf("scanning hit: %w", err)
		}
		hits = append(hits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	logging.IndexDebug("search %q: %d hits", query, len(hits))
	return hits, nil
}

// Built reports whether the index has ever been rebuilt.
func (ix *Index) Built() (bool, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var stored string
	err := ix.db.QueryRow(`SELECT value FROM index_meta WHERE key = 'fingerprint'`).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading fingerprint: %w", err)
	}
	return true, nil
}

// Stale reports whether the index no longer matches the corpus.
func (ix *Index) Stale(c *catalog.Catalog) (bool, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	var stored string
	err := ix.db.QueryRow(`SELECT value FROM index_meta WHERE key = 'fingerprint'`).Scan(&stored)
	if err == sql.ErrNoRows {
		return true, nil // never built
	}
	if err != nil {
		return false, fmt.Errorf("reading fingerprint: %w", err)
	}
	return stored != Fingerprint(c), nil
}

// Fingerprint hashes the corpus content so staleness is detectable.
func Fingerprint(c *catalog.Catalog) string {
	h := sha256.New()
	for _, doc := range c.All() {
		h.Write([]byte(doc.Slug))
		h.Write([]byte{0})
		h.Write([]byte(doc.Body))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
