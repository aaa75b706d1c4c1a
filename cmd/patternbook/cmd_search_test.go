package main

import (
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	"patternbook/internal/config"
	"patternbook/internal/index"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// searchEnv points the globals at a throwaway state dir and the embedded
// corpus, the way PersistentPreRunE would.
func searchEnv(t *testing.T) string {
	t.Helper()
	cfg = config.DefaultConfig()
	cfg.Index.Path = filepath.Join(t.TempDir(), "index.db")
	logger = zap.NewNop()
	return cfg.Index.Path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	runErr := fn()

	require.NoError(t, w.Close())
	os.Stdout = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestRunSearch_FirstUseBuildsIndex(t *testing.T) {
	searchEnv(t)

	out, err := captureStdout(t, func() error {
		return runSearch(searchCmd, []string{"expense"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "building search index")
	assert.Contains(t, out, "chain-of-responsibility")
	assert.NotContains(t, out, "stale")
}

func TestRunSearch_StaleIndexWarnsAndSuggestsRebuild(t *testing.T) {
	path := searchEnv(t)

	cat, err := loadCatalog()
	require.NoError(t, err)
	ix, err := index.Open(path)
	require.NoError(t, err)
	require.NoError(t, ix.Rebuild(cat))
	require.NoError(t, ix.Close())

	// Simulate a corpus edit since the last rebuild.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE index_meta SET value = 'mismatch' WHERE key = 'fingerprint'`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	out, err := captureStdout(t, func() error {
		return runSearch(searchCmd, []string{"expense"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "stale")
	assert.Contains(t, out, "index rebuild")
	// The stale index is still searched, not silently rebuilt.
	assert.Contains(t, out, "chain-of-responsibility")
	assert.NotContains(t, out, "building search index")
}
