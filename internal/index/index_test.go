package index

import (
	"path/filepath"
	"testing"

	"patternbook/docs"
	"patternbook/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	ix, err := Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	t.Cleanup(func() { ix.Close() })
	return ix
}

func loadEmbedded(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load(docs.FS, docs.Root)
	require.NoError(t, err)
	return cat
}

func TestRebuildAndSearch(t *testing.T) {
	cat := loadEmbedded(t)
	ix := openTestIndex(t)

	require.NoError(t, ix.Rebuild(cat))

	hits, err := ix.Search("expense", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "chain-of-responsibility", hits[0].Slug)
	assert.Contains(t, hits[0].Fragment, "[")

	hits, err = ix.Search("singleton", 10)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, "singleton", hits[0].Slug)
}

func TestSearch_NoMatches(t *testing.T) {
	cat := loadEmbedded(t)
	ix := openTestIndex(t)
	require.NoError(t, ix.Rebuild(cat))

	hits, err := ix.Search("xyzzy", 10)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearch_LimitApplies(t *testing.T) {
	cat := loadEmbedded(t)
	ix := openTestIndex(t)
	require.NoError(t, ix.Rebuild(cat))

	// "pattern" appears in essentially every document body.
	hits, err := ix.Search("pattern", 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(hits), 3)
}

func TestStale(t *testing.T) {
	cat := loadEmbedded(t)
	ix := openTestIndex(t)

	stale, err := ix.Stale(cat)
	require.NoError(t, err)
	assert.True(t, stale, "fresh database has no fingerprint")

	require.NoError(t, ix.Rebuild(cat))

	stale, err = ix.Stale(cat)
	require.NoError(t, err)
	assert.False(t, stale)
}

func TestBuilt(t *testing.T) {
	cat := loadEmbedded(t)
	ix := openTestIndex(t)

	built, err := ix.Built()
	require.NoError(t, err)
	assert.False(t, built)

	require.NoError(t, ix.Rebuild(cat))

	built, err = ix.Built()
	require.NoError(t, err)
	assert.True(t, built)
}

func TestRebuild_ReplacesContents(t *testing.T) {
	cat := loadEmbedded(t)
	ix := openTestIndex(t)

	require.NoError(t, ix.Rebuild(cat))
	require.NoError(t, ix.Rebuild(cat))

	hits, err := ix.Search("singleton", 50)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, h := range hits {
		seen[h.Slug]++
	}
	for slug, n := range seen {
		assert.Equal(t, 1, n, "%s indexed more than once", slug)
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	cat := loadEmbedded(t)
	assert.Equal(t, Fingerprint(cat), Fingerprint(cat))
	assert.Len(t, Fingerprint(cat), 64)
}
