package verify

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// changeRecorder collects onChange invocations.
type changeRecorder struct {
	mu    sync.Mutex
	paths []string
}

func (c *changeRecorder) record(_ context.Context, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paths = append(c.paths, path)
}

func (c *changeRecorder) snapshot() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return cond()
}

func TestWatcher_ReportsSettledMarkdownChanges(t *testing.T) {
	dir := t.TempDir()
	rec := &changeRecorder{}

	w, err := NewWatcher(dir, rec.record)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	target := filepath.Join(dir, "observer.md")
	require.NoError(t, os.WriteFile(target, []byte("# draft\n"), 0644))

	ok := waitFor(t, 5*time.Second, func() bool {
		return len(rec.snapshot()) > 0
	})
	require.True(t, ok, "change was never reported")
	assert.Contains(t, rec.snapshot(), target)
}

func TestWatcher_IgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()
	rec := &changeRecorder{}

	w, err := NewWatcher(dir, rec.record)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	// Give the debounce window time to elapse; nothing should surface.
	time.Sleep(time.Second)
	assert.Empty(t, rec.snapshot())
}

func TestWatcher_DebouncesRapidSaves(t *testing.T) {
	dir := t.TempDir()
	rec := &changeRecorder{}

	w, err := NewWatcher(dir, rec.record)
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	target := filepath.Join(dir, "strategy.md")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(target, []byte("# draft\n"), 0644))
		time.Sleep(20 * time.Millisecond)
	}

	ok := waitFor(t, 5*time.Second, func() bool {
		return len(rec.snapshot()) > 0
	})
	require.True(t, ok, "change was never reported")
	assert.Len(t, rec.snapshot(), 1)
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir, func(context.Context, string) {})
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	w.Stop()
	w.Stop()
}
