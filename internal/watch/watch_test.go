package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) (<-chan struct{}, context.CancelFunc) {
	t.Helper()
	w, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 10)
	go w.Run(ctx, func() { changed <- struct{}{} }, nil)

	// Give watcher time to start
	time.Sleep(50 * time.Millisecond)
	return changed, cancel
}

func waitFor(ch <-chan struct{}, timeout time.Duration) bool {
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestWatchDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("(1)"), 0644))

	changed, cancel := startWatcher(t, path)
	defer cancel()

	require.NoError(t, os.WriteFile(path, []byte("(2)"), 0644))
	assert.True(t, waitFor(changed, 2*time.Second), "expected callback for file change")
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("(1)"), 0644))

	changed, cancel := startWatcher(t, path)
	defer cancel()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	assert.False(t, waitFor(changed, 300*time.Millisecond), "unexpected callback for sibling file")
}

func TestWatchDebouncesBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	changed, cancel := startWatcher(t, path)
	defer cancel()

	for i := range 5 {
		require.NoError(t, os.WriteFile(path, []byte{byte('0' + i)}, 0644))
	}
	require.True(t, waitFor(changed, 2*time.Second))
	assert.False(t, waitFor(changed, 300*time.Millisecond), "burst should produce one callback")
}

func TestRunStopsOnCancel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	w, err := New(path)
	require.NoError(t, err)
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func() {}, nil) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "notes.txt"))
	require.NoError(t, err)
	require.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New("/nonexistent/dir/notes.txt")
	assert.Error(t, err)
}
