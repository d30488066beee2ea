package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestRun_TriggersSyncAfterMarkdownChange(t *testing.T) {
	root := t.TempDir()
	var runs atomic.Int32

	w := New(root, 50*time.Millisecond, func() error {
		runs.Add(1)
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.md"), []byte("# Home\n"), 0o644))

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRun_IgnoresNonContentFiles(t *testing.T) {
	root := t.TempDir()
	var runs atomic.Int32

	w := New(root, 50*time.Millisecond, func() error {
		runs.Add(1)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "image.png"), []byte("binary"), 0o644))
	time.Sleep(300 * time.Millisecond)

	require.Equal(t, int32(0), runs.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestNew_DebounceDefault(t *testing.T) {
	w := New(t.TempDir(), 0, nil)
	require.Equal(t, DefaultDebounce, w.debounce)
}

func TestRelevant_FiltersHiddenAndAssets(t *testing.T) {
	w := New(t.TempDir(), 0, nil)

	require.True(t, w.relevant(fsnotify.Event{Name: "docs/guide/start.md"}))
	require.True(t, w.relevant(fsnotify.Event{Name: "docs/guide"}))
	require.False(t, w.relevant(fsnotify.Event{Name: "docs/.draft"}))
	require.False(t, w.relevant(fsnotify.Event{Name: "docs/logo.svg"}))
}
