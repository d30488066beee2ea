// Package watch re-runs the sync pipeline when content files change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/navsync/internal/logfields"
	"git.home.luguber.info/inful/navsync/internal/scanner"
)

// DefaultDebounce coalesces editor save bursts into a single sync.
const DefaultDebounce = 300 * time.Millisecond

// Watcher observes a content root and invokes a sync callback after changes
// settle.
type Watcher struct {
	root     string
	debounce time.Duration
	run      func() error
}

// New creates a watcher over root. A non-positive debounce falls back to
// DefaultDebounce.
func New(root string, debounce time.Duration, run func() error) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{root: root, debounce: debounce, run: run}
}

// Run watches until the context is cancelled. Sync failures are logged and
// watching continues; only watcher-level failures end the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := w.addRecursive(fw, w.root); err != nil {
		return err
	}

	slog.Info("Watching content root", logfields.Path(w.root))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			// New directories must be watched before files land in them.
			if event.Op.Has(fsnotify.Create) {
				if err := w.addRecursive(fw, event.Name); err != nil {
					slog.Warn("Failed to watch new directory", logfields.Path(event.Name), logfields.Error(err))
				}
			}
			slog.Debug("Content change detected", logfields.Path(event.Name))
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", logfields.Error(err))
		case <-timer.C:
			if err := w.run(); err != nil {
				slog.Error("Sync after content change failed", logfields.Error(err))
			}
		}
	}
}

// addRecursive watches path and every non-hidden directory below it. Non-directory
// paths are ignored, so it is safe to call for any created entry.
func (w *Watcher) addRecursive(fw *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// The entry may already be gone again; skip rather than fail.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if p != w.root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if addErr := fw.Add(p); addErr != nil {
			return fmt.Errorf("watching %s: %w", p, addErr)
		}
		return nil
	})
}

// relevant filters events down to markdown files and directory changes.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	if scanner.IsMarkdownName(name) {
		return true
	}
	// Directory create/remove/rename reshapes the tree.
	return filepath.Ext(name) == ""
}
