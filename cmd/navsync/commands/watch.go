package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/navsync/internal/logfields"
	"git.home.luguber.info/inful/navsync/internal/pipeline"
	"git.home.luguber.info/inful/navsync/internal/watch"
)

// WatchCmd implements the 'watch' command: continuous re-sync on content changes.
type WatchCmd struct {
	Debounce time.Duration `help:"Delay before syncing after a burst of changes" default:"300ms"`
}

// Run executes the watch command until interrupted.
func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sync := func() error {
		_, runErr := pipeline.New(cfg).Run(false)
		return runErr
	}

	// Initial sync so the watcher starts from a consistent state.
	if err := sync(); err != nil {
		return err
	}

	slog.Info("Watching for content changes, press Ctrl+C to stop", logfields.Path(cfg.DocsDir))
	return watch.New(cfg.DocsDir, w.Debounce, sync).Run(ctx)
}
