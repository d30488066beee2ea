package commands

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/navsync/internal/config"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags.
type CLI struct {
	Docs    string           `short:"d" help:"Content root directory (overrides NAVSYNC_DOCS_DIR)"`
	Config  string           `short:"c" help:"Site configuration file" default:"mkdocs.yml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Sync        SyncCmd        `cmd:"" default:"withargs" help:"Regenerate the navigation and patch the site configuration"`
	Hook        HookCmd        `cmd:"" help:"Run as pre-commit hook: sync and re-stage the configuration when staged docs changed"`
	InstallHook InstallHookCmd `cmd:"" name:"install-hook" help:"Install the pre-commit hook into the repository"`
	Watch       WatchCmd       `cmd:"" help:"Watch the content root and re-sync on changes"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// loadConfig resolves the invocation configuration from flags and environment.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.Docs, c.Config)
}
