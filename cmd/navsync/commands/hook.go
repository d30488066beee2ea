package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/navsync/internal/hook"
	"git.home.luguber.info/inful/navsync/internal/pipeline"
)

// HookCmd implements the 'hook' command, invoked by the pre-commit script.
// A non-nil error blocks the enclosing commit.
type HookCmd struct{}

// Run executes the hook command.
func (h *HookCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	stager, err := hook.NewGitStager(".")
	if err != nil {
		return err
	}

	relDocs, err := repoRelative(stager.Root(), cfg.DocsDir)
	if err != nil {
		return fmt.Errorf("content root is outside the repository: %w", err)
	}
	relConfig, err := repoRelative(stager.Root(), cfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("configuration file is outside the repository: %w", err)
	}

	trigger := hook.NewTrigger(stager, relDocs, relConfig, func() (bool, error) {
		result, runErr := pipeline.New(cfg).Run(false)
		if runErr != nil {
			return false, runErr
		}
		return result.Written, nil
	})
	return trigger.Execute()
}

// repoRelative converts a path to slash-separated form relative to the
// worktree root.
func repoRelative(repoRoot, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(repoRoot, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s is not under %s", path, repoRoot)
	}
	return filepath.ToSlash(rel), nil
}
