// Package hook implements the pre-commit trigger: detect staged content
// changes, run the sync pipeline, and re-stage the updated configuration.
package hook

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/navsync/internal/logfields"
)

// State enumerates the trigger's lifecycle.
type State int

const (
	StateIdle State = iota
	StateDetecting
	StateRunning
	StateStaging
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDetecting:
		return "detecting"
	case StateRunning:
		return "running"
	case StateStaging:
		return "staging"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Stager abstracts the staged change set of the enclosing commit. The trigger
// mutates the commit only through this interface.
type Stager interface {
	// StagedPaths returns the repository-relative paths staged for commit.
	StagedPaths() ([]string, error)

	// StageFile adds a repository-relative path to the staged change set.
	StageFile(path string) error
}

// Runner executes the sync pipeline and reports whether the configuration
// file was rewritten.
type Runner func() (changed bool, err error)

// Trigger runs the commit-time guard. It is single-use: one trigger per
// commit attempt.
type Trigger struct {
	stager      Stager
	contentRoot string // repository-relative content root
	configFile  string // repository-relative configuration file
	run         Runner
	state       State
}

// NewTrigger creates a trigger. contentRoot and configFile are paths relative
// to the repository worktree root.
func NewTrigger(stager Stager, contentRoot, configFile string, run Runner) *Trigger {
	return &Trigger{
		stager:      stager,
		contentRoot: contentRoot,
		configFile:  configFile,
		run:         run,
		state:       StateIdle,
	}
}

// State returns the trigger's current state.
func (t *Trigger) State() State { return t.state }

// Execute walks the state machine to a terminal state. A nil error means the
// commit may proceed; a non-nil error means it must be blocked.
func (t *Trigger) Execute() error {
	t.state = StateDetecting
	staged, err := t.stager.StagedPaths()
	if err != nil {
		t.state = StateAborted
		return fmt.Errorf("inspecting staged paths: %w", err)
	}

	if !t.anyUnderContentRoot(staged) {
		slog.Debug("No staged content changes, commit proceeds unmodified", logfields.State(t.state.String()))
		t.state = StateDone
		return nil
	}

	t.state = StateRunning
	changed, err := t.run()
	if err != nil {
		t.state = StateAborted
		slog.Error("Navigation sync failed, blocking commit", logfields.Error(err))
		return err
	}

	if !changed {
		// Byte-identical configuration: nothing to stage, no spurious diff.
		t.state = StateDone
		return nil
	}

	t.state = StateStaging
	if err := t.stager.StageFile(t.configFile); err != nil {
		t.state = StateAborted
		return fmt.Errorf("staging %s: %w", t.configFile, err)
	}

	slog.Info("Regenerated configuration staged", logfields.Path(t.configFile))
	t.state = StateDone
	return nil
}

func (t *Trigger) anyUnderContentRoot(paths []string) bool {
	root := filepath.ToSlash(t.contentRoot)
	for _, p := range paths {
		p = filepath.ToSlash(p)
		if p == root || strings.HasPrefix(p, root+"/") {
			return true
		}
	}
	return false
}
