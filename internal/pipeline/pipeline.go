// Package pipeline wires the scan, title, tree, and patch stages into one
// synchronous run against a content root and site configuration.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/navsync/internal/config"
	"git.home.luguber.info/inful/navsync/internal/logfields"
	"git.home.luguber.info/inful/navsync/internal/mkdocs"
	"git.home.luguber.info/inful/navsync/internal/nav"
	"git.home.luguber.info/inful/navsync/internal/scanner"
	"git.home.luguber.info/inful/navsync/internal/title"
)

// Stage names used in logs and error context.
const (
	StageScan  = "scan"
	StageTree  = "tree"
	StagePatch = "patch"
)

// Result reports the outcome of one pipeline run.
type Result struct {
	RunID   uuid.UUID
	Tree    *nav.Tree
	Changed bool // the configuration file content differed from the generated nav
	Written bool // the configuration file was rewritten
}

// Pipeline executes the navigation synchronization stages in order. Each run
// loads fresh inputs; no state crosses invocations.
type Pipeline struct {
	cfg *config.Config
}

// New creates a pipeline for the given configuration.
func New(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Run executes scan, title resolution, tree building, and the config patch.
// With dryRun set, the configuration file is compared but never written.
// Any stage failure aborts the run before external state is touched.
func (p *Pipeline) Run(dryRun bool) (*Result, error) {
	runID := uuid.New()
	start := time.Now()
	log := slog.With(logfields.RunID(runID.String()))
	log.Debug("Pipeline starting", logfields.Path(p.cfg.DocsDir))

	entries, err := scanner.New(p.cfg.DocsDir, p.cfg.OutputDir).Scan()
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", StageScan, err)
	}

	resolver := title.NewResolver(p.cfg.Tables)
	tree, err := nav.NewBuilder(p.cfg.DocsDir, p.cfg.Tables, resolver).Build(entries)
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", StageTree, err)
	}

	doc, err := mkdocs.Load(p.cfg.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", StagePatch, err)
	}
	doc.SetNav(tree.ToYAML())
	rendered, err := doc.Render()
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", StagePatch, err)
	}

	result := &Result{RunID: runID, Tree: tree, Changed: doc.Changed(rendered)}
	if !result.Changed {
		log.Info("Navigation already up to date",
			logfields.Path(p.cfg.ConfigFile),
			logfields.DurationMS(float64(time.Since(start).Milliseconds())))
		return result, nil
	}
	if dryRun {
		log.Info("Navigation is stale (dry run, not writing)", logfields.Path(p.cfg.ConfigFile))
		return result, nil
	}

	if err := doc.Write(rendered); err != nil {
		return nil, fmt.Errorf("%s stage: %w", StagePatch, err)
	}
	result.Written = true

	log.Info("Navigation updated",
		logfields.Path(p.cfg.ConfigFile),
		logfields.Count(len(entries)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return result, nil
}
