package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navsync/internal/pipeline"
)

// SyncCmd implements the 'sync' command: the manual pipeline invocation.
type SyncCmd struct {
	Check bool `help:"Exit non-zero when the navigation is stale, without writing (for CI)"`
	Quiet bool `short:"q" help:"Do not print the updated navigation"`
}

// Run executes the sync command.
func (s *SyncCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	result, err := pipeline.New(cfg).Run(s.Check)
	if err != nil {
		return err
	}

	if s.Check {
		if result.Changed {
			return fmt.Errorf("navigation in %s is out of date, run 'navsync sync'", cfg.ConfigFile)
		}
		return nil
	}

	if result.Written && !s.Quiet {
		fmt.Println("Updated navigation:")
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(result.Tree.ToYAML()); err != nil {
			return fmt.Errorf("printing navigation: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("printing navigation: %w", err)
		}
	}
	return nil
}
