package hook

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// GitStager implements Stager against the enclosing git worktree.
type GitStager struct {
	worktree *git.Worktree
}

// NewGitStager opens the repository containing dir (searching parent
// directories the way git itself does) and binds to its worktree.
func NewGitStager(dir string) (*GitStager, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening git repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolving worktree: %w", err)
	}
	return &GitStager{worktree: wt}, nil
}

// Root returns the worktree root directory.
func (g *GitStager) Root() string {
	return g.worktree.Filesystem.Root()
}

// StagedPaths returns every path with a change staged for commit.
func (g *GitStager) StagedPaths() ([]string, error) {
	status, err := g.worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}

	var staged []string
	for path, st := range status {
		switch st.Staging {
		case git.Unmodified, git.Untracked:
			continue
		default:
			staged = append(staged, path)
		}
	}
	return staged, nil
}

// StageFile adds a repository-relative path to the index.
func (g *GitStager) StageFile(path string) error {
	if _, err := g.worktree.Add(path); err != nil {
		return fmt.Errorf("adding %s to index: %w", path, err)
	}
	return nil
}
