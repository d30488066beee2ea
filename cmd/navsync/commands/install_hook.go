package commands

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// InstallHookCmd implements the 'install-hook' command.
type InstallHookCmd struct {
	Force bool `help:"Overwrite existing hook without backup"`
}

// Run executes the install-hook command.
//
//nolint:forbidigo // fmt is used for user-facing messages
func (cmd *InstallHookCmd) Run(_ *Global, _ *CLI) error {
	gitDir, err := findGitDir()
	if err != nil {
		return fmt.Errorf("not in a Git repository: %w", err)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	hookPath := filepath.Join(hooksDir, "pre-commit")

	if err := os.MkdirAll(hooksDir, 0o755); err != nil {
		return fmt.Errorf("failed to create hooks directory: %w", err)
	}

	// Backup existing hook unless --force
	if _, err := os.Stat(hookPath); err == nil && !cmd.Force {
		backupPath := fmt.Sprintf("%s.backup-%s", hookPath, time.Now().Format("20060102-150405"))
		fmt.Printf("Backing up existing hook to: %s\n", backupPath)

		content, err := os.ReadFile(hookPath)
		if err != nil {
			return fmt.Errorf("failed to read existing hook: %w", err)
		}

		if err := os.WriteFile(backupPath, content, 0o755); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	if err := os.WriteFile(hookPath, []byte(hookScript), 0o755); err != nil {
		return fmt.Errorf("failed to write hook file: %w", err)
	}

	fmt.Println("Pre-commit hook installed successfully")
	fmt.Println()
	fmt.Println("The hook will:")
	fmt.Println("  • Run automatically on 'git commit'")
	fmt.Println("  • Regenerate the navigation when staged docs changed")
	fmt.Println("  • Stage the updated configuration into the same commit")
	fmt.Println()
	fmt.Println("To uninstall:")
	fmt.Printf("  rm %s\n", hookPath)
	fmt.Println()
	fmt.Println("To bypass the hook (not recommended):")
	fmt.Println("  git commit --no-verify")

	return nil
}

// hookScript is the pre-commit script. Staged-path detection and re-staging
// happen inside 'navsync hook'; the script only locates the binary.
const hookScript = `#!/usr/bin/env bash
# navsync pre-commit hook - keep the mkdocs navigation in sync with docs
set -e

NAVSYNC_CMD=""
if command -v navsync &> /dev/null; then
    NAVSYNC_CMD="navsync"
elif [ -f "go.mod" ] && grep -q "navsync" go.mod; then
    # In development mode - use go run
    NAVSYNC_CMD="go run ./cmd/navsync"
else
    echo "navsync not found in PATH"
    echo "   Install: go install git.home.luguber.info/inful/navsync/cmd/navsync@latest"
    echo "   Skipping navigation sync..."
    exit 0
fi

if $NAVSYNC_CMD hook; then
    exit 0
else
    EXIT_CODE=$?
    echo ""
    echo "Navigation sync failed, commit blocked"
    echo ""
    echo "To bypass this check (not recommended):"
    echo "  git commit --no-verify"
    echo ""
    exit $EXIT_CODE
fi
`

// findGitDir locates the .git directory.
func findGitDir() (string, error) {
	if info, err := os.Stat(".git"); err == nil && info.IsDir() {
		return ".git", nil
	}

	// .git may be a file pointing elsewhere (worktree/submodule)
	if info, err := os.Stat(".git"); err == nil && !info.IsDir() {
		content, err := os.ReadFile(".git")
		if err != nil {
			return "", err
		}

		line := strings.TrimSpace(string(content))
		if rest, ok := strings.CutPrefix(line, "gitdir: "); ok {
			return rest, nil
		}
	}

	// Try git command as fallback
	cmd := exec.Command("git", "rev-parse", "--git-dir")
	output, err := cmd.Output()
	if err != nil {
		return "", errors.New("not in a git repository")
	}

	return strings.TrimSpace(string(output)), nil
}
