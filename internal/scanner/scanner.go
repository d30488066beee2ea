// Package scanner enumerates the eligible files and directories under a
// documentation content root.
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/navsync/internal/logfields"
)

// ErrRootNotFound indicates the content root does not exist or is not a directory.
var ErrRootNotFound = errors.New("content root not found")

// Kind distinguishes files from directories in the scan result.
type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "directory"
	}
	return "file"
}

// Entry is one eligible file or directory, identified by its slash-separated
// path relative to the content root.
type Entry struct {
	RelPath string
	Kind    Kind
}

// Name returns the last path segment of the entry.
func (e Entry) Name() string {
	return filepath.Base(filepath.FromSlash(e.RelPath))
}

// markdownExtensions are the accepted content file extensions.
var markdownExtensions = map[string]struct{}{
	".md":       {},
	".markdown": {},
}

// IsMarkdownName reports whether a file name carries an accepted extension.
func IsMarkdownName(name string) bool {
	_, ok := markdownExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// Scanner walks a content root and collects eligible entries.
type Scanner struct {
	root      string
	outputDir string
}

// New creates a scanner for the given content root. outputDir names the
// generated-site directory to exclude when it lives under the root.
func New(root, outputDir string) *Scanner {
	return &Scanner{root: root, outputDir: outputDir}
}

// Scan walks the content root and returns the eligible entries in lexical
// traversal order: markdown files plus every non-hidden directory. Hidden
// entries (leading dot) and the output directory are excluded together with
// everything beneath them. Symlinked directories are skipped rather than
// followed, so link cycles cannot occur.
func (s *Scanner) Scan() ([]Entry, error) {
	info, err := os.Stat(s.root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, s.root)
	}

	var entries []Entry
	walkErr := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == s.root {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() && name == s.outputDir && filepath.Dir(path) == s.root {
			slog.Debug("Skipping generated output directory", logfields.Path(rel))
			return filepath.SkipDir
		}

		// WalkDir does not descend into symlinks; record the skip so link
		// cycles surface as a diagnostic instead of silence.
		if d.Type()&fs.ModeSymlink != 0 {
			slog.Warn("Skipping symlink entry", logfields.Path(rel))
			return nil
		}

		if d.IsDir() {
			entries = append(entries, Entry{RelPath: rel, Kind: KindDir})
			return nil
		}
		if !d.Type().IsRegular() || !IsMarkdownName(name) {
			return nil
		}
		entries = append(entries, Entry{RelPath: rel, Kind: KindFile})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", s.root, walkErr)
	}

	slog.Debug("Content scan completed", logfields.Path(s.root), logfields.Count(len(entries)))
	return entries, nil
}
