// Package title derives display titles for documentation files and directories.
package title

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/navsync/internal/config"
	"git.home.luguber.info/inful/navsync/internal/logfields"
)

// Resolver produces a non-empty display title for every content entry.
//
// Resolution order for files: first level-one markdown heading, then the
// static name table, then a title-cased form of the file name. Directories
// skip the heading step.
type Resolver struct {
	tables config.Tables
	md     goldmark.Markdown
	caser  cases.Caser
}

// NewResolver creates a resolver bound to the given static tables.
func NewResolver(tables config.Tables) *Resolver {
	return &Resolver{
		tables: tables,
		md:     goldmark.New(),
		caser:  cases.Title(language.English),
	}
}

// FileTitle resolves the display title for a markdown file. path is the
// absolute location on disk, name its base name.
func (r *Resolver) FileTitle(path, name string) string {
	if title, ok := r.headingFromFile(path); ok {
		return title
	}
	if title, ok := r.tables.FileTitle(name); ok {
		return title
	}
	return r.Humanize(strings.TrimSuffix(name, filepath.Ext(name)))
}

// DirTitle resolves the display title for a directory name.
func (r *Resolver) DirTitle(name string) string {
	if title, ok := r.tables.DirTitle(name); ok {
		return title
	}
	return r.Humanize(name)
}

// Humanize converts a file or directory name into a readable title:
// separators become spaces and each word is title-cased.
func (r *Resolver) Humanize(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return r.caser.String(name)
}

// headingFromFile reads a markdown file and extracts its first level-one
// heading. Read or decode failures are recoverable: a diagnostic is emitted
// and resolution falls through to the name tables.
func (r *Resolver) headingFromFile(path string) (string, bool) {
	src, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("Failed to read file for title extraction", logfields.Path(path), logfields.Error(err))
		return "", false
	}
	if !utf8.Valid(src) {
		slog.Warn("File content is not valid UTF-8, falling back to name-based title", logfields.Path(path))
		return "", false
	}
	return FirstHeading(r.md, src)
}

// FirstHeading returns the text of the first level-one heading in a markdown
// body. Only the first occurrence counts: a level-one heading with empty text
// means "no heading found" even when later headings exist.
func FirstHeading(md goldmark.Markdown, src []byte) (string, bool) {
	doc := md.Parser().Parse(text.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		heading, ok := n.(*ast.Heading)
		if !ok || heading.Level != 1 {
			continue
		}
		title := strings.TrimSpace(string(heading.Text(src)))
		return title, title != ""
	}
	return "", false
}
