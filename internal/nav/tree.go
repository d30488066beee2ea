// Package nav assembles scanned content entries into the ordered navigation
// tree that is written into the site configuration.
package nav

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navsync/internal/config"
	"git.home.luguber.info/inful/navsync/internal/logfields"
	"git.home.luguber.info/inful/navsync/internal/scanner"
	"git.home.luguber.info/inful/navsync/internal/title"
)

// landingFile always sorts ahead of its siblings within its own directory.
const landingFile = "index.md"

// Node is one navigation entry. A page node carries the file path relative to
// the content root; a section node carries children instead.
type Node struct {
	Title    string
	Path     string
	Children []*Node
}

// IsSection reports whether the node groups child entries.
func (n *Node) IsSection() bool { return n.Path == "" }

// Tree is the generated navigation structure. ID and GeneratedAt identify one
// build for logging and idempotence checks; they are never persisted.
type Tree struct {
	Items       []*Node
	ID          uuid.UUID
	GeneratedAt time.Time
}

// ToYAML renders the tree as the mkdocs nav value: a sequence of single-key
// mappings, nesting a sequence per section.
func (t *Tree) ToYAML() *yaml.Node {
	return nodesToYAML(t.Items)
}

func nodesToYAML(nodes []*Node) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, n := range nodes {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Title}
		var value *yaml.Node
		if n.IsSection() {
			value = nodesToYAML(n.Children)
		} else {
			value = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Path}
		}
		entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{key, value}}
		seq.Content = append(seq.Content, entry)
	}
	return seq
}

// Builder constructs navigation trees from scan results. Construction is a
// pure function of the entry set and the static tables: no map iteration
// order, wall clock, or randomness influences the structure.
type Builder struct {
	root     string
	tables   config.Tables
	resolver *title.Resolver
}

// NewBuilder creates a builder rooted at the given content directory.
func NewBuilder(root string, tables config.Tables, resolver *title.Resolver) *Builder {
	return &Builder{root: root, tables: tables, resolver: resolver}
}

// Build assembles the entries into an ordered tree. Directories whose child
// list resolves empty are pruned.
func (b *Builder) Build(entries []scanner.Entry) (*Tree, error) {
	children := make(map[string][]scanner.Entry)
	for _, e := range entries {
		parent := path.Dir(e.RelPath)
		if parent == "." {
			parent = ""
		}
		// Scan order is lexical per directory, so append keeps it.
		children[parent] = append(children[parent], e)
	}

	items, err := b.buildDir("", children)
	if err != nil {
		return nil, err
	}

	tree := &Tree{Items: items, ID: uuid.New(), GeneratedAt: time.Now()}
	slog.Debug("Navigation tree built", logfields.RunID(tree.ID.String()), logfields.Count(len(items)))
	return tree, nil
}

func (b *Builder) buildDir(dir string, children map[string][]scanner.Entry) ([]*Node, error) {
	ordered, err := b.orderEntries(dir, children[dir])
	if err != nil {
		return nil, err
	}

	var nodes []*Node
	for _, e := range ordered {
		switch e.Kind {
		case scanner.KindFile:
			abs := filepath.Join(b.root, filepath.FromSlash(e.RelPath))
			nodes = append(nodes, &Node{
				Title: b.resolver.FileTitle(abs, e.Name()),
				Path:  e.RelPath,
			})
		case scanner.KindDir:
			sub, err := b.buildDir(e.RelPath, children)
			if err != nil {
				return nil, err
			}
			if len(sub) == 0 {
				slog.Debug("Pruning empty directory", logfields.Path(e.RelPath))
				continue
			}
			nodes = append(nodes, &Node{
				Title:    b.resolver.DirTitle(e.Name()),
				Children: sub,
			})
		}
	}
	return nodes, nil
}

// orderEntries applies the NavOrder prefix, then the landing file, then the
// fallback order: files in lexical order followed by directories in lexical
// order.
func (b *Builder) orderEntries(dir string, entries []scanner.Entry) ([]scanner.Entry, error) {
	byName := make(map[string]scanner.Entry, len(entries))
	for _, e := range entries {
		byName[e.Name()] = e
	}

	placed := make(map[string]bool, len(entries))
	var ordered []scanner.Entry
	for _, name := range b.tables.NavOrder {
		e, ok := byName[name]
		if !ok {
			continue
		}
		wantFile := scanner.IsMarkdownName(name)
		if wantFile != (e.Kind == scanner.KindFile) {
			return nil, fmt.Errorf("%w: %q resolves to a %s in %s", ErrOrderKindMismatch, name, e.Kind, filepath.Join(b.root, filepath.FromSlash(dir)))
		}
		ordered = append(ordered, e)
		placed[name] = true
	}

	if e, ok := byName[landingFile]; ok && !placed[landingFile] {
		ordered = append(ordered, e)
		placed[landingFile] = true
	}

	for _, kind := range []scanner.Kind{scanner.KindFile, scanner.KindDir} {
		for _, e := range entries {
			if e.Kind == kind && !placed[e.Name()] {
				ordered = append(ordered, e)
			}
		}
	}
	return ordered, nil
}
