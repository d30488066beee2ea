// Package mkdocs patches the nav key of an mkdocs-style site configuration
// while leaving every other key untouched.
package mkdocs

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navsync/internal/logfields"
)

// navKey is the single top-level key this tool owns.
const navKey = "nav"

// Document is a loaded site configuration. The YAML node tree keeps original
// key order and comments, so rewriting only the nav value minimizes the diff.
type Document struct {
	path     string
	doc      *yaml.Node
	original []byte
	mode     fs.FileMode
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: %s: top level is not a mapping", ErrConfigParse, path)
	}

	return &Document{path: path, doc: &doc, original: raw, mode: info.Mode().Perm()}, nil
}

// SetNav replaces the value of the top-level nav key. When the key is absent
// it is appended at the end of the document.
func (d *Document) SetNav(value *yaml.Node) {
	mapping := d.doc.Content[0]
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == navKey {
			// Keep the original key node so its comments survive.
			mapping.Content[i+1] = value
			return
		}
	}
	key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: navKey}
	mapping.Content = append(mapping.Content, key, value)
}

// Render serializes the document.
func (d *Document) Render() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.doc.Content[0]); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigWrite, d.path, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigWrite, d.path, err)
	}
	return buf.Bytes(), nil
}

// Changed reports whether the rendered bytes differ from the file as loaded.
func (d *Document) Changed(rendered []byte) bool {
	return !bytes.Equal(d.original, rendered)
}

// Write atomically replaces the configuration file with the rendered bytes:
// a temp file in the same directory is written first, then renamed over the
// target, so a failure leaves the original byte-identical.
func (d *Document) Write(rendered []byte) error {
	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, ".navsync-*.yml")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigWrite, d.path, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(rendered); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrConfigWrite, d.path, err)
	}
	if err := tmp.Chmod(d.mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: %s: %w", ErrConfigWrite, d.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigWrite, d.path, err)
	}
	if err := os.Rename(tmpPath, d.path); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConfigWrite, d.path, err)
	}

	slog.Debug("Site configuration updated", logfields.Path(d.path), logfields.Count(len(rendered)))
	return nil
}

// Path returns the configuration file location.
func (d *Document) Path() string { return d.path }
