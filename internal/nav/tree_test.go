package nav

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/navsync/internal/config"
	"git.home.luguber.info/inful/navsync/internal/scanner"
	"git.home.luguber.info/inful/navsync/internal/title"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func buildTree(t *testing.T, root string, tables config.Tables) *Tree {
	t.Helper()
	entries, err := scanner.New(root, "site").Scan()
	require.NoError(t, err)
	tree, err := NewBuilder(root, tables, title.NewResolver(tables)).Build(entries)
	require.NoError(t, err)
	return tree
}

func renderYAML(t *testing.T, tree *Tree) string {
	t.Helper()
	out, err := yaml.Marshal(tree.ToYAML())
	require.NoError(t, err)
	return string(out)
}

func TestBuild_BasicTreeWithHiddenSubtreeExcluded(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# Home\n")
	writeFile(t, root, "guide/start.md", "# Getting Started\n")
	writeFile(t, root, "guide/.draft/notes.md", "# Draft Notes\n")

	tables := config.Tables{NavOrder: []string{"index.md"}}
	tree := buildTree(t, root, tables)

	require.Len(t, tree.Items, 2)
	require.Equal(t, "Home", tree.Items[0].Title)
	require.Equal(t, "index.md", tree.Items[0].Path)
	require.Equal(t, "Guide", tree.Items[1].Title)
	require.Len(t, tree.Items[1].Children, 1)
	require.Equal(t, "Getting Started", tree.Items[1].Children[0].Title)
	require.Equal(t, "guide/start.md", tree.Items[1].Children[0].Path)
}

func TestBuild_OrderingPrefixThenFallback(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"about.md", "zebra.md", "alpha.md", "index.md", "guides/a.md", "concepts/b.md"} {
		writeFile(t, root, rel, "content\n")
	}

	tables := config.DefaultTables()
	tree := buildTree(t, root, tables)

	var titles []string
	for _, n := range tree.Items {
		titles = append(titles, n.Title)
	}
	// NavOrder prefix (index, concepts, guides, about), then remaining files
	// lexically, then remaining directories.
	require.Equal(t, []string{"Home", "Core Concepts", "Guides", "About", "Alpha", "Zebra"}, titles)
}

func TestBuild_LandingFileFirstInSubdirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "guide/advanced.md", "# Advanced\n")
	writeFile(t, root, "guide/index.md", "# Guide Overview\n")

	tree := buildTree(t, root, config.Tables{})

	require.Len(t, tree.Items, 1)
	children := tree.Items[0].Children
	require.Len(t, children, 2)
	require.Equal(t, "Guide Overview", children[0].Title)
	require.Equal(t, "Advanced", children[1].Title)
}

func TestBuild_EmptyDirectoriesPruned(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# Home\n")
	writeFile(t, root, "assets/logo.png", "binary")
	writeFile(t, root, "drafts/.ignored.md", "# Hidden\n")

	tree := buildTree(t, root, config.Tables{})

	require.Len(t, tree.Items, 1)
	require.Equal(t, "index.md", tree.Items[0].Path)
}

func TestBuild_KindMismatchIsConfigurationError(t *testing.T) {
	root := t.TempDir()
	// "guides.md" names a file in NavOrder but exists as a directory.
	writeFile(t, root, "guides.md/inner.md", "# Inner\n")

	entries, err := scanner.New(root, "site").Scan()
	require.NoError(t, err)

	tables := config.Tables{NavOrder: []string{"guides.md"}}
	_, err = NewBuilder(root, tables, title.NewResolver(tables)).Build(entries)
	require.ErrorIs(t, err, ErrOrderKindMismatch)
}

func TestBuild_Deterministic(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"index.md", "b/x.md", "b/y.md", "a/z.md", "c/q/deep.md"} {
		writeFile(t, root, rel, "# "+rel+"\n")
	}

	tables := config.DefaultTables()
	first := renderYAML(t, buildTree(t, root, tables))
	second := renderYAML(t, buildTree(t, root, tables))
	require.Equal(t, first, second)
}

func TestToYAML_PageAndSectionShapes(t *testing.T) {
	tree := &Tree{Items: []*Node{
		{Title: "Home", Path: "index.md"},
		{Title: "Guides", Children: []*Node{{Title: "Start", Path: "guides/start.md"}}},
	}}

	out, err := yaml.Marshal(tree.ToYAML())
	require.NoError(t, err)
	require.Equal(t, "- Home: index.md\n- Guides:\n    - Start: guides/start.md\n", string(out))
}
