package config

// Tables bundles the static ordering and display-name tables consumed by the
// title resolver and the tree builder. A Tables value is constructed once per
// invocation and treated as immutable afterwards.
type Tables struct {
	// NavOrder lists entry names that must appear first, in this order, within
	// a directory. Names ending in a markdown extension refer to files, all
	// other names refer to directories. Entries not listed are appended in
	// fallback order.
	NavOrder []string

	// DirNames maps a directory name to its display title.
	DirNames map[string]string

	// FileNames maps a file name to its display title. Consulted only when no
	// embedded heading can be extracted.
	FileNames map[string]string
}

// DefaultTables returns the versioned ordering and naming tables for the
// standard documentation layout.
func DefaultTables() Tables {
	return Tables{
		NavOrder: []string{
			"index.md",
			"concepts",
			"guides",
			"reference",
			"about.md",
		},
		DirNames: map[string]string{
			"concepts":  "Core Concepts",
			"guides":    "Guides",
			"reference": "API Reference",
			"faq":       "FAQ",
		},
		FileNames: map[string]string{
			"index.md": "Home",
			"about.md": "About",
			"faq.md":   "FAQ",
			"cli.md":   "Command Line",
		},
	}
}

// DirTitle returns the mapped display title for a directory name.
func (t Tables) DirTitle(name string) (string, bool) {
	title, ok := t.DirNames[name]
	return title, ok
}

// FileTitle returns the mapped display title for a file name.
func (t Tables) FileTitle(name string) (string, bool) {
	title, ok := t.FileNames[name]
	return title, ok
}
