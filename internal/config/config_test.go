package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)
	require.Equal(t, DefaultDocsDir, filepath.Base(cfg.DocsDir))
	require.True(t, filepath.IsAbs(cfg.DocsDir))
	require.Equal(t, DefaultConfigFile, cfg.ConfigFile)
	require.Equal(t, DefaultOutputDir, cfg.OutputDir)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv(EnvDocsDir, "documentation")

	cfg, err := Load("", "")
	require.NoError(t, err)
	require.Equal(t, "documentation", filepath.Base(cfg.DocsDir))
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvDocsDir, "documentation")

	cfg, err := Load("manual", "custom.yml")
	require.NoError(t, err)
	require.Equal(t, "manual", filepath.Base(cfg.DocsDir))
	require.Equal(t, "custom.yml", cfg.ConfigFile)
}

func TestDefaultTables_IndexFirst(t *testing.T) {
	tables := DefaultTables()
	require.NotEmpty(t, tables.NavOrder)
	require.Equal(t, "index.md", tables.NavOrder[0])

	title, ok := tables.FileTitle("index.md")
	require.True(t, ok)
	require.Equal(t, "Home", title)

	_, ok = tables.DirTitle("nope")
	require.False(t, ok)
}
