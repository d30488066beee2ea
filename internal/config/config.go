// Package config holds invocation defaults and the static navigation tables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvDocsDir overrides the content root for non-standard layouts.
const EnvDocsDir = "NAVSYNC_DOCS_DIR"

// Defaults for standard repository layouts.
const (
	DefaultDocsDir    = "docs"
	DefaultConfigFile = "mkdocs.yml"
	DefaultOutputDir  = "site"
)

// Config carries the resolved invocation settings for one pipeline run.
type Config struct {
	// DocsDir is the content root that is scanned for documentation files.
	DocsDir string

	// ConfigFile is the site configuration document whose nav key is rewritten.
	ConfigFile string

	// OutputDir is the generated-site directory, excluded from scanning when it
	// lives under the content root.
	OutputDir string

	// Tables holds the static ordering and naming tables.
	Tables Tables
}

// Load resolves the invocation configuration. Precedence for the content root:
// explicit flag value, NAVSYNC_DOCS_DIR, default. A .env/.env.local file is
// loaded first so hook invocations pick up repository-local overrides.
func Load(docsDir, configFile string) (*Config, error) {
	loadEnvFile()

	if docsDir == "" {
		docsDir = os.Getenv(EnvDocsDir)
	}
	if docsDir == "" {
		docsDir = DefaultDocsDir
	}
	if configFile == "" {
		configFile = DefaultConfigFile
	}

	abs, err := filepath.Abs(docsDir)
	if err != nil {
		return nil, fmt.Errorf("resolve docs dir: %w", err)
	}

	return &Config{
		DocsDir:    abs,
		ConfigFile: configFile,
		OutputDir:  DefaultOutputDir,
		Tables:     DefaultTables(),
	}, nil
}

// loadEnvFile loads environment variables from .env/.env.local files.
// It attempts each supported filename in order and stops at the first one that
// loads. Existing process environment variables are not overwritten.
func loadEnvFile() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err == nil {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
			return
		}
	}
}
