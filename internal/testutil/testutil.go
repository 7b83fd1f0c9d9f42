// Package testutil provides shared test helpers for creating config files and FTL fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// RootFTL declares a message without placeholders, one with a variable and one with a select expression.
const RootFTL = `a = alksjdf
b = { $var_b }
c = { $var_c ->
    [one] one_text
   *[other] other_text
}
`

// MissingVariableFTL is RootFTL translated without the variable of message b.
const MissingVariableFTL = `a = alksjdf
b = text without variable
c = { $var_c ->
    [one] one_text
   *[other] other_text
}
`

// Locale is one resource file written by SetupTestConfig.
type Locale struct {
	LanguageCode string
	Contents     string
}

// ConfigOption configures optional fields of the generated config file.
type ConfigOption func(*configFile)

type configFile struct {
	name           string
	cacheDirectory string
}

// WithCacheDirectory sets cache.directory in the generated config file.
func WithCacheDirectory(dir string) ConfigOption {
	return func(cfg *configFile) {
		cfg.cacheDirectory = dir
	}
}

// WithConfigFileName overrides the generated config file name.
func WithConfigFileName(name string) ConfigOption {
	return func(cfg *configFile) {
		cfg.name = name
	}
}

// WriteFile writes contents to name under dir, creating parent directories, and returns the full path.
func WriteFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// LocalePath returns the relative path SetupTestConfig uses for a language.
func LocalePath(languageCode string) string {
	return filepath.Join("locales", languageCode+".ftl")
}

// SetupTestConfig writes one FTL file per locale under tmpDir/locales and a
// YAML config file listing them in the given order.
// Dictionary paths are relative to tmpDir, so callers are expected to run from there.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, rootLocale string, locales []Locale, opts ...ConfigOption) string {
	t.Helper()

	cfg := configFile{
		name: "fluent_scanner_config.yml",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dictionaries := &yaml.Node{Kind: yaml.MappingNode}
	for _, locale := range locales {
		path := LocalePath(locale.LanguageCode)
		WriteFile(t, tmpDir, path, locale.Contents)
		dictionaries.Content = append(dictionaries.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: locale.LanguageCode},
			&yaml.Node{Kind: yaml.ScalarNode, Value: path},
		)
	}

	document := map[string]any{
		"root_locale":  rootLocale,
		"dictionaries": dictionaries,
	}
	if cfg.cacheDirectory != "" {
		document["cache"] = map[string]string{
			"directory": cfg.cacheDirectory,
		}
	}

	contents, err := yaml.Marshal(document)
	require.NoError(t, err)
	return WriteFile(t, tmpDir, cfg.name, string(contents))
}
