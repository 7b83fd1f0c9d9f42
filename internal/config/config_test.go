package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/fluent-scanner/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configName        string
		configContent     string
		useExplicitPath   bool
		env               map[string]string
		want              *Config
		wantErrorContains []string
	}{
		{
			name:       "yaml config keeps the dictionary order",
			configName: "fluent_scanner_config.yml",
			configContent: `root_locale: en
dictionaries:
  zh-TW: locales/zh-TW.ftl
  en: locales/en.ftl
  Fr: locales/fr.ftl
cache:
  directory: custom/cache
`,
			want: &Config{
				RootLocale: "en",
				Dictionaries: []DictionaryConfig{
					{LanguageCode: "zh-TW", Path: "locales/zh-TW.ftl"},
					{LanguageCode: "en", Path: "locales/en.ftl"},
					{LanguageCode: "Fr", Path: "locales/fr.ftl"},
				},
				Cache: CacheConfig{Directory: "custom/cache"},
			},
		},
		{
			name:       "json config uses the default cache directory",
			configName: "fluent_scanner_config.json",
			configContent: `{
  "root_locale": "en",
  "dictionaries": {
    "en": "en.ftl",
    "de": "de.ftl"
  }
}`,
			want: &Config{
				RootLocale: "en",
				Dictionaries: []DictionaryConfig{
					{LanguageCode: "en", Path: "en.ftl"},
					{LanguageCode: "de", Path: "de.ftl"},
				},
				Cache: CacheConfig{Directory: DefaultCacheDirectory},
			},
		},
		{
			name:            "explicit config file path",
			configName:      "custom.yaml",
			useExplicitPath: true,
			configContent: `root_locale: fr
dictionaries:
  fr: fr.ftl
`,
			want: &Config{
				RootLocale:   "fr",
				Dictionaries: []DictionaryConfig{{LanguageCode: "fr", Path: "fr.ftl"}},
				Cache:        CacheConfig{Directory: DefaultCacheDirectory},
			},
		},
		{
			name:       "environment variables override the file",
			configName: "fluent_scanner_config.yaml",
			configContent: `root_locale: en
dictionaries:
  en: en.ftl
  ja: ja.ftl
`,
			env: map[string]string{
				"FLUENT_SCANNER_ROOT_LOCALE":     "ja",
				"FLUENT_SCANNER_CACHE_DIRECTORY": "env-cache",
			},
			want: &Config{
				RootLocale: "ja",
				Dictionaries: []DictionaryConfig{
					{LanguageCode: "en", Path: "en.ftl"},
					{LanguageCode: "ja", Path: "ja.ftl"},
				},
				Cache: CacheConfig{Directory: "env-cache"},
			},
		},
		{
			name:       "missing dictionaries",
			configName: "fluent_scanner_config.yml",
			configContent: `root_locale: en
`,
			want: &Config{
				RootLocale: "en",
				Cache:      CacheConfig{Directory: DefaultCacheDirectory},
			},
		},
		{
			name:       "no config file",
			configName: "",
			wantErrorContains: []string{
				"fluent_scanner_config.{json,yaml,yml} was not found",
			},
		},
		{
			name:       "invalid YAML format",
			configName: "fluent_scanner_config.yml",
			configContent: `root_locale: en
dictionaries:
  en: en.ftl
  invalid yaml format here [[[
`,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name:       "dictionaries as a list",
			configName: "fluent_scanner_config.yml",
			configContent: `root_locale: en
dictionaries:
  - en.ftl
`,
			wantErrorContains: []string{
				"invalid configuration format",
				"dictionaries must be a mapping of language code to file path, got a sequence",
			},
		},
		{
			name:       "nested dictionary path",
			configName: "fluent_scanner_config.yml",
			configContent: `root_locale: en
dictionaries:
  en:
    path: en.ftl
`,
			wantErrorContains: []string{
				"line 4: the path of en must be a string, got a mapping",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			var configPath string
			if tt.configName != "" {
				configPath = testutil.WriteFile(t, tempDir, tt.configName, tt.configContent)
			}
			if !tt.useExplicitPath {
				t.Chdir(tempDir)
				configPath = ""
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if len(tt.wantErrorContains) > 0 {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigLoader_Validate(t *testing.T) {
	tempDir := t.TempDir()
	testutil.WriteFile(t, tempDir, "en.ftl", "a = b\n")
	testutil.WriteFile(t, tempDir, "fr.ftl", "a = b\n")
	require.NoError(t, os.Mkdir(filepath.Join(tempDir, "directory.ftl"), 0755))
	t.Chdir(tempDir)

	validCache := CacheConfig{Directory: DefaultCacheDirectory}

	tests := []struct {
		name         string
		config       *Config
		wantProblems []string
	}{
		{
			name: "valid",
			config: &Config{
				RootLocale: "en",
				Dictionaries: []DictionaryConfig{
					{LanguageCode: "en", Path: "en.ftl"},
					{LanguageCode: "fr", Path: "fr.ftl"},
				},
				Cache: validCache,
			},
		},
		{
			name:   "empty",
			config: &Config{},
			wantProblems: []string{
				"root_locale is a required field",
				"dictionaries is a required field",
				"directory is a required field",
			},
		},
		{
			name: "root locale is not configured",
			config: &Config{
				RootLocale:   "de",
				Dictionaries: []DictionaryConfig{{LanguageCode: "en", Path: "en.ftl"}},
				Cache:        validCache,
			},
			wantProblems: []string{
				"root_locale must be one of the configured dictionaries",
			},
		},
		{
			name: "duplicate language codes",
			config: &Config{
				RootLocale: "en",
				Dictionaries: []DictionaryConfig{
					{LanguageCode: "en", Path: "en.ftl"},
					{LanguageCode: "en", Path: "fr.ftl"},
				},
				Cache: validCache,
			},
			wantProblems: []string{
				"dictionaries must contain unique values",
			},
		},
		{
			name: "invalid paths",
			config: &Config{
				RootLocale: "en",
				Dictionaries: []DictionaryConfig{
					{LanguageCode: "en", Path: "en.ftl"},
					{LanguageCode: "fr", Path: "missing.ftl"},
					{LanguageCode: "de", Path: filepath.Join(tempDir, "en.ftl")},
					{LanguageCode: "ja", Path: "directory.ftl"},
					{LanguageCode: "ko", Path: ""},
				},
				Cache: validCache,
			},
			wantProblems: []string{
				"dictionaries[1].path must be a relative path to an existing and readable file",
				"dictionaries[2].path must be a relative path to an existing and readable file",
				"dictionaries[3].path must be a relative path to an existing and readable file",
				"dictionaries[4].path must be a relative path to an existing and readable file",
			},
		},
		{
			name: "language code cannot name a path",
			config: &Config{
				RootLocale: "en",
				Dictionaries: []DictionaryConfig{
					{LanguageCode: "en", Path: "en.ftl"},
					{LanguageCode: "../fr", Path: "fr.ftl"},
				},
				Cache: validCache,
			},
			wantProblems: []string{
				"dictionaries[1].language_code must contain only letters, digits, '-' or '_'",
			},
		},
	}

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loader.Validate(tt.config)
			if len(tt.wantProblems) == 0 {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.ElementsMatch(t, tt.wantProblems, validationErr.Problems)
			assert.Contains(t, err.Error(), "invalid configuration: ")
		})
	}
}

func TestConfig_Dictionary(t *testing.T) {
	cfg := &Config{
		Dictionaries: []DictionaryConfig{
			{LanguageCode: "en", Path: "en.ftl"},
			{LanguageCode: "fr", Path: "fr.ftl"},
		},
	}

	got, ok := cfg.Dictionary("fr")
	assert.True(t, ok)
	assert.Equal(t, DictionaryConfig{LanguageCode: "fr", Path: "fr.ftl"}, got)

	_, ok = cfg.Dictionary("de")
	assert.False(t, ok)
}
