package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDictionary() *Dictionary {
	return &Dictionary{
		LanguageCode: "en",
		Path:         "en.ftl",
		Messages: map[string]Message{
			"a": {ID: "a", Placeholders: map[string]Placeholder{}},
			"b": {ID: "b", Placeholders: map[string]Placeholder{
				"select": {Name: "select", Kind: PlaceholderKindSelectExpression},
			}},
			"c": {ID: "c", Placeholders: map[string]Placeholder{
				"name":  {Name: "name", Kind: PlaceholderKindVariable},
				"count": {Name: "count", Kind: PlaceholderKindSelectExpression},
			}},
		},
	}
}

func TestNewFileCache(t *testing.T) {
	cache := NewFileCache(".fluent_scanner_cache")
	assert.Equal(t, ".fluent_scanner_cache", cache.Directory())
}

func TestFileCache_filePath(t *testing.T) {
	tests := []struct {
		name         string
		rootDir      string
		languageCode string
		expected     string
	}{
		{
			name:         "simple language code",
			rootDir:      ".fluent_scanner_cache",
			languageCode: "en",
			expected:     filepath.Join(".fluent_scanner_cache", "en.json"),
		},
		{
			name:         "region subtag",
			rootDir:      "cache",
			languageCode: "pt-BR",
			expected:     filepath.Join("cache", "pt-BR.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(tt.rootDir)
			assert.Equal(t, tt.expected, cache.filePath(tt.languageCode))
		})
	}
}

func TestFileCache_SetAndGet(t *testing.T) {
	cache := NewFileCache(filepath.Join(t.TempDir(), "nested", "cache"))
	dictionary := newTestDictionary()

	require.NoError(t, cache.Set(dictionary))

	got, err := cache.Get(dictionary.LanguageCode)
	require.NoError(t, err)
	if diff := cmp.Diff(dictionary, got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, dictionary.Equal(got))

	// Only the snapshot remains in the directory.
	entries, err := os.ReadDir(cache.Directory())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "en.json", entries[0].Name())
}

func TestFileCache_SetAndGet_NilMaps(t *testing.T) {
	tests := []struct {
		name       string
		dictionary *Dictionary
		want       *Dictionary
	}{
		{
			name:       "nil messages",
			dictionary: &Dictionary{LanguageCode: "en", Path: "en.ftl"},
			want:       NewDictionary("en", "en.ftl"),
		},
		{
			name: "nil placeholders",
			dictionary: &Dictionary{
				LanguageCode: "en",
				Path:         "en.ftl",
				Messages:     map[string]Message{"a": {ID: "a"}},
			},
			want: &Dictionary{
				LanguageCode: "en",
				Path:         "en.ftl",
				Messages: map[string]Message{
					"a": {ID: "a", Placeholders: map[string]Placeholder{}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(t.TempDir())
			require.NoError(t, cache.Set(tt.dictionary))

			got, err := cache.Get("en")
			require.NoError(t, err)
			require.NotNil(t, got, "the snapshot is readable")
			assert.Equal(t, tt.want, got)
			assert.True(t, tt.dictionary.Equal(got))
			assert.FileExists(t, cache.filePath("en"))
		})
	}
}

func TestFileCache_SetOverwrites(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	first := newTestDictionary()
	require.NoError(t, cache.Set(first))

	second := NewDictionary("en", "locales/en.ftl")
	second.Messages["only"] = Message{ID: "only", Placeholders: map[string]Placeholder{}}
	require.NoError(t, cache.Set(second))

	got, err := cache.Get("en")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestFileCache_Get(t *testing.T) {
	tests := []struct {
		name         string
		languageCode string
		fileContent  *string
		wantNil      bool
		wantDeleted  bool
	}{
		{
			name:         "missing snapshot",
			languageCode: "en",
			wantNil:      true,
		},
		{
			name:         "empty file",
			languageCode: "en",
			fileContent:  ptr(""),
			wantNil:      true,
			wantDeleted:  true,
		},
		{
			name:         "invalid json",
			languageCode: "en",
			fileContent:  ptr(`{"language_code": "en", `),
			wantNil:      true,
			wantDeleted:  true,
		},
		{
			name:         "unknown placeholder kind",
			languageCode: "en",
			fileContent: ptr(`{"language_code": "en", "path": "en.ftl", "messages": {
				"a": {"id": "a", "placeholders": {"x": {"name": "x", "kind": "FUNCTION"}}}
			}}`),
			wantNil:     true,
			wantDeleted: true,
		},
		{
			name:         "missing kind",
			languageCode: "en",
			fileContent: ptr(`{"language_code": "en", "path": "en.ftl", "messages": {
				"a": {"id": "a", "placeholders": {"x": {"name": "x"}}}
			}}`),
			wantNil:     true,
			wantDeleted: true,
		},
		{
			name:         "language code mismatch",
			languageCode: "en",
			fileContent:  ptr(`{"language_code": "fr", "path": "fr.ftl", "messages": {}}`),
			wantNil:      true,
			wantDeleted:  true,
		},
		{
			name:         "missing messages",
			languageCode: "en",
			fileContent:  ptr(`{"language_code": "en", "path": "en.ftl"}`),
			wantNil:      true,
			wantDeleted:  true,
		},
		{
			name:         "message stored under another id",
			languageCode: "en",
			fileContent:  ptr(`{"language_code": "en", "path": "en.ftl", "messages": {"a": {"id": "b", "placeholders": {}}}}`),
			wantNil:      true,
			wantDeleted:  true,
		},
		{
			name:         "valid snapshot",
			languageCode: "en",
			fileContent:  ptr(`{"language_code": "en", "path": "en.ftl", "messages": {"a": {"id": "a", "placeholders": {}}}}`),
			wantNil:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewFileCache(t.TempDir())
			if tt.fileContent != nil {
				require.NoError(t, os.WriteFile(cache.filePath(tt.languageCode), []byte(*tt.fileContent), 0644))
			}

			got, err := cache.Get(tt.languageCode)
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
			}

			_, statErr := os.Stat(cache.filePath(tt.languageCode))
			if tt.wantDeleted {
				assert.True(t, os.IsNotExist(statErr), "malformed snapshot should be deleted")
			} else if tt.fileContent != nil {
				assert.NoError(t, statErr)
			}
		})
	}
}

func TestFileCache_Delete(t *testing.T) {
	cache := NewFileCache(t.TempDir())
	require.NoError(t, cache.Set(newTestDictionary()))

	require.NoError(t, cache.Delete("en"))
	got, err := cache.Get("en")
	require.NoError(t, err)
	assert.Nil(t, got)

	err = cache.Delete("en")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.Contains(t, err.Error(), "en")
}

func TestFileCache_List(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		cache := NewFileCache(filepath.Join(t.TempDir(), "missing"))
		got, err := cache.List()
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("only snapshots are listed", func(t *testing.T) {
		cache := NewFileCache(t.TempDir())
		for _, languageCode := range []string{"fr", "en"} {
			dictionary := NewDictionary(languageCode, languageCode+".ftl")
			require.NoError(t, cache.Set(dictionary))
		}
		require.NoError(t, os.WriteFile(filepath.Join(cache.Directory(), "de.123.tmp"), nil, 0644))
		require.NoError(t, os.Mkdir(filepath.Join(cache.Directory(), "dir.json"), 0755))

		got, err := cache.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"en", "fr"}, got)
	})
}

func ptr[T any](v T) *T {
	return &v
}
