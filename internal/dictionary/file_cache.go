package dictionary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrSnapshotNotFound is returned when deleting a snapshot that does not exist.
var ErrSnapshotNotFound = errors.New("snapshot not found")

const snapshotExtension = ".json"

// FileCache stores one JSON snapshot per language code under a directory.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (cache *FileCache) Directory() string {
	return cache.rootDir
}

func (cache *FileCache) filePath(languageCode string) string {
	return filepath.Join(cache.rootDir, languageCode+snapshotExtension)
}

// Get returns the stored snapshot, or nil if there is none.
// A snapshot that cannot be decoded is deleted and reported as absent.
func (cache *FileCache) Get(languageCode string) (*Dictionary, error) {
	contents, err := cache.read(languageCode)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no snapshot", "language", languageCode, "path", cache.filePath(languageCode))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache.read > %w", err)
	}

	dictionary, err := decodeSnapshot(languageCode, contents)
	if err != nil {
		slog.Warn("discarding a malformed snapshot",
			"language", languageCode,
			"path", cache.filePath(languageCode),
			"error", err,
		)
		if err := cache.Delete(languageCode); err != nil {
			return nil, fmt.Errorf("cache.Delete > %w", err)
		}
		return nil, nil
	}
	return dictionary, nil
}

// Set writes the snapshot of the dictionary, replacing the previous one.
// The file is written next to the target and renamed over it so a reader
// never observes a partial snapshot.
func (cache *FileCache) Set(dictionary *Dictionary) error {
	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", cache.rootDir, err)
	}

	contents, err := json.MarshalIndent(snapshotOf(dictionary), "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}

	file, err := os.CreateTemp(cache.rootDir, dictionary.LanguageCode+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := file.Write(contents); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(tmpPath, cache.filePath(dictionary.LanguageCode)); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}

	slog.Debug("saved snapshot", "language", dictionary.LanguageCode, "path", cache.filePath(dictionary.LanguageCode))
	return nil
}

// Delete removes the snapshot of a language. It wraps ErrSnapshotNotFound
// when there is nothing to remove.
func (cache *FileCache) Delete(languageCode string) error {
	if err := os.Remove(cache.filePath(languageCode)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrSnapshotNotFound, languageCode)
		}
		return fmt.Errorf("os.Remove > %w", err)
	}
	return nil
}

// List returns the language codes that have a snapshot, sorted.
func (cache *FileCache) List() ([]string, error) {
	entries, err := os.ReadDir(cache.rootDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir(%s) > %w", cache.rootDir, err)
	}

	var languageCodes []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != snapshotExtension {
			continue
		}
		languageCodes = append(languageCodes, strings.TrimSuffix(entry.Name(), snapshotExtension))
	}
	slices.Sort(languageCodes)
	return languageCodes, nil
}

// snapshotOf returns a copy of the dictionary whose nil maps are replaced by
// empty ones, so the snapshot always carries every field decodeSnapshot requires.
func snapshotOf(dictionary *Dictionary) *Dictionary {
	snapshot := NewDictionary(dictionary.LanguageCode, dictionary.Path)
	for id, message := range dictionary.Messages {
		placeholders := make(map[string]Placeholder, len(message.Placeholders))
		for name, placeholder := range message.Placeholders {
			placeholders[name] = placeholder
		}
		snapshot.Messages[id] = Message{
			ID:           message.ID,
			Placeholders: placeholders,
		}
	}
	return snapshot
}

func (cache *FileCache) read(languageCode string) ([]byte, error) {
	file, err := os.Open(cache.filePath(languageCode))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}

func decodeSnapshot(languageCode string, contents []byte) (*Dictionary, error) {
	var dictionary Dictionary
	if err := json.NewDecoder(bytes.NewReader(contents)).Decode(&dictionary); err != nil {
		return nil, fmt.Errorf("json.Decode > %w", err)
	}

	if dictionary.LanguageCode != languageCode {
		return nil, fmt.Errorf("snapshot belongs to %q", dictionary.LanguageCode)
	}
	if dictionary.Messages == nil {
		return nil, errors.New("snapshot has no messages field")
	}
	for id, message := range dictionary.Messages {
		if message.ID != id {
			return nil, fmt.Errorf("message %q is stored under %q", message.ID, id)
		}
		if message.Placeholders == nil {
			return nil, fmt.Errorf("message %q has no placeholders field", id)
		}
		for name, placeholder := range message.Placeholders {
			if placeholder.Name != name {
				return nil, fmt.Errorf("placeholder %q of message %q is stored under %q", placeholder.Name, id, name)
			}
			if !placeholder.Kind.valid() {
				return nil, fmt.Errorf("placeholder %q of message %q has no kind", name, id)
			}
		}
	}
	return &dictionary, nil
}
