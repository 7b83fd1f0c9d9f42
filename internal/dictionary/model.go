package dictionary

import (
	"fmt"
	"maps"
	"slices"
)

// PlaceholderKind tells how a message uses a placeholder.
type PlaceholderKind string

const (
	// PlaceholderKindVariable is a plain substitution such as `{ $name }`.
	PlaceholderKindVariable PlaceholderKind = "VARIABLE"
	// PlaceholderKindSelectExpression is a selector such as `{ $count -> ... }`.
	PlaceholderKindSelectExpression PlaceholderKind = "SELECT_EXPRESSION"
)

func (k PlaceholderKind) String() string {
	return string(k)
}

func (k PlaceholderKind) MarshalText() ([]byte, error) {
	if !k.valid() {
		return nil, fmt.Errorf("unknown placeholder kind %q", string(k))
	}
	return []byte(k), nil
}

func (k *PlaceholderKind) UnmarshalText(text []byte) error {
	kind := PlaceholderKind(text)
	if !kind.valid() {
		return fmt.Errorf("unknown placeholder kind %q", string(text))
	}
	*k = kind
	return nil
}

func (k PlaceholderKind) valid() bool {
	return k == PlaceholderKindVariable || k == PlaceholderKindSelectExpression
}

// Placeholder is a named dynamic slot of a message.
type Placeholder struct {
	Name string          `json:"name" yaml:"name"`
	Kind PlaceholderKind `json:"kind" yaml:"kind"`
}

// Message is one translatable unit. Placeholders are keyed by name.
type Message struct {
	ID           string                 `json:"id" yaml:"id"`
	Placeholders map[string]Placeholder `json:"placeholders" yaml:"placeholders"`
}

// PlaceholderNames returns the placeholder names in sorted order.
func (m Message) PlaceholderNames() []string {
	return slices.Sorted(maps.Keys(m.Placeholders))
}

// Dictionary holds every message of one language.
type Dictionary struct {
	LanguageCode string             `json:"language_code" yaml:"language_code"`
	Path         string             `json:"path" yaml:"path"`
	Messages     map[string]Message `json:"messages" yaml:"messages"`
}

// NewDictionary creates an empty dictionary.
func NewDictionary(languageCode, path string) *Dictionary {
	return &Dictionary{
		LanguageCode: languageCode,
		Path:         path,
		Messages:     map[string]Message{},
	}
}

// MessageIDs returns the message ids in sorted order.
func (d *Dictionary) MessageIDs() []string {
	return slices.Sorted(maps.Keys(d.Messages))
}

// Equal reports whether both dictionaries belong to the same language and
// declare the same messages with the same placeholders. The source path is
// informational and is not compared.
func (d *Dictionary) Equal(other *Dictionary) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.LanguageCode != other.LanguageCode {
		return false
	}
	return maps.EqualFunc(d.Messages, other.Messages, func(a, b Message) bool {
		return a.ID == b.ID && maps.Equal(a.Placeholders, b.Placeholders)
	})
}
