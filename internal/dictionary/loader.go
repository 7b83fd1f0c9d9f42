package dictionary

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/at-ishikawa/fluent-scanner/internal/fluent"
)

// Warning is a problem in a resource file that does not stop the check.
type Warning struct {
	LanguageCode string `json:"language_code" yaml:"language_code"`
	Path         string `json:"path" yaml:"path"`
	Message      string `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s (%s): %s", w.LanguageCode, w.Path, w.Message)
}

// LoadResult is a dictionary together with the warnings raised while building it.
type LoadResult struct {
	Dictionary *Dictionary
	Warnings   []Warning
}

// ParseError is returned when a resource file contains entries that are not valid Fluent syntax.
type ParseError struct {
	Path   string
	Errors []*fluent.ParseError
}

func (e *ParseError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Path, strings.Join(messages, "; "))
}

// UnsupportedPlaceableError is returned when a message value contains a
// placeable that is neither a variable reference nor a select expression.
type UnsupportedPlaceableError struct {
	Path      string
	MessageID string
	Kind      string
}

func (e *UnsupportedPlaceableError) Error() string {
	return fmt.Sprintf("%s: message `%s` has an unsupported placeable (%s)", e.Path, e.MessageID, e.Kind)
}

// FileLoader reads dictionaries from FTL files on disk.
type FileLoader struct{}

func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

func (FileLoader) Load(languageCode, path string) (*LoadResult, error) {
	return LoadFile(languageCode, path)
}

// LoadFile reads and parses the FTL file at path.
func LoadFile(languageCode, path string) (*LoadResult, error) {
	startedAt := time.Now()
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	result, err := Build(languageCode, path, fluent.Parse(string(contents)))
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded dictionary",
		"language", languageCode,
		"path", path,
		"messages", len(result.Dictionary.Messages),
		"elapsed", time.Since(startedAt),
	)
	return result, nil
}

// Build creates a dictionary from a parsed resource.
// A later definition of the same message id replaces the earlier one and is reported as a warning.
func Build(languageCode, path string, resource *fluent.Resource) (*LoadResult, error) {
	if junk := resource.Junk(); len(junk) > 0 {
		parseErr := &ParseError{Path: path}
		for _, j := range junk {
			parseErr.Errors = append(parseErr.Errors, j.Annotations...)
		}
		return nil, parseErr
	}

	result := &LoadResult{
		Dictionary: NewDictionary(languageCode, path),
	}
	for _, message := range resource.Messages() {
		if message.Value == nil {
			continue
		}

		id := message.ID.Name
		placeholders, err := placeholdersOf(message.Value)
		if err != nil {
			return nil, &UnsupportedPlaceableError{
				Path:      path,
				MessageID: id,
				Kind:      err.Error(),
			}
		}

		if _, ok := result.Dictionary.Messages[id]; ok {
			result.Warnings = append(result.Warnings, Warning{
				LanguageCode: languageCode,
				Path:         path,
				Message:      fmt.Sprintf("found duplicate for %s", id),
			})
		}
		result.Dictionary.Messages[id] = Message{
			ID:           id,
			Placeholders: placeholders,
		}
	}
	return result, nil
}

func placeholdersOf(pattern *fluent.Pattern) (map[string]Placeholder, error) {
	placeholders := map[string]Placeholder{}
	for _, placeable := range pattern.Placeables() {
		switch expression := placeable.Expression.(type) {
		case *fluent.VariableReference:
			placeholders[expression.ID.Name] = Placeholder{
				Name: expression.ID.Name,
				Kind: PlaceholderKindVariable,
			}
		case *fluent.SelectExpression:
			name, ok := selectorName(expression.Selector)
			if !ok {
				return nil, fmt.Errorf("select expression on %s", describe(expression.Selector))
			}
			placeholders[name] = Placeholder{
				Name: name,
				Kind: PlaceholderKindSelectExpression,
			}
		default:
			return nil, fmt.Errorf("%s", describe(expression))
		}
	}
	return placeholders, nil
}

// selectorName returns the identifier a select expression branches on.
// For a function call such as NUMBER($count) it is the function name.
func selectorName(selector fluent.Expression) (string, bool) {
	switch s := selector.(type) {
	case *fluent.VariableReference:
		return s.ID.Name, true
	case *fluent.FunctionReference:
		return s.ID.Name, true
	case *fluent.TermReference:
		return s.ID.Name, true
	}
	return "", false
}

func describe(expression fluent.Expression) string {
	switch e := expression.(type) {
	case *fluent.StringLiteral:
		return fmt.Sprintf("string literal %q", e.Value)
	case *fluent.NumberLiteral:
		return fmt.Sprintf("number literal %s", e.Value)
	case *fluent.MessageReference:
		return fmt.Sprintf("message reference %s", e.ID.Name)
	case *fluent.TermReference:
		return fmt.Sprintf("term reference -%s", e.ID.Name)
	case *fluent.FunctionReference:
		return fmt.Sprintf("function call %s()", e.ID.Name)
	case *fluent.Placeable:
		return "nested placeable"
	}
	return fmt.Sprintf("%T", expression)
}
