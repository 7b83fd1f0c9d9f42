package consistency

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/fluent-scanner/internal/dictionary"
)

type IssueKind string

const (
	IssueMessageMissing          IssueKind = "MESSAGE_MISSING"
	IssueMessagesUnexpected      IssueKind = "MESSAGES_UNEXPECTED"
	IssuePlaceholderMissing      IssueKind = "PLACEHOLDER_MISSING"
	IssuePlaceholderKindMismatch IssueKind = "PLACEHOLDER_KIND_MISMATCH"
	IssuePlaceholderUnexpected   IssueKind = "PLACEHOLDER_UNEXPECTED"
)

// Issue is a structural mismatch between a dictionary and the root dictionary.
//
// Names holds the missing placeholder for IssuePlaceholderMissing and
// IssuePlaceholderKindMismatch, the extra placeholders for
// IssuePlaceholderUnexpected and the extra message ids for
// IssueMessagesUnexpected.
type Issue struct {
	Kind         IssueKind                  `json:"kind" yaml:"kind"`
	LanguageCode string                     `json:"language_code" yaml:"language_code"`
	MessageID    string                     `json:"message_id,omitempty" yaml:"message_id,omitempty"`
	Names        []string                   `json:"names,omitempty" yaml:"names,omitempty"`
	ExpectedKind dictionary.PlaceholderKind `json:"expected_kind,omitempty" yaml:"expected_kind,omitempty"`
	ActualKind   dictionary.PlaceholderKind `json:"actual_kind,omitempty" yaml:"actual_kind,omitempty"`
}

func (i Issue) Error() string {
	switch i.Kind {
	case IssueMessageMissing:
		return fmt.Sprintf("message `%s` was not found", i.MessageID)
	case IssueMessagesUnexpected:
		return fmt.Sprintf("found unexpected extra messages: %s", strings.Join(i.Names, ", "))
	case IssuePlaceholderMissing:
		return fmt.Sprintf("in message `%s` placeholder `%s` was not found", i.MessageID, i.name())
	case IssuePlaceholderKindMismatch:
		return fmt.Sprintf("in message `%s` placeholder `%s` types mismatch (%s != %s)",
			i.MessageID, i.name(), i.ExpectedKind, i.ActualKind)
	case IssuePlaceholderUnexpected:
		return fmt.Sprintf("in message `%s` found unexpected extra placeholders: %s",
			i.MessageID, strings.Join(i.Names, ", "))
	}
	return fmt.Sprintf("unknown issue %s", i.Kind)
}

func (i Issue) name() string {
	if len(i.Names) == 0 {
		return ""
	}
	return i.Names[0]
}
