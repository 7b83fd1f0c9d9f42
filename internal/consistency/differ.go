package consistency

import (
	"github.com/at-ishikawa/fluent-scanner/internal/dictionary"
)

// CompareMessages checks that b declares exactly the messages of a, and that
// each shared message uses the same placeholders. Every mismatch is sent to
// the reporter. It returns true when at least one issue was reported.
func CompareMessages(a, b *dictionary.Dictionary, reporter IssueReporter) bool {
	found := false
	for _, id := range a.MessageIDs() {
		if _, ok := b.Messages[id]; !ok {
			found = true
			reporter.Issue(Issue{
				Kind:         IssueMessageMissing,
				LanguageCode: b.LanguageCode,
				MessageID:    id,
			})
			continue
		}
		if ComparePlaceholders(id, a, b, reporter) {
			found = true
		}
	}

	if unexpected := unmatched(b.MessageIDs(), a.Messages); len(unexpected) > 0 {
		found = true
		reporter.Issue(Issue{
			Kind:         IssueMessagesUnexpected,
			LanguageCode: b.LanguageCode,
			Names:        unexpected,
		})
	}
	return found
}

// ComparePlaceholders checks the placeholders of one message declared by both dictionaries.
func ComparePlaceholders(messageID string, a, b *dictionary.Dictionary, reporter IssueReporter) bool {
	expected := a.Messages[messageID]
	actual := b.Messages[messageID]

	found := false
	for _, name := range expected.PlaceholderNames() {
		want := expected.Placeholders[name]
		got, ok := actual.Placeholders[name]
		if !ok {
			found = true
			reporter.Issue(Issue{
				Kind:         IssuePlaceholderMissing,
				LanguageCode: b.LanguageCode,
				MessageID:    messageID,
				Names:        []string{name},
			})
			continue
		}
		if got.Kind != want.Kind {
			found = true
			reporter.Issue(Issue{
				Kind:         IssuePlaceholderKindMismatch,
				LanguageCode: b.LanguageCode,
				MessageID:    messageID,
				Names:        []string{name},
				ExpectedKind: want.Kind,
				ActualKind:   got.Kind,
			})
		}
	}

	if unexpected := unmatched(actual.PlaceholderNames(), expected.Placeholders); len(unexpected) > 0 {
		found = true
		reporter.Issue(Issue{
			Kind:         IssuePlaceholderUnexpected,
			LanguageCode: b.LanguageCode,
			MessageID:    messageID,
			Names:        unexpected,
		})
	}
	return found
}

// unmatched returns the keys that the reference does not have, keeping their order.
func unmatched[V any](keys []string, reference map[string]V) []string {
	var remaining []string
	for _, key := range keys {
		if _, ok := reference[key]; !ok {
			remaining = append(remaining, key)
		}
	}
	return remaining
}
