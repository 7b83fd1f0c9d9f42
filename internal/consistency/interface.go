package consistency

import (
	"github.com/at-ishikawa/fluent-scanner/internal/dictionary"
)

//go:generate mockgen -source=interface.go -destination=../mocks/consistency/mock_consistency.go -package=mock_consistency

// DictionaryLoader builds the dictionary of one language from its resource file.
type DictionaryLoader interface {
	Load(languageCode, path string) (*dictionary.LoadResult, error)
}

// SnapshotStore keeps the last known good state of a dictionary.
// Get returns nil without an error when there is no usable snapshot.
type SnapshotStore interface {
	Get(languageCode string) (*dictionary.Dictionary, error)
	Set(dictionary *dictionary.Dictionary) error
}

// IssueReporter receives consistency issues as soon as they are found.
type IssueReporter interface {
	Issue(issue Issue)
}

// Reporter receives the progress of a run.
type Reporter interface {
	IssueReporter

	RootUpToDate(languageCode string)
	RootChanged(languageCode string)
	DictionaryStarted(languageCode string)
	Warning(warning dictionary.Warning)
	LoadFailed(languageCode, path string, err error)
	DictionaryFinished(result LanguageResult)
	Finished(result *Result)
}
