package consistency

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/fluent-scanner/internal/dictionary"
)

// ErrCheckFailed is returned by Result.Err when a run found at least one problem.
var ErrCheckFailed = errors.New("consistency check failed")

// State is the outcome of the change gate.
type State string

const (
	StateCheckNeeded State = "CHECK_NEEDED"
	StateUpToDate    State = "UP_TO_DATE"
)

// Source is one configured resource file.
type Source struct {
	LanguageCode string
	Path         string
}

// Plan is the input of a run. Sources are checked in order.
type Plan struct {
	RootLocale string
	Sources    []Source
	// Force skips the comparison with the stored snapshot.
	Force bool
}

func (p Plan) root() (Source, bool) {
	for _, source := range p.Sources {
		if source.LanguageCode == p.RootLocale {
			return source, true
		}
	}
	return Source{}, false
}

// LanguageResult is the outcome of checking one non-root dictionary.
type LanguageResult struct {
	LanguageCode string  `json:"language_code" yaml:"language_code"`
	Path         string  `json:"path" yaml:"path"`
	Issues       []Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
	LoadError    string  `json:"load_error,omitempty" yaml:"load_error,omitempty"`
}

func (r LanguageResult) Failed() bool {
	return len(r.Issues) > 0 || r.LoadError != ""
}

// Result is the outcome of a run.
type Result struct {
	State        State                `json:"state" yaml:"state"`
	RootLocale   string               `json:"root_locale" yaml:"root_locale"`
	Languages    []LanguageResult     `json:"languages,omitempty" yaml:"languages,omitempty"`
	Warnings     []dictionary.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	CacheUpdated bool                 `json:"cache_updated" yaml:"cache_updated"`
}

func (r *Result) Failed() bool {
	for _, language := range r.Languages {
		if language.Failed() {
			return true
		}
	}
	return false
}

func (r *Result) IssueCount() int {
	count := 0
	for _, language := range r.Languages {
		count += len(language.Issues)
	}
	return count
}

// Err returns an error wrapping ErrCheckFailed when the run failed.
func (r *Result) Err() error {
	if !r.Failed() {
		return nil
	}

	failedLoads := 0
	for _, language := range r.Languages {
		if language.LoadError != "" {
			failedLoads++
		}
	}
	return fmt.Errorf("%w: %d issue(s), %d dictionary(ies) could not be loaded", ErrCheckFailed, r.IssueCount(), failedLoads)
}

// Engine checks every configured dictionary against the root dictionary,
// unless the root has not changed since the last successful run.
type Engine struct {
	loader   DictionaryLoader
	store    SnapshotStore
	reporter Reporter
}

func NewEngine(loader DictionaryLoader, store SnapshotStore, reporter Reporter) *Engine {
	return &Engine{
		loader:   loader,
		store:    store,
		reporter: reporter,
	}
}

// Run executes one check. The returned error is reserved for problems that
// prevent the check itself, such as an unreadable root dictionary or a
// snapshot that cannot be written. Consistency problems are described by the
// result; see Result.Err.
func (e *Engine) Run(plan Plan) (*Result, error) {
	rootSource, ok := plan.root()
	if !ok {
		return nil, fmt.Errorf("root locale %q is not one of the configured dictionaries", plan.RootLocale)
	}

	loaded, err := e.loader.Load(rootSource.LanguageCode, rootSource.Path)
	if err != nil {
		return nil, fmt.Errorf("loader.Load(%s) > %w", rootSource.Path, err)
	}
	root := loaded.Dictionary

	result := &Result{
		RootLocale: plan.RootLocale,
	}
	e.warn(result, loaded.Warnings)

	changed, err := e.rootChanged(root, plan.Force)
	if err != nil {
		return nil, err
	}
	if !changed {
		result.State = StateUpToDate
		e.reporter.RootUpToDate(root.LanguageCode)
		e.reporter.Finished(result)
		return result, nil
	}

	result.State = StateCheckNeeded
	e.reporter.RootChanged(root.LanguageCode)
	for _, source := range plan.Sources {
		if source.LanguageCode == plan.RootLocale {
			continue
		}
		result.Languages = append(result.Languages, e.check(result, root, source))
	}

	if !result.Failed() {
		if err := e.store.Set(root); err != nil {
			return nil, fmt.Errorf("store.Set > %w", err)
		}
		result.CacheUpdated = true
	} else {
		slog.Debug("keeping the previous snapshot", "language", root.LanguageCode)
	}

	e.reporter.Finished(result)
	return result, nil
}

func (e *Engine) rootChanged(root *dictionary.Dictionary, force bool) (bool, error) {
	if force {
		slog.Debug("forced check, skipping the snapshot comparison", "language", root.LanguageCode)
		return true, nil
	}

	snapshot, err := e.store.Get(root.LanguageCode)
	if err != nil {
		return false, fmt.Errorf("store.Get(%s) > %w", root.LanguageCode, err)
	}
	if snapshot == nil {
		return true, nil
	}
	return !snapshot.Equal(root), nil
}

func (e *Engine) check(result *Result, root *dictionary.Dictionary, source Source) LanguageResult {
	languageResult := LanguageResult{
		LanguageCode: source.LanguageCode,
		Path:         source.Path,
	}
	e.reporter.DictionaryStarted(source.LanguageCode)

	loaded, err := e.loader.Load(source.LanguageCode, source.Path)
	if err != nil {
		languageResult.LoadError = err.Error()
		e.reporter.LoadFailed(source.LanguageCode, source.Path, err)
		e.reporter.DictionaryFinished(languageResult)
		return languageResult
	}
	e.warn(result, loaded.Warnings)

	recorder := &issueRecorder{next: e.reporter}
	CompareMessages(root, loaded.Dictionary, recorder)
	languageResult.Issues = recorder.issues

	e.reporter.DictionaryFinished(languageResult)
	return languageResult
}

func (e *Engine) warn(result *Result, warnings []dictionary.Warning) {
	for _, warning := range warnings {
		result.Warnings = append(result.Warnings, warning)
		e.reporter.Warning(warning)
	}
}

// issueRecorder forwards issues and keeps a copy of them.
type issueRecorder struct {
	next   IssueReporter
	issues []Issue
}

func (r *issueRecorder) Issue(issue Issue) {
	r.issues = append(r.issues, issue)
	r.next.Issue(issue)
}
