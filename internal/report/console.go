// Package report renders the progress and the outcome of a consistency run.
package report

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/fluent-scanner/internal/consistency"
	"github.com/at-ishikawa/fluent-scanner/internal/dictionary"
	"github.com/fatih/color"
)

// ConsoleReporter prints a run for people reading a terminal.
type ConsoleReporter struct {
	out    io.Writer
	bold   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		out:    out,
		bold:   color.New(color.Bold),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
}

var _ consistency.Reporter = (*ConsoleReporter)(nil)

func (r *ConsoleReporter) RootUpToDate(languageCode string) {
	_, _ = r.green.Fprintf(r.out, "Root dictionary %s has not changed since the last successful check\n", languageCode)
}

func (r *ConsoleReporter) RootChanged(languageCode string) {
	_, _ = fmt.Fprintf(r.out, "Root dictionary %s has changed, checking the other dictionaries\n", languageCode)
}

func (r *ConsoleReporter) DictionaryStarted(languageCode string) {
	_, _ = r.bold.Fprintf(r.out, "[%s]\n", languageCode)
}

func (r *ConsoleReporter) Issue(issue consistency.Issue) {
	_, _ = r.red.Fprintf(r.out, "  %s\n", issue.Error())
}

func (r *ConsoleReporter) Warning(warning dictionary.Warning) {
	_, _ = r.yellow.Fprintf(r.out, "warning: %s\n", warning)
}

func (r *ConsoleReporter) LoadFailed(languageCode, path string, err error) {
	_, _ = r.red.Fprintf(r.out, "  could not load %s: %v\n", path, err)
}

func (r *ConsoleReporter) DictionaryFinished(result consistency.LanguageResult) {
	switch {
	case result.LoadError != "":
		return
	case len(result.Issues) > 0:
		_, _ = r.red.Fprintf(r.out, "  %d issue(s) in %s\n", len(result.Issues), result.Path)
	default:
		_, _ = r.green.Fprintf(r.out, "  %s is consistent\n", result.Path)
	}
}

func (r *ConsoleReporter) Finished(result *consistency.Result) {
	if result.State == consistency.StateUpToDate {
		return
	}
	if err := result.Err(); err != nil {
		_, _ = r.red.Fprintf(r.out, "%v\n", err)
		return
	}
	_, _ = r.green.Fprintf(r.out, "All %d dictionaries are consistent with %s\n", len(result.Languages), result.RootLocale)
}
