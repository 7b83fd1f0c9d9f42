package main

import (
	"fmt"

	"github.com/at-ishikawa/fluent-scanner/internal/consistency"
	"github.com/at-ishikawa/fluent-scanner/internal/dictionary"
	"github.com/at-ishikawa/fluent-scanner/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// formatFlag is a --format value restricted to report.Formats.
type formatFlag report.Format

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string {
	return string(*f)
}

func (f *formatFlag) Set(value string) error {
	format, err := report.ParseFormat(value)
	if err != nil {
		return err
	}
	*f = formatFlag(format)
	return nil
}

func (f *formatFlag) Type() string {
	return "format"
}

func newCheckCommand() *cobra.Command {
	var force bool
	format := formatFlag(report.FormatText)

	command := &cobra.Command{
		Use:   "check",
		Short: "Check that every dictionary declares the messages and placeholders of the root dictionary",
		Long: "Check that every dictionary declares the messages and placeholders of the root dictionary.\n" +
			"The check is skipped when the root dictionary has not changed since the last successful run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// Machine-readable output owns stdout.
			progress := cmd.OutOrStdout()
			if report.Format(format) != report.FormatText {
				progress = cmd.ErrOrStderr()
			}

			engine := consistency.NewEngine(
				dictionary.NewFileLoader(),
				dictionary.NewFileCache(cfg.Cache.Directory),
				report.NewConsoleReporter(progress),
			)
			result, err := engine.Run(newPlan(cfg, force))
			if err != nil {
				return fmt.Errorf("engine.Run > %w", err)
			}

			if err := report.WriteSummary(cmd.OutOrStdout(), report.Format(format), result); err != nil {
				return fmt.Errorf("report.WriteSummary > %w", err)
			}
			return result.Err()
		},
	}

	command.Flags().BoolVar(&force, "force", false, "Check every dictionary even if the root dictionary has not changed")
	command.Flags().Var(&format, "format", "Summary format: text, json or yaml")
	if err := command.RegisterFlagCompletionFunc("format", completeFormats); err != nil {
		panic(fmt.Errorf("command.RegisterFlagCompletionFunc > %w", err))
	}

	return command
}

func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	completions := make([]string, 0, len(report.Formats))
	for _, f := range report.Formats {
		completions = append(completions, string(f))
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
