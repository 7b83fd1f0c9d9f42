package main

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/fluent-scanner/internal/dictionary"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <language> <file>",
		Short: "Print the messages and placeholders found in an FTL file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := dictionary.LoadFile(args[0], args[1])
			if err != nil {
				return fmt.Errorf("dictionary.LoadFile > %w", err)
			}
			for _, warning := range result.Warnings {
				if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning); err != nil {
					return fmt.Errorf("fmt.Fprintf > %w", err)
				}
			}
			return writeYaml(cmd.OutOrStdout(), result.Dictionary)
		},
	}
}

func writeYaml(w io.Writer, value any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close > %w", err)
	}
	return nil
}
