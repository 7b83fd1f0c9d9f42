package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/at-ishikawa/fluent-scanner/internal/consistency"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	exitCodeCheckFailed = 1
	exitCodeError       = 2
)

var (
	configFile string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newRootCommand() *cobra.Command {
	var debugMode bool
	rootCommand := &cobra.Command{
		Use:           "fluent-scanner",
		Short:         "Check that translated Fluent dictionaries match the root dictionary",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(cmd.ErrOrStderr(), debugMode)
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("godotenv.Load > %w", err)
			}
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newCheckCommand(),
		newCacheCommand(),
		newParseCommand(),
	)
	return rootCommand
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCommand := newRootCommand()
	rootCommand.SetArgs(args)
	rootCommand.SetOut(stdout)
	rootCommand.SetErr(stderr)

	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	if errors.Is(err, consistency.ErrCheckFailed) {
		return exitCodeCheckFailed
	}
	return exitCodeError
}

// setupLogger configures the default logger based on debug mode
func setupLogger(out io.Writer, debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: debugMode,
		})),
	)
}
