package main

import (
	"fmt"

	"github.com/at-ishikawa/fluent-scanner/internal/dictionary"
	"github.com/spf13/cobra"
)

func newCacheCommand() *cobra.Command {
	cacheCommand := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the stored snapshots of root dictionaries",
	}

	cacheCommand.AddCommand(
		newCacheListCommand(),
		newCacheShowCommand(),
		newCacheClearCommand(),
	)
	return cacheCommand
}

func newCacheListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the languages that have a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			languageCodes, err := dictionary.NewFileCache(cfg.Cache.Directory).List()
			if err != nil {
				return fmt.Errorf("cache.List > %w", err)
			}
			for _, languageCode := range languageCodes {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), languageCode); err != nil {
					return fmt.Errorf("fmt.Fprintln > %w", err)
				}
			}
			return nil
		},
	}
}

func newCacheShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [language]",
		Short: "Print the snapshot of a language, the root locale by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			languageCodes, err := configuredLanguages(cfg, args)
			if err != nil {
				return err
			}

			snapshot, err := dictionary.NewFileCache(cfg.Cache.Directory).Get(languageCodes[0])
			if err != nil {
				return fmt.Errorf("cache.Get > %w", err)
			}
			if snapshot == nil {
				return fmt.Errorf("%w: %s", dictionary.ErrSnapshotNotFound, languageCodes[0])
			}

			return writeYaml(cmd.OutOrStdout(), snapshot)
		},
	}
}

func newCacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [language...]",
		Short: "Delete snapshots so that the next check runs, the root locale by default",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			languageCodes, err := configuredLanguages(cfg, args)
			if err != nil {
				return err
			}

			cache := dictionary.NewFileCache(cfg.Cache.Directory)
			for _, languageCode := range languageCodes {
				if err := cache.Delete(languageCode); err != nil {
					return fmt.Errorf("cache.Delete > %w", err)
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted the snapshot of %s\n", languageCode); err != nil {
					return fmt.Errorf("fmt.Fprintf > %w", err)
				}
			}
			return nil
		},
	}
}
