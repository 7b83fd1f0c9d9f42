package main

import (
	"fmt"

	"github.com/at-ishikawa/fluent-scanner/internal/config"
	"github.com/at-ishikawa/fluent-scanner/internal/consistency"
)

// loadConfig reads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if err := loader.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newPlan(cfg *config.Config, force bool) consistency.Plan {
	plan := consistency.Plan{
		RootLocale: cfg.RootLocale,
		Force:      force,
	}
	for _, dictionary := range cfg.Dictionaries {
		plan.Sources = append(plan.Sources, consistency.Source{
			LanguageCode: dictionary.LanguageCode,
			Path:         dictionary.Path,
		})
	}
	return plan
}

// configuredLanguages returns the given language codes, or the root locale when none is given.
// Every code has to be declared in the configuration.
func configuredLanguages(cfg *config.Config, args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{cfg.RootLocale}, nil
	}
	for _, languageCode := range args {
		if _, ok := cfg.Dictionary(languageCode); !ok {
			return nil, fmt.Errorf("language %s is not configured", languageCode)
		}
	}
	return args, nil
}
