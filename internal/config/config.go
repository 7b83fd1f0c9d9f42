package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigName     = "fluent_scanner_config"
	DefaultCacheDirectory = ".fluent_scanner_cache"
)

type Config struct {
	RootLocale   string             `mapstructure:"root_locale" validate:"required,locale"`
	Dictionaries []DictionaryConfig `mapstructure:"dictionaries" validate:"required,min=1,unique=LanguageCode,dive"`
	Cache        CacheConfig        `mapstructure:"cache"`
}

// DictionaryConfig is one entry of the dictionaries mapping.
type DictionaryConfig struct {
	LanguageCode string `mapstructure:"language_code" validate:"required,locale"`
	Path         string `mapstructure:"path" validate:"ftl_file"`
}

type CacheConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

// Dictionary returns the configured dictionary of a language.
func (cfg *Config) Dictionary(languageCode string) (DictionaryConfig, bool) {
	for _, dictionary := range cfg.Dictionaries {
		if dictionary.LanguageCode == languageCode {
			return dictionary, true
		}
	}
	return DictionaryConfig{}, false
}

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Problems, ", "))
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	// JSON documents are valid YAML, so one parser reads both formats.
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Load reads the configuration file. The result is not validated; see Validate.
func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("cache.directory", DefaultCacheDirectory)

	if err := v.BindEnv("root_locale", "FLUENT_SCANNER_ROOT_LOCALE"); err != nil {
		return nil, fmt.Errorf("failed to bind FLUENT_SCANNER_ROOT_LOCALE environment variable: %w", err)
	}
	if err := v.BindEnv("cache.directory", "FLUENT_SCANNER_CACHE_DIRECTORY"); err != nil {
		return nil, fmt.Errorf("failed to bind FLUENT_SCANNER_CACHE_DIRECTORY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file %s.{json,yaml,yml} was not found in the working directory: %w", DefaultConfigName, err)
		}
		return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
	}

	// viper lowercases keys and does not keep their order, so the
	// dictionaries mapping is decoded from the document itself.
	dictionaries, err := readDictionaries(v.ConfigFileUsed())
	if err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &Config{
		RootLocale:   v.GetString("root_locale"),
		Dictionaries: dictionaries,
		Cache: CacheConfig{
			Directory: v.GetString("cache.directory"),
		},
	}, nil
}

// Validate reports every problem of cfg at once.
func (loader *ConfigLoader) Validate(cfg *Config) error {
	err := loader.validator.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validator.Struct > %w", err)
	}
	var problems []string
	for _, e := range validationErrors {
		problems = append(problems, e.Translate(loader.translator))
	}
	return &ValidationError{Problems: problems}
}

func readDictionaries(configFile string) ([]DictionaryConfig, error) {
	contents, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", configFile, err)
	}

	var document yaml.Node
	if err := yaml.Unmarshal(contents, &document); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal > %w", err)
	}
	if len(document.Content) == 0 {
		return nil, nil
	}

	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("the configuration must be a mapping, got %s", kindName(root.Kind))
	}

	var node *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "dictionaries" {
			node = root.Content[i+1]
		}
	}
	if node == nil || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dictionaries must be a mapping of language code to file path, got %s", kindName(node.Kind))
	}

	dictionaries := make([]DictionaryConfig, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: the path of %s must be a string, got %s", value.Line, key.Value, kindName(value.Kind))
		}
		dictionaries = append(dictionaries, DictionaryConfig{
			LanguageCode: key.Value,
			Path:         value.Value,
		})
	}
	return dictionaries, nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "a sequence"
	case yaml.MappingNode:
		return "a mapping"
	case yaml.ScalarNode:
		return "a scalar"
	case yaml.AliasNode:
		return "an alias"
	}
	return "nothing"
}
