package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Language codes also name snapshot files, so they cannot contain path separators.
var localePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

type customValidation struct {
	tag         string
	fn          validator.Func
	translation string
}

var customValidations = []customValidation{
	{
		tag:         "locale",
		fn:          isLocale,
		translation: "{0} must contain only letters, digits, '-' or '_'",
	},
	{
		tag:         "ftl_file",
		fn:          isFTLFile,
		translation: "{0} must be a relative path to an existing and readable file",
	},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for _, custom := range customValidations {
		if err := validate.RegisterValidation(custom.tag, custom.fn); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s validation: %w", custom.tag, err)
		}
		if err := registerTranslation(validate, trans, custom.tag, custom.translation); err != nil {
			return nil, nil, err
		}
	}

	validate.RegisterStructValidation(validateRootLocale, Config{})
	if err := registerTranslation(validate, trans, "root_declared", "{0} must be one of the configured dictionaries"); err != nil {
		return nil, nil, err
	}

	return validate, trans, nil
}

func registerTranslation(validate *validator.Validate, trans ut.Translator, tag, text string) error {
	if err := validate.RegisterTranslation(tag, trans, func(ut ut.Translator) error {
		return ut.Add(tag, text, true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T(tag, strings.TrimPrefix(fe.Namespace(), "Config."))
		return t
	}); err != nil {
		return fmt.Errorf("failed to register %s translation: %w", tag, err)
	}
	return nil
}

// validateRootLocale requires the root locale to be one of the dictionaries.
func validateRootLocale(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.RootLocale == "" {
		return
	}
	if _, ok := cfg.Dictionary(cfg.RootLocale); !ok {
		sl.ReportError(cfg.RootLocale, "root_locale", "RootLocale", "root_declared", "")
	}
}

func isLocale(fl validator.FieldLevel) bool {
	return localePattern.MatchString(fl.Field().String())
}

func isFTLFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" || filepath.IsAbs(path) {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}

	// Check if the owner has read permission
	return info.Mode().Perm()&(1<<(uint(8))) != 0
}
