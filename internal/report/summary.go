package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/at-ishikawa/fluent-scanner/internal/consistency"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var Formats = []Format{FormatText, FormatJSON, FormatYAML}

func ParseFormat(value string) (Format, error) {
	for _, format := range Formats {
		if string(format) == value {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, must be one of %v", value, Formats)
}

// WriteSummary writes the result in a machine-readable format.
// Nothing is written for FormatText, whose output is the console report itself.
func WriteSummary(w io.Writer, format Format, result *consistency.Result) error {
	switch format {
	case FormatText:
		return nil
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encoder.Encode > %w", err)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return fmt.Errorf("encoder.Encode > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encoder.Close > %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}
