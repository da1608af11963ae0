package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/fr4nk3nst1ner/langsalaries/internal/models"
)

// Output formats accepted by WriteReports.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// IsValidFormat checks if the output format is supported
func IsValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	}
	return false
}

// WriteReports writes every report to w in the given format. JSON and YAML
// output is a single document holding the reports as a list.
func WriteReports(w io.Writer, reports []*models.Report, format string) error {
	switch strings.ToLower(format) {
	case FormatTable:
		for _, report := range reports {
			table, err := RenderTable(report)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, table); err != nil {
				return errors.Wrap(err, "failed to write table")
			}
		}
		return nil

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(reports), "failed to encode JSON reports")

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(reports); err != nil {
			return errors.Wrap(err, "failed to encode YAML reports")
		}
		return errors.Wrap(encoder.Close(), "failed to flush YAML reports")

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
