package output

import (
	"encoding/json"
	"io"

	"roas-calculator/core/engine"
	"roas-calculator/core/types"
)

// JSONFormatter writes indented JSON. Absent metrics encode as null.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns FormatJSON
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// RenderReport writes the report as JSON
func (f *JSONFormatter) RenderReport(w io.Writer, report *engine.Report) error {
	return writeJSON(w, report)
}

// RenderComparison writes the rows as a JSON array
func (f *JSONFormatter) RenderComparison(w io.Writer, rows []types.TierComparisonRow) error {
	return writeJSON(w, map[string]interface{}{
		"comparison":  rows,
		"assumptions": []string{engine.ComparisonAssumption},
	})
}

// RenderTiers writes the catalog as JSON
func (f *JSONFormatter) RenderTiers(w io.Writer, tiers []types.Tier) error {
	return writeJSON(w, map[string]interface{}{"tiers": tiers})
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
