// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"

	"golang.org/x/text/language"

	"roas-calculator/core/engine"
	"roas-calculator/core/types"
	"roas-calculator/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// RenderReport writes a full calculator report
	RenderReport(w io.Writer, report *engine.Report) error

	// RenderComparison writes only the tier comparison table
	RenderComparison(w io.Writer, rows []types.TierComparisonRow) error

	// RenderTiers writes the tier catalog
	RenderTiers(w io.Writer, tiers []types.Tier) error
}

// Options control display formatting shared by all formatters
type Options struct {
	// Currency is used for money columns
	Currency types.Currency

	// Language drives digit grouping
	Language language.Tag
}

// DefaultOptions renders euros with Greek digit grouping
func DefaultOptions() Options {
	return Options{
		Currency: types.CurrencyEUR,
		Language: language.Greek,
	}
}

// ParseLocale returns the tag for a BCP 47 locale, English when invalid
func ParseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	return tag
}

// Registry maps formats to formatters
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry returns a registry with every built-in formatter
func NewRegistry(opts Options) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	r.Register(NewCLIFormatter(opts))
	r.Register(NewJSONFormatter())
	r.Register(NewMarkdownFormatter(opts))
	return r
}

// Register adds or replaces a formatter
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Format()] = f
}

// Get returns the formatter for a format
func (r *Registry) Get(format Format) (Formatter, error) {
	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.NotSupported("output format " + string(format))
	}
	return f, nil
}

// Formats lists registered formats in a stable order
func (r *Registry) Formats() []Format {
	var out []Format
	for _, f := range []Format{FormatCLI, FormatJSON, FormatMarkdown} {
		if _, ok := r.formatters[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
