package output

import (
	"fmt"
	"io"
	"strings"

	"roas-calculator/core/engine"
	"roas-calculator/core/types"
)

// MarkdownFormatter writes GitHub-flavored markdown tables
type MarkdownFormatter struct {
	opts Options
}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// RenderReport writes the selected tier summary and comparison
func (f *MarkdownFormatter) RenderReport(w io.Writer, report *engine.Report) error {
	var sb strings.Builder
	m := report.Metrics

	fmt.Fprintf(&sb, "## ROAS & Profitability: %s\n\n", tierTitle(report.Tier))
	sb.WriteString("| Metric | Value |\n|---|---:|\n")
	fmt.Fprintf(&sb, "| Revenue | %s |\n", f.money(m.Revenue))
	fmt.Fprintf(&sb, "| Gross Profit | %s |\n", f.money(m.GrossProfit))
	fmt.Fprintf(&sb, "| Fee / Month | %s |\n", f.money(report.Input.Fee))
	fmt.Fprintf(&sb, "| Net After Fee | %s |\n", f.money(m.NetAfterFee))
	fmt.Fprintf(&sb, "| Breakeven ROAS | %s |\n", Multiple(m.BreakevenROAS))
	fmt.Fprintf(&sb, "| ROI on spend (after fee) | %s |\n\n", Percent(m.ROIPercent))

	f.comparison(&sb, report.Comparison)

	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderComparison writes the comparison table alone
func (f *MarkdownFormatter) RenderComparison(w io.Writer, rows []types.TierComparisonRow) error {
	var sb strings.Builder
	f.comparison(&sb, rows)
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderTiers writes the catalog with feature bullets
func (f *MarkdownFormatter) RenderTiers(w io.Writer, tiers []types.Tier) error {
	var sb strings.Builder
	for _, t := range tiers {
		fmt.Fprintf(&sb, "### %s\n\n", tierTitle(t))
		fmt.Fprintf(&sb, "%s/mo, onboarding %s, ad spend up to %s\n\n",
			f.money(t.MonthlyFee), f.money(t.OnboardingFee), f.money(t.SpendCap))
		for _, feature := range t.Features {
			fmt.Fprintf(&sb, "- %s\n", feature)
		}
		if len(t.Features) > 0 {
			sb.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (f *MarkdownFormatter) comparison(sb *strings.Builder, rows []types.TierComparisonRow) {
	sb.WriteString("### Tier Comparison (Recommended Scenario)\n\n")
	sb.WriteString("| Tier | Suggested Spend | Revenue | Gross Profit | Fee | Net After Fee | Status |\n")
	sb.WriteString("|---|---:|---:|---:|---:|---:|---|\n")
	for _, r := range rows {
		fmt.Fprintf(sb, "| %s | %s | %s | %s | %s | %s | %s |\n",
			r.Tier.Name,
			f.money(r.SuggestedSpend),
			f.money(r.Revenue),
			f.money(r.GrossProfit),
			f.money(r.Tier.MonthlyFee),
			f.money(r.NetAfterFee),
			r.Status.Label())
	}
	fmt.Fprintf(sb, "\n_%s_\n", engine.ComparisonAssumption)
}

func (f *MarkdownFormatter) money(v float64) string {
	return Money(v, f.opts.Currency, f.opts.Language)
}
