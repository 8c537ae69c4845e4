package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"roas-calculator/core/engine"
	"roas-calculator/core/types"
)

// CLIFormatter renders boxed terminal tables
type CLIFormatter struct {
	opts Options
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(opts Options) *CLIFormatter {
	return &CLIFormatter{opts: opts}
}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// RenderReport writes the selected tier summary followed by the comparison
func (f *CLIFormatter) RenderReport(w io.Writer, report *engine.Report) error {
	b := &box{}
	b.line(fmt.Sprintf("ROAS CALCULATOR: %s", tierTitle(report.Tier)))
	b.rule()

	m := report.Metrics
	b.pair("Ad spend", f.money(report.Input.Spend))
	b.pair("Target ROAS", fmt.Sprintf("%g×", report.Input.ROAS))
	b.pair("Gross margin", Percent(types.Some(report.Input.GrossMarginFraction*100)))
	b.rule()
	b.pair("Revenue", f.money(m.Revenue))
	b.pair("Gross profit", f.money(m.GrossProfit))
	b.pair("Fee / month", f.money(report.Input.Fee))
	b.pair("Net after fee", f.money(m.NetAfterFee))
	b.pair("Breakeven ROAS", Multiple(m.BreakevenROAS))
	b.pair("ROI on spend (after fee)", Percent(m.ROIPercent))
	b.rule()
	b.line("TIER COMPARISON (RECOMMENDED SCENARIO)")
	f.comparisonLines(b, report.Comparison)
	for _, a := range report.Assumptions {
		b.rule()
		b.line(a)
	}

	return b.render(w)
}

// RenderComparison writes the comparison table alone
func (f *CLIFormatter) RenderComparison(w io.Writer, rows []types.TierComparisonRow) error {
	b := &box{}
	b.line("TIER COMPARISON (RECOMMENDED SCENARIO)")
	f.comparisonLines(b, rows)
	b.rule()
	b.line(engine.ComparisonAssumption)
	return b.render(w)
}

// RenderTiers writes the tier catalog
func (f *CLIFormatter) RenderTiers(w io.Writer, tiers []types.Tier) error {
	b := &box{}
	b.line(fmt.Sprintf("%-10s %-12s %10s %12s %12s", "TIER", "LABEL", "FEE/MO", "ONBOARDING", "SPEND CAP"))
	b.rule()
	for _, t := range tiers {
		b.line(fmt.Sprintf("%-10s %-12s %10s %12s %12s",
			truncate(t.Name, 10),
			truncate(t.Tagline, 12),
			f.money(t.MonthlyFee),
			f.money(t.OnboardingFee),
			f.money(t.SpendCap)))
		for _, feature := range t.Features {
			b.line("  └─ " + feature)
		}
	}
	return b.render(w)
}

func (f *CLIFormatter) comparisonLines(b *box, rows []types.TierComparisonRow) {
	const layout = "%-10s %10s %12s %12s %8s %12s  %s"
	b.rule()
	b.line(fmt.Sprintf(layout, "Tier", "Spend", "Revenue", "Gross", "Fee", "Net", "Status"))
	b.rule()
	for _, r := range rows {
		b.line(fmt.Sprintf(layout,
			truncate(r.Tier.Name, 10),
			f.money(r.SuggestedSpend),
			f.money(r.Revenue),
			f.money(r.GrossProfit),
			f.money(r.Tier.MonthlyFee),
			f.money(r.NetAfterFee),
			r.Status.Label()))
	}
}

func (f *CLIFormatter) money(v float64) string {
	return Money(v, f.opts.Currency, f.opts.Language)
}

func tierTitle(t types.Tier) string {
	if t.Tagline == "" {
		return t.Name
	}
	return fmt.Sprintf("%s (%s)", t.Name, t.Tagline)
}

// box collects lines and draws them inside a border sized to the widest line
type box struct {
	lines []string
	rules map[int]bool
}

func (b *box) line(s string) {
	b.lines = append(b.lines, s)
}

func (b *box) pair(label, value string) {
	b.line(fmt.Sprintf("%-28s %16s", label, value))
}

func (b *box) rule() {
	if b.rules == nil {
		b.rules = make(map[int]bool)
	}
	b.rules[len(b.lines)] = true
	b.lines = append(b.lines, "")
}

func (b *box) render(w io.Writer) error {
	width := 0
	for i, l := range b.lines {
		if !b.rules[i] && utf8.RuneCountInString(l) > width {
			width = utf8.RuneCountInString(l)
		}
	}

	bar := strings.Repeat("─", width+2)
	var sb strings.Builder
	sb.WriteString("┌" + bar + "┐\n")
	for i, l := range b.lines {
		if b.rules[i] {
			sb.WriteString("├" + bar + "┤\n")
			continue
		}
		pad := width - utf8.RuneCountInString(l)
		sb.WriteString("│ " + l + strings.Repeat(" ", pad) + " │\n")
	}
	sb.WriteString("└" + bar + "┘\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	return string(r[:maxLen-3]) + "..."
}
