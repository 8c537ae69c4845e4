package output

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"roas-calculator/core/types"
)

// Placeholder is shown for values that are absent or not finite
const Placeholder = "—"

// symbolAfter lists languages that write the currency symbol after the
// amount, separated by a no-break space ("1.234 €" in Greek).
var symbolAfter = map[language.Base]bool{
	mustBase("el"): true,
	mustBase("de"): true,
	mustBase("fr"): true,
	mustBase("es"): true,
	mustBase("it"): true,
	mustBase("pt"): true,
	mustBase("pl"): true,
	mustBase("cs"): true,
	mustBase("sk"): true,
	mustBase("fi"): true,
	mustBase("sv"): true,
	mustBase("da"): true,
	mustBase("nb"): true,
	mustBase("ro"): true,
	mustBase("bg"): true,
	mustBase("hr"): true,
	mustBase("sl"): true,
	mustBase("hu"): true,
}

func mustBase(s string) language.Base {
	return language.MustParseBase(s)
}

// Money formats v as whole currency units with locale digit grouping and
// locale symbol placement: "€7,500" in English, "7.500 €" in Greek
func Money(v float64, c types.Currency, tag language.Tag) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}

	units := decimal.NewFromFloat(v).Round(0)
	sign := ""
	if units.IsNegative() {
		sign = "-"
		units = units.Abs()
	}

	digits := message.NewPrinter(tag).Sprintf("%d", units.IntPart())
	if base, _ := tag.Base(); symbolAfter[base] {
		return sign + digits + "\u00a0" + c.Symbol()
	}
	return sign + c.Symbol() + digits
}

// Percent formats a present value with one decimal, e.g. "154.0%"
func Percent(v types.NullFloat) string {
	f, ok := v.Get()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return Placeholder
	}
	return decimal.NewFromFloat(f).StringFixed(1) + "%"
}

// Multiple formats a present ROAS multiple with two decimals, e.g. "0.43×"
func Multiple(v types.NullFloat) string {
	f, ok := v.Get()
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return Placeholder
	}
	return decimal.NewFromFloat(f).StringFixed(2) + "×"
}
