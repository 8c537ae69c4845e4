package metrics

import (
	"math"

	"roas-calculator/core/types"
)

// BuildComparison returns one row per tier, in the order given.
//
// Each row starts at SuggestedSpend for the tier's own fee. A repair pass then
// walks the rows cheapest first: when a row's net after fee does not beat the
// previous row, its spend is raised in RepairStep increments (rounded to
// SpendStep, capped at the tier's StepCap) until it does. A row whose cap is reached
// without beating the previous row keeps its suggested spend, so the table may
// still show a pricier tier earning less.
//
// Tier ordering is a precondition, not checked here. Use catalog.New to get a
// validated ordering.
func BuildComparison(tiers []types.Tier, roas, grossMarginFraction float64) []types.TierComparisonRow {
	rows := make([]types.TierComparisonRow, 0, len(tiers))
	for _, t := range tiers {
		spend := SuggestedSpend(t, t.MonthlyFee, roas, grossMarginFraction)
		rows = append(rows, rowAt(t, spend, roas, grossMarginFraction))
	}

	for i := 1; i < len(rows); i++ {
		prev := rows[i-1].NetAfterFee
		if rows[i].NetAfterFee > prev {
			continue
		}
		if better, ok := repairRow(rows[i], prev, roas, grossMarginFraction); ok {
			rows[i] = better
		}
	}

	return rows
}

// repairRow searches upward from the row's spend for a spend that beats
// target. The loop is bounded by the tier cap.
func repairRow(row types.TierComparisonRow, target, roas, grossMarginFraction float64) (types.TierComparisonRow, bool) {
	capacity := StepCap(row.Tier.SpendCap)
	spend := row.SuggestedSpend

	for spend < capacity {
		next := math.Min(capacity, RoundToStep(spend*RepairStep))
		// rounding can swallow a 5% step on small spends
		if next <= spend {
			next = math.Min(capacity, spend+SpendStep)
		}
		spend = next

		candidate := rowAt(row.Tier, spend, roas, grossMarginFraction)
		if candidate.NetAfterFee > target {
			return candidate, true
		}
		if spend == capacity {
			break
		}
	}

	return row, false
}

func rowAt(t types.Tier, spend, roas, grossMarginFraction float64) types.TierComparisonRow {
	m := ComputeMetrics(spend, roas, grossMarginFraction, t.MonthlyFee)
	return types.TierComparisonRow{
		Tier:           t,
		SuggestedSpend: spend,
		Revenue:        m.Revenue,
		GrossProfit:    m.GrossProfit,
		NetAfterFee:    m.NetAfterFee,
	}
}
