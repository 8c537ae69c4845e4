package metrics

import "roas-calculator/core/types"

// ClassifyRow labels a comparison row. Losing rows always ask for better
// ROAS or margin; the last profitable row is the highest-net tier.
func ClassifyRow(row types.TierComparisonRow, isLast bool) types.RowStatus {
	switch {
	case row.NetAfterFee < 0:
		return types.StatusImprove
	case isLast:
		return types.StatusHighest
	default:
		return types.StatusProfitable
	}
}

// Classify sets Status on every row in place and returns the slice
func Classify(rows []types.TierComparisonRow) []types.TierComparisonRow {
	for i := range rows {
		rows[i].Status = ClassifyRow(rows[i], i == len(rows)-1)
	}
	return rows
}
