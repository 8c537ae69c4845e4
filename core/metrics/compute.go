// Package metrics computes ROAS profitability for a single tier and builds
// the cross-tier comparison table.
// Every function here is pure: no I/O, no shared state, no rounding of
// derived values (rounding is a display concern).
package metrics

import "roas-calculator/core/types"

// ComputeMetrics derives revenue, gross profit and net after fee.
// Inputs must already be clamped (see ClampInput). BreakevenROAS is absent
// when spend*margin is zero and ROIPercent is absent when spend is zero.
func ComputeMetrics(spend, roas, grossMarginFraction, fee float64) types.DerivedMetrics {
	revenue := spend * roas
	grossProfit := revenue * grossMarginFraction
	netAfterFee := grossProfit - fee

	m := types.DerivedMetrics{
		Revenue:     revenue,
		GrossProfit: grossProfit,
		NetAfterFee: netAfterFee,
	}

	if spend > 0 && grossMarginFraction > 0 {
		m.BreakevenROAS = types.Some(fee / (spend * grossMarginFraction))
	}
	if spend > 0 {
		m.ROIPercent = types.Some((netAfterFee / spend) * 100)
	}

	return m
}

// Compute is ComputeMetrics over a CalculatorInput
func Compute(in types.CalculatorInput) types.DerivedMetrics {
	return ComputeMetrics(in.Spend, in.ROAS, in.GrossMarginFraction, in.Fee)
}
