package metrics

import (
	"math"

	"roas-calculator/core/types"
)

// ClampInput forces raw inputs into the ranges ComputeMetrics expects:
// spend and ROAS non-negative, margin within [0, 1]. NaN becomes zero.
// Fee is passed through untouched.
func ClampInput(in types.CalculatorInput) types.CalculatorInput {
	return types.CalculatorInput{
		Spend:               nonNegative(in.Spend),
		ROAS:                nonNegative(in.ROAS),
		GrossMarginFraction: clamp(in.GrossMarginFraction, 0, 1),
		Fee:                 in.Fee,
	}
}

// MarginFromPercent converts a 0-100 margin percentage into a clamped fraction
func MarginFromPercent(percent float64) float64 {
	return clamp(percent, 0, 100) / 100
}

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
