package metrics

import (
	"math"

	"roas-calculator/core/types"
)

const (
	// SpendStep is the granularity of every suggested spend
	SpendStep = 50.0

	// CapShare is the minimum share of the tier cap a suggestion uses
	CapShare = 0.8

	// BreakevenHeadroom scales breakeven spend into a profitable target
	BreakevenHeadroom = 1.25

	// RepairStep is the multiplicative spend increase per repair iteration
	RepairStep = 1.05
)

// SuggestedSpend picks a representative spend for a tier: the larger of
// CapShare of the cap and BreakevenHeadroom above breakeven, clamped to
// [0, cap] and rounded to SpendStep.
//
// With a non-positive ROAS or margin there is no breakeven, so the
// suggestion falls back to CapShare of the cap.
func SuggestedSpend(tier types.Tier, fee, roas, grossMarginFraction float64) float64 {
	capacity := tier.SpendCap
	if !(roas > 0 && grossMarginFraction > 0) {
		return clampToCap(RoundToStep(capacity*CapShare), capacity)
	}

	breakevenSpend := fee / (roas * grossMarginFraction)
	target := math.Max(capacity*CapShare, breakevenSpend*BreakevenHeadroom)
	target = math.Min(target, capacity)

	return clampToCap(RoundToStep(target), capacity)
}

// RoundToStep rounds v to the nearest multiple of SpendStep, halves up
func RoundToStep(v float64) float64 {
	return math.Floor(v/SpendStep+0.5) * SpendStep
}

// StepCap is the largest multiple of SpendStep not above capacity
func StepCap(capacity float64) float64 {
	if !(capacity > 0) {
		return 0
	}
	return math.Floor(capacity/SpendStep) * SpendStep
}

// clampToCap keeps a rounded spend inside [0, StepCap(capacity)]
func clampToCap(spend, capacity float64) float64 {
	return math.Max(0, math.Min(spend, StepCap(capacity)))
}
