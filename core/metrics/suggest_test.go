package metrics

import (
	"math"
	"testing"

	"roas-calculator/core/types"
)

func TestSuggestedSpend(t *testing.T) {
	tests := []struct {
		name     string
		fee      float64
		spendCap float64
		roas     float64
		margin   float64
		expected float64
	}{
		{"80% of cap wins", 450, 1000, 3, 0.6, 800},
		{"headroom clamped to cap", 650, 2500, 0.5, 0.5, 2500},
		{"high fee clamped to cap", 900, 5000, 0.4, 0.5, 5000},
		{"breakeven headroom wins", 1400, 2000, 2, 0.5, 1750},
		{"zero roas falls back", 650, 2500, 0, 0.6, 2000},
		{"zero margin falls back", 650, 2500, 3, 0, 2000},
		{"negative roas falls back", 650, 1030, -1, 0.6, 800},
		{"cap off step never exceeded", 1000, 1030, 1, 1, 1000},
		{"tiny cap", 100, 40, 3, 0.6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := types.Tier{Key: "t", MonthlyFee: tt.fee, SpendCap: tt.spendCap}
			got := SuggestedSpend(tier, tt.fee, tt.roas, tt.margin)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// TestSuggestedSpendBounds checks range and step over awkward caps
func TestSuggestedSpendBounds(t *testing.T) {
	caps := []float64{40, 60, 999, 1000, 1030, 1075, 2500, 10000, 12345}
	fees := []float64{0, 450, 1150, 20000}
	roases := []float64{0, 0.3, 1, 3, 10}
	margins := []float64{0, 0.05, 0.6, 1}

	for _, c := range caps {
		for _, f := range fees {
			for _, r := range roases {
				for _, g := range margins {
					tier := types.Tier{Key: "t", MonthlyFee: f, SpendCap: c}
					s := SuggestedSpend(tier, f, r, g)
					if s < 0 || s > c {
						t.Fatalf("cap=%v fee=%v roas=%v margin=%v: spend %v out of [0, cap]", c, f, r, g, s)
					}
					if math.Mod(s, SpendStep) != 0 {
						t.Fatalf("cap=%v fee=%v roas=%v margin=%v: spend %v not a multiple of %v", c, f, r, g, s, SpendStep)
					}
				}
			}
		}
	}
}

func TestRoundToStep(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{24.9, 0},
		{25, 50},
		{472.5, 450},
		{525, 550},
		{1837.5, 1850},
	}
	for _, tt := range tests {
		if got := RoundToStep(tt.in); got != tt.expected {
			t.Errorf("RoundToStep(%v): expected %v, got %v", tt.in, tt.expected, got)
		}
	}
}

func TestStepCap(t *testing.T) {
	if got := StepCap(1030); got != 1000 {
		t.Errorf("expected 1000, got %v", got)
	}
	if got := StepCap(2500); got != 2500 {
		t.Errorf("expected 2500, got %v", got)
	}
	if got := StepCap(-5); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
}
