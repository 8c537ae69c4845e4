// Package catalog - Catalog validation
// Ensures catalog integrity and enforces ordering invariants.
package catalog

import (
	"fmt"
	"math"

	"roas-calculator/core/types"
)

// ValidationRule checks the tier at index i, with access to its neighbours
type ValidationRule func(tiers []types.Tier, i int) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateKey,
		validateUniqueKey,
		validateFinite,
		validatePositiveFee,
		validatePositiveCap,
		validateAscendingFee,
		validateAscendingCap,
	}
}

// Validate checks tiers against rules and returns every violation
func Validate(tiers []types.Tier, rules []ValidationRule) []error {
	if len(tiers) == 0 {
		return []error{fmt.Errorf("catalog has no tiers")}
	}

	var errs []error
	for i := range tiers {
		for _, rule := range rules {
			if err := rule(tiers, i); err != nil {
				errs = append(errs, fmt.Errorf("tier %d (%s): %w", i, tiers[i].Key, err))
			}
		}
	}
	return errs
}

func validateKey(tiers []types.Tier, i int) error {
	if tiers[i].Key == "" {
		return fmt.Errorf("key is required")
	}
	return nil
}

func validateUniqueKey(tiers []types.Tier, i int) error {
	for j := 0; j < i; j++ {
		if tiers[j].Key == tiers[i].Key {
			return fmt.Errorf("duplicate key, first used by tier %d", j)
		}
	}
	return nil
}

func validateFinite(tiers []types.Tier, i int) error {
	t := tiers[i]
	fields := []struct {
		name  string
		value float64
	}{
		{"monthly fee", t.MonthlyFee},
		{"onboarding fee", t.OnboardingFee},
		{"spend cap", t.SpendCap},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.value)
		}
	}
	return nil
}

func validatePositiveFee(tiers []types.Tier, i int) error {
	if !(tiers[i].MonthlyFee > 0) {
		return fmt.Errorf("monthly fee must be positive, got %v", tiers[i].MonthlyFee)
	}
	return nil
}

func validatePositiveCap(tiers []types.Tier, i int) error {
	if !(tiers[i].SpendCap > 0) {
		return fmt.Errorf("spend cap must be positive, got %v", tiers[i].SpendCap)
	}
	return nil
}

func validateAscendingFee(tiers []types.Tier, i int) error {
	if i > 0 && tiers[i].MonthlyFee <= tiers[i-1].MonthlyFee {
		return fmt.Errorf("monthly fee %v must exceed previous tier's %v", tiers[i].MonthlyFee, tiers[i-1].MonthlyFee)
	}
	return nil
}

func validateAscendingCap(tiers []types.Tier, i int) error {
	if i > 0 && tiers[i].SpendCap <= tiers[i-1].SpendCap {
		return fmt.Errorf("spend cap %v must exceed previous tier's %v", tiers[i].SpendCap, tiers[i-1].SpendCap)
	}
	return nil
}
