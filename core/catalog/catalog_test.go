package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roas-calculator/core/types"
	"roas-calculator/internal/errors"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"bronze", "silver", "gold", "prime"}, c.Keys())
	assert.Equal(t, 4, c.Len())

	fees := []float64{450, 650, 900, 1150}
	caps := []float64{1000, 2500, 5000, 10000}
	for i, tier := range c.Tiers() {
		assert.Equal(t, fees[i], tier.MonthlyFee, tier.Key)
		assert.Equal(t, caps[i], tier.SpendCap, tier.Key)
	}

	assert.Equal(t, "silver", c.DefaultTier().Key)
}

func TestCatalogRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		tiers []types.Tier
	}{
		{"empty", nil},
		{"missing key", []types.Tier{{MonthlyFee: 1, SpendCap: 1}}},
		{"duplicate key", []types.Tier{
			{Key: "a", MonthlyFee: 1, SpendCap: 10},
			{Key: "a", MonthlyFee: 2, SpendCap: 20},
		}},
		{"zero fee", []types.Tier{{Key: "a", MonthlyFee: 0, SpendCap: 10}}},
		{"negative cap", []types.Tier{{Key: "a", MonthlyFee: 5, SpendCap: -10}}},
		{"infinite cap", []types.Tier{{Key: "a", MonthlyFee: 5, SpendCap: math.Inf(1)}}},
		{"infinite fee", []types.Tier{{Key: "a", MonthlyFee: math.Inf(1), SpendCap: 10}}},
		{"NaN onboarding fee", []types.Tier{{Key: "a", MonthlyFee: 5, OnboardingFee: math.NaN(), SpendCap: 10}}},
		{"descending fee", []types.Tier{
			{Key: "a", MonthlyFee: 900, SpendCap: 1000},
			{Key: "b", MonthlyFee: 450, SpendCap: 2000},
		}},
		{"descending cap", []types.Tier{
			{Key: "a", MonthlyFee: 450, SpendCap: 5000},
			{Key: "b", MonthlyFee: 900, SpendCap: 1000},
		}},
		{"equal fee", []types.Tier{
			{Key: "a", MonthlyFee: 450, SpendCap: 1000},
			{Key: "b", MonthlyFee: 450, SpendCap: 2000},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.tiers...)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.IsType(err, errors.TypeConfig), "expected config error, got %v", err)
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	errs := Validate([]types.Tier{
		{Key: "a", MonthlyFee: 900, SpendCap: 5000},
		{Key: "a", MonthlyFee: 450, SpendCap: 1000},
	}, DefaultValidationRules())

	// duplicate key, descending fee, descending cap
	assert.Len(t, errs, 3)
}

func TestCatalogIsImmutable(t *testing.T) {
	tiers := DefaultTiers()
	c := MustNew(tiers...)

	tiers[0].MonthlyFee = 1
	tiers[0].Features[0] = "changed"

	got, ok := c.Get("bronze")
	require.True(t, ok)
	assert.Equal(t, 450.0, got.MonthlyFee)
	assert.NotEqual(t, "changed", got.Features[0])

	out := c.Tiers()
	out[1].SpendCap = 0
	again, _ := c.Get("silver")
	assert.Equal(t, 2500.0, again.SpendCap)
}

func TestLookup(t *testing.T) {
	c := Default()

	tier, err := c.Lookup("gold")
	require.NoError(t, err)
	assert.Equal(t, "Gold", tier.Name)

	_, err = c.Lookup("platinum")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestDefaultTierFallsBackToCheapest(t *testing.T) {
	c := MustNew(
		types.Tier{Key: "lite", MonthlyFee: 100, SpendCap: 500},
		types.Tier{Key: "pro", MonthlyFee: 300, SpendCap: 1500},
	)
	assert.Equal(t, "lite", c.DefaultTier().Key)
}
