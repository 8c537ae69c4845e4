// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Tier is a fixed-price subscription package with an advertising spend cap.
// Tiers are immutable once placed in a catalog.
type Tier struct {
	// Key uniquely identifies the tier (e.g. "silver")
	Key string `json:"key" yaml:"key"`

	// Name is the display name
	Name string `json:"name" yaml:"name"`

	// Tagline is a short display label (e.g. "Growth")
	Tagline string `json:"tagline,omitempty" yaml:"tagline"`

	// MonthlyFee is the consultancy's monthly charge for this tier
	MonthlyFee float64 `json:"monthly_fee" yaml:"monthly_fee"`

	// OnboardingFee is the one-off setup charge. Display only.
	OnboardingFee float64 `json:"onboarding_fee,omitempty" yaml:"onboarding_fee"`

	// SpendCap is the maximum ad spend the tier is designed to support
	SpendCap float64 `json:"spend_cap" yaml:"spend_cap"`

	// Features lists what the tier includes. Display only.
	Features []string `json:"features,omitempty" yaml:"features"`
}

// CalculatorInput is one set of calculator inputs.
// Callers clamp values into range before handing them to the metrics engine.
type CalculatorInput struct {
	Spend               float64 `json:"spend"`
	ROAS                float64 `json:"roas"`
	GrossMarginFraction float64 `json:"gross_margin"`
	Fee                 float64 `json:"fee"`
}

// DerivedMetrics are the single-tier financial outcomes for one input
type DerivedMetrics struct {
	Revenue     float64 `json:"revenue"`
	GrossProfit float64 `json:"gross_profit"`
	NetAfterFee float64 `json:"net_after_fee"`

	// BreakevenROAS is absent when spend or margin is zero
	BreakevenROAS NullFloat `json:"breakeven_roas"`

	// ROIPercent is absent when spend is zero
	ROIPercent NullFloat `json:"roi_percent"`
}

// RowStatus classifies a comparison row for display
type RowStatus string

const (
	// StatusHighest marks the top tier when it is profitable
	StatusHighest RowStatus = "highest"

	// StatusProfitable marks a tier with non-negative net after fee
	StatusProfitable RowStatus = "profitable"

	// StatusImprove marks a tier losing money at the suggested spend
	StatusImprove RowStatus = "improve"
)

// Label returns the human-readable status label
func (s RowStatus) Label() string {
	switch s {
	case StatusHighest:
		return "Highest net"
	case StatusProfitable:
		return "Profitable"
	case StatusImprove:
		return "Improve ROAS/Margin"
	default:
		return ""
	}
}

// TierComparisonRow is one line of the tier comparison table
type TierComparisonRow struct {
	Tier           Tier      `json:"tier"`
	SuggestedSpend float64   `json:"suggested_spend"`
	Revenue        float64   `json:"revenue"`
	GrossProfit    float64   `json:"gross_profit"`
	NetAfterFee    float64   `json:"net_after_fee"`
	Status         RowStatus `json:"status,omitempty"`
}
