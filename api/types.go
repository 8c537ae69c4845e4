// Package api - API types for the ROAS calculator
// These types define the contract for the calculator endpoints.
// API is stateless, idempotent, and deterministic.
package api

import (
	"time"

	"roas-calculator/core/engine"
	"roas-calculator/core/metrics"
	"roas-calculator/core/types"
	"roas-calculator/internal/errors"
)

// MetricsRequest is the input to POST /metrics
type MetricsRequest struct {
	// Tier key; empty selects the default tier
	Tier string `json:"tier"`

	// Monthly ad spend
	Spend float64 `json:"spend"`

	// Target ROAS multiplier
	ROAS float64 `json:"roas"`

	// Margin as a 0-100 percentage (what the site form collects)
	GrossMarginPercent *float64 `json:"gross_margin_percent,omitempty"`

	// Margin as a 0-1 fraction
	GrossMargin *float64 `json:"gross_margin,omitempty"`

	// Replaces the tier fee when set
	FeeOverride *float64 `json:"fee_override,omitempty"`
}

// ComparisonRequest is the input to POST /comparison
type ComparisonRequest struct {
	ROAS               float64  `json:"roas"`
	GrossMarginPercent *float64 `json:"gross_margin_percent,omitempty"`
	GrossMargin        *float64 `json:"gross_margin,omitempty"`
}

// MetricsResponse is the output of POST /metrics
type MetricsResponse struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`

	*engine.Report

	// Display holds the values preformatted for rendering
	Display DisplayMetrics `json:"display"`

	DurationMs int64 `json:"duration_ms"`
}

// DisplayMetrics are the selected-tier metrics as display strings
type DisplayMetrics struct {
	Revenue       string `json:"revenue"`
	GrossProfit   string `json:"gross_profit"`
	Fee           string `json:"fee"`
	NetAfterFee   string `json:"net_after_fee"`
	BreakevenROAS string `json:"breakeven_roas"`
	ROIPercent    string `json:"roi_percent"`
}

// ComparisonResponse is the output of POST /comparison
type ComparisonResponse struct {
	RequestID   string                    `json:"request_id"`
	Timestamp   time.Time                 `json:"timestamp"`
	Currency    types.Currency            `json:"currency"`
	Comparison  []types.TierComparisonRow `json:"comparison"`
	Assumptions []string                  `json:"assumptions"`
}

// TiersResponse is the output of GET /tiers
type TiersResponse struct {
	RequestID string         `json:"request_id"`
	Currency  types.Currency `json:"currency"`
	Tiers     []types.Tier   `json:"tiers"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	RequestID string      `json:"request_id"`
	Error     ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// toEngine converts the request into an engine request
func (r *MetricsRequest) toEngine() (engine.Request, error) {
	margin, err := resolveMargin(r.GrossMarginPercent, r.GrossMargin)
	if err != nil {
		return engine.Request{}, err
	}
	return engine.Request{
		TierKey:     r.Tier,
		Spend:       r.Spend,
		ROAS:        r.ROAS,
		GrossMargin: margin,
		FeeOverride: r.FeeOverride,
	}, nil
}

// resolveMargin accepts exactly one of percent or fraction
func resolveMargin(percent, fraction *float64) (float64, error) {
	switch {
	case percent != nil && fraction != nil:
		return 0, errors.Input("set only one of gross_margin_percent and gross_margin")
	case percent != nil:
		return metrics.MarginFromPercent(*percent), nil
	case fraction != nil:
		return *fraction, nil
	default:
		return 0, errors.Input("gross_margin_percent or gross_margin is required")
	}
}
