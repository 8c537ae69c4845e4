// Package engine is the calculator's single entry point.
// CLI and HTTP are thin wrappers around it: they collect raw inputs, the
// engine clamps them, resolves the tier and runs the pure metrics functions.
package engine

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"roas-calculator/core/catalog"
	"roas-calculator/core/metrics"
	"roas-calculator/core/types"
	"roas-calculator/internal/errors"
	"roas-calculator/internal/logging"
)

// Request is one raw calculator interaction
type Request struct {
	// TierKey selects the tier; empty selects the catalog default
	TierKey string `json:"tier"`

	// Spend is the monthly ad spend
	Spend float64 `json:"spend"`

	// ROAS is the target return on ad spend multiplier
	ROAS float64 `json:"roas"`

	// GrossMargin is the margin as a fraction in [0, 1]
	GrossMargin float64 `json:"gross_margin"`

	// FeeOverride replaces the tier's monthly fee when set
	FeeOverride *float64 `json:"fee_override,omitempty"`
}

// Report is everything the presentation layer shows for one interaction
type Report struct {
	Tier        types.Tier                `json:"tier"`
	Input       types.CalculatorInput     `json:"input"`
	Metrics     types.DerivedMetrics      `json:"metrics"`
	Comparison  []types.TierComparisonRow `json:"comparison"`
	Currency    types.Currency            `json:"currency"`
	Assumptions []string                  `json:"assumptions,omitempty"`
}

// ComparisonAssumption explains how suggested spends are chosen
const ComparisonAssumption = "Spends assume 80% of each tier's cap or +25% above breakeven, whichever is higher."

// Engine evaluates calculator requests against one catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog  *catalog.Catalog
	currency types.Currency
	logger   *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine logger
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCurrency sets the currency reported alongside results
func WithCurrency(c types.Currency) Option {
	return func(e *Engine) {
		e.currency = c
	}
}

// New creates an engine over a validated catalog
func New(cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog:  cat,
		currency: types.CurrencyEUR,
		logger:   logging.Named("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the engine's catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Currency returns the reporting currency
func (e *Engine) Currency() types.Currency {
	return e.currency
}

// Evaluate computes selected-tier metrics and the tier comparison
func (e *Engine) Evaluate(ctx context.Context, req Request) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled(err)
	}

	tier, err := e.resolveTier(req.TierKey)
	if err != nil {
		return nil, err
	}

	fee := tier.MonthlyFee
	if req.FeeOverride != nil {
		fee = *req.FeeOverride
	}

	input := metrics.ClampInput(types.CalculatorInput{
		Spend:               req.Spend,
		ROAS:                req.ROAS,
		GrossMarginFraction: req.GrossMargin,
		Fee:                 fee,
	})

	report := &Report{
		Tier:        tier,
		Input:       input,
		Metrics:     metrics.Compute(input),
		Comparison:  e.compare(input.ROAS, input.GrossMarginFraction),
		Currency:    e.currency,
		Assumptions: []string{ComparisonAssumption},
	}
	if err := checkReport(report); err != nil {
		return nil, err
	}

	e.logger.Debug("evaluated calculator request",
		zap.String("tier", tier.Key),
		zap.Float64("spend", input.Spend),
		zap.Float64("roas", input.ROAS),
		zap.Float64("gross_margin", input.GrossMarginFraction),
		zap.Float64("net_after_fee", report.Metrics.NetAfterFee),
	)

	return report, nil
}

// Compare builds the classified tier comparison for raw ROAS and margin
func (e *Engine) Compare(ctx context.Context, roas, grossMargin float64) ([]types.TierComparisonRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled(err)
	}

	in := metrics.ClampInput(types.CalculatorInput{ROAS: roas, GrossMarginFraction: grossMargin})
	rows := e.compare(in.ROAS, in.GrossMarginFraction)
	if err := checkRows(rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (e *Engine) compare(roas, grossMargin float64) []types.TierComparisonRow {
	rows := metrics.Classify(metrics.BuildComparison(e.catalog.Tiers(), roas, grossMargin))

	for i := 1; i < len(rows); i++ {
		if rows[i].NetAfterFee <= rows[i-1].NetAfterFee {
			e.logger.Warn("tier comparison not monotonic after repair",
				zap.String("tier", rows[i].Tier.Key),
				zap.String("previous", rows[i-1].Tier.Key),
			)
		}
	}
	return rows
}

func (e *Engine) resolveTier(key string) (types.Tier, error) {
	if key == "" {
		return e.catalog.DefaultTier(), nil
	}
	tier, err := e.catalog.Lookup(key)
	if err != nil {
		return types.Tier{}, fmt.Errorf("resolve tier: %w", err)
	}
	return tier, nil
}

// checkReport rejects inputs large enough to overflow float64.
// Spend, fee and every derived amount must be finite.
func checkReport(r *Report) error {
	values := []struct {
		field string
		value float64
	}{
		{"spend", r.Input.Spend},
		{"roas", r.Input.ROAS},
		{"fee", r.Input.Fee},
		{"revenue", r.Metrics.Revenue},
		{"gross_profit", r.Metrics.GrossProfit},
		{"net_after_fee", r.Metrics.NetAfterFee},
	}
	for _, v := range values {
		if !finite(v.value) {
			return overflow(v.field)
		}
	}
	if f, ok := r.Metrics.BreakevenROAS.Get(); ok && !finite(f) {
		return overflow("breakeven_roas")
	}
	if f, ok := r.Metrics.ROIPercent.Get(); ok && !finite(f) {
		return overflow("roi_percent")
	}
	return checkRows(r.Comparison)
}

func checkRows(rows []types.TierComparisonRow) error {
	for _, row := range rows {
		if !finite(row.Revenue) || !finite(row.GrossProfit) || !finite(row.NetAfterFee) {
			return overflow("comparison").WithContext("tier", row.Tier.Key)
		}
	}
	return nil
}

func overflow(field string) *errors.Error {
	return errors.Newf(errors.TypeInput, "%s is not a finite number; inputs are too large", field).
		WithContext("field", field)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
