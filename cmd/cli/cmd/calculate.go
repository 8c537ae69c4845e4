// Package cmd - calculate command
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roas-calculator/core/engine"
	"roas-calculator/core/metrics"
	"roas-calculator/core/types"
	"roas-calculator/internal/config"
	"roas-calculator/internal/logging"
)

var (
	calcTier   string
	calcSpend  float64
	calcROAS   float64
	calcMargin float64
	calcFee    float64
	calcFormat string
)

// calculateCmd computes metrics for one tier
var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Compute profitability for one tier",
	Long: `Compute revenue, gross profit, net after fee, breakeven ROAS and ROI
for the selected tier, followed by the tier comparison.

Unset flags fall back to the calculator defaults in the config file.

Examples:
  roas calculate --tier gold --spend 4000 --roas 3.2 --margin 55
  roas calculate --tier silver --fee 500 --format json`,
	Args: cobra.NoArgs,
	RunE: runCalculate,
}

func init() {
	calculateCmd.Flags().StringVarP(&calcTier, "tier", "t", "", "tier key (default from config)")
	calculateCmd.Flags().Float64VarP(&calcSpend, "spend", "s", 0, "monthly ad spend")
	calculateCmd.Flags().Float64VarP(&calcROAS, "roas", "r", 0, "target ROAS multiplier")
	calculateCmd.Flags().Float64VarP(&calcMargin, "margin", "m", 0, "gross margin percent (0-100)")
	calculateCmd.Flags().Float64Var(&calcFee, "fee", 0, "override the tier's monthly fee")
	calculateCmd.Flags().StringVarP(&calcFormat, "format", "f", "", "output format (cli, json, markdown)")
}

func runCalculate(cmd *cobra.Command, args []string) error {
	defaults := config.Get().Calculator
	flags := cmd.Flags()

	req := engine.Request{
		TierKey:     defaults.DefaultTier,
		Spend:       defaults.Spend,
		ROAS:        defaults.ROAS,
		GrossMargin: metrics.MarginFromPercent(defaults.MarginPercent),
	}
	if flags.Changed("tier") {
		req.TierKey = calcTier
	}
	if flags.Changed("spend") {
		req.Spend = calcSpend
	}
	if flags.Changed("roas") {
		req.ROAS = calcROAS
	}
	if flags.Changed("margin") {
		req.GrossMargin = metrics.MarginFromPercent(calcMargin)
		if !(calcMargin >= 0 && calcMargin <= 100) {
			logging.Warn("gross margin adjusted",
				zap.Float64("requested_percent", calcMargin),
				zap.Float64("used_percent", req.GrossMargin*100),
			)
		}
	}
	if flags.Changed("fee") {
		fee := calcFee
		req.FeeOverride = &fee
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	formatter, err := formatterFor(calcFormat)
	if err != nil {
		return err
	}

	report, err := eng.Evaluate(cmd.Context(), req)
	if err != nil {
		return err
	}
	warnAdjusted(req, report.Input)
	return formatter.RenderReport(cmd.OutOrStdout(), report)
}

// warnAdjusted reports inputs the engine clamped into range
func warnAdjusted(req engine.Request, in types.CalculatorInput) {
	if in.Spend != req.Spend {
		logging.Warn("spend adjusted", zap.Float64("requested", req.Spend), zap.Float64("used", in.Spend))
	}
	if in.ROAS != req.ROAS {
		logging.Warn("roas adjusted", zap.Float64("requested", req.ROAS), zap.Float64("used", in.ROAS))
	}
}
