// Package cmd - compare command
package cmd

import (
	"github.com/spf13/cobra"

	"roas-calculator/core/metrics"
	"roas-calculator/internal/config"
)

var (
	compareROAS   float64
	compareMargin float64
	compareFormat string
)

// compareCmd prints the tier comparison
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare every tier at a suggested spend",
	Long: `Compare net profit across all tiers. Each tier is shown at 80% of its
spend cap or 25% above breakeven, whichever is higher, then nudged upward so
pricier tiers earn more where the cap allows.

Examples:
  roas compare --roas 3 --margin 60
  roas compare --roas 1.5 --margin 30 --format markdown`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().Float64VarP(&compareROAS, "roas", "r", 0, "target ROAS multiplier")
	compareCmd.Flags().Float64VarP(&compareMargin, "margin", "m", 0, "gross margin percent (0-100)")
	compareCmd.Flags().StringVarP(&compareFormat, "format", "f", "", "output format (cli, json, markdown)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	defaults := config.Get().Calculator
	roas, margin := defaults.ROAS, defaults.MarginPercent
	if cmd.Flags().Changed("roas") {
		roas = compareROAS
	}
	if cmd.Flags().Changed("margin") {
		margin = compareMargin
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	formatter, err := formatterFor(compareFormat)
	if err != nil {
		return err
	}

	rows, err := eng.Compare(cmd.Context(), roas, metrics.MarginFromPercent(margin))
	if err != nil {
		return err
	}
	return formatter.RenderComparison(cmd.OutOrStdout(), rows)
}
