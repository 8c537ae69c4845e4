// Package cmd - tiers command
package cmd

import (
	"github.com/spf13/cobra"
)

var tiersFormat string

// tiersCmd lists the tier catalog
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List subscription tiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		formatter, err := formatterFor(tiersFormat)
		if err != nil {
			return err
		}
		return formatter.RenderTiers(cmd.OutOrStdout(), cat.Tiers())
	},
}

func init() {
	tiersCmd.Flags().StringVarP(&tiersFormat, "format", "f", "", "output format (cli, json, markdown)")
}
