package cmd

import (
	"github.com/greencure/greencure-cli/advisory"
	"github.com/spf13/cobra"
)

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "Analyze market conditions for a crop",
	Long:  `Get current prices, the price trend, demand status, and selling tips for a crop and quantity.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := requestFromFlags(cmd, "crop", "location", "quantity")
		return runAdvisory(cmd, advisory.KindMarketAnalysis, req)
	},
}

func init() {
	rootCmd.AddCommand(marketCmd)

	marketCmd.Flags().String("crop", "", "Crop to analyze")
	marketCmd.Flags().String("location", "", "Market location")
	marketCmd.Flags().String("quantity", "", "Quantity to sell (e.g. 10 quintals)")
}
