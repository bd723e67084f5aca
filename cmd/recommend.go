package cmd

import (
	"github.com/greencure/greencure-cli/advisory"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a crop for your conditions",
	Long:  `Ask for the single most suitable crop given your location, soil type, season, and farm size.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := requestFromFlags(cmd, "location", "soil-type", "season", "farm-size")
		return runAdvisory(cmd, advisory.KindCropRecommendation, req)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().String("location", "", "Farm location (district or region)")
	recommendCmd.Flags().String("soil-type", "", "Soil type (e.g. loamy, clay, black cotton)")
	recommendCmd.Flags().String("season", "", "Planting season (e.g. kharif, rabi, zaid)")
	recommendCmd.Flags().String("farm-size", "", "Farm size (e.g. 2 acres)")
}
