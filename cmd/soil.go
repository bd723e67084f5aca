package cmd

import (
	"github.com/greencure/greencure-cli/advisory"
	"github.com/spf13/cobra"
)

var soilCmd = &cobra.Command{
	Use:   "soil",
	Short: "Analyze soil parameters",
	Long:  `Submit pH, organic matter level, and drainage quality to get a soil analysis with improvement suggestions and suitable crops.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := requestFromFlags(cmd, "ph", "organic-matter", "drainage", "region")
		return runAdvisory(cmd, advisory.KindSoilAnalysis, req)
	},
}

func init() {
	rootCmd.AddCommand(soilCmd)

	soilCmd.Flags().String("ph", "", "Soil pH (1-14)")
	soilCmd.Flags().String("organic-matter", "", "Organic matter level (low, medium, high)")
	soilCmd.Flags().String("drainage", "", "Drainage quality (poor, moderate, good)")
	soilCmd.Flags().String("region", "", "Growing region")
}
