package cmd

import (
	"github.com/greencure/greencure-cli/advisory"
	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose",
	Short: "Diagnose a crop disease from symptoms",
	Long:  `Describe the crop, the observed symptoms, and the region to get a likely diagnosis with treatment and prevention steps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := requestFromFlags(cmd, "crop", "symptoms", "region")
		return runAdvisory(cmd, advisory.KindDiseaseDiagnosis, req)
	},
}

func init() {
	rootCmd.AddCommand(diagnoseCmd)

	diagnoseCmd.Flags().String("crop", "", "Affected crop")
	diagnoseCmd.Flags().String("symptoms", "", "Observed symptoms (leaf spots, wilting, ...)")
	diagnoseCmd.Flags().String("region", "", "Growing region")
}
