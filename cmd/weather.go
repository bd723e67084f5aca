package cmd

import (
	"github.com/greencure/greencure-cli/advisory"
	"github.com/spf13/cobra"
)

var weatherCmd = &cobra.Command{
	Use:   "weather",
	Short: "Get a weather-based farming advisory",
	Long:  `Describe the current weather and your crop's stage to get guidance on irrigation, spraying, and field work timing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := requestFromFlags(cmd, "location", "current-weather", "crop-stage")
		return runAdvisory(cmd, advisory.KindWeatherAdvisory, req)
	},
}

func init() {
	rootCmd.AddCommand(weatherCmd)

	weatherCmd.Flags().String("location", "", "Farm location")
	weatherCmd.Flags().String("current-weather", "", "Current weather conditions")
	weatherCmd.Flags().String("crop-stage", "", "Crop growth stage (sowing, vegetative, flowering, harvest)")
}
