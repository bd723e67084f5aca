package cmd

import (
	"fmt"

	"github.com/greencure/greencure-cli/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of the GreenCure CLI`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("GreenCure CLI v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
