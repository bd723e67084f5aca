package cmd

import (
	"time"

	"github.com/greencure/greencure-cli/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel string
	provider string
	model    string
	timeout  time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "greencure",
	Short: "GreenCure - AI-powered agricultural advisory",
	Long: `GreenCure is a CLI for farmers and extension workers that turns structured
field parameters into AI-generated advisories: crop recommendations, disease
diagnoses, soil analyses, weather advisories, and market analyses.
Run an interactive session to collect several advisories and aggregate them
into a farm report.`,
	// Errors are already surfaced with user-facing messages
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)

		if err := godotenv.Load(); err == nil {
			logger.Debug("Loaded environment from .env")
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommands are provided
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all subcommands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
	rootCmd.PersistentFlags().StringVarP(&provider, "provider", "p", "groq",
		"LLM provider to use (groq, openai, anthropic)")
	rootCmd.PersistentFlags().StringVarP(&model, "model", "m", "",
		"LLM model to use (provider default if empty)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second,
		"Timeout for each inference call")
}
