package main

import (
	"os"

	"github.com/greencure/greencure-cli/cmd"
	"github.com/greencure/greencure-cli/logger"
)

func main() {
	defer logger.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
