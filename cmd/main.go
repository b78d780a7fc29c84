package main

import (
	"fmt"
	"os"

	"github.com/stockwellness/stockwellness/internal/cli"
	"github.com/stockwellness/stockwellness/internal/logger"
)

func main() {
	if err := logger.InitWithConfig(logger.LoadConfigFromEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	rootCmd := cli.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
