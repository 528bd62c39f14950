// Package main provides the matmeta CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jasonthiese/commonmetadata/internal/config"
	"github.com/jasonthiese/commonmetadata/internal/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool
	// verbose enables debug logging
	verbose bool
	// logger is built from the global config before any command runs
	logger = zap.NewNop()
)

func main() {
	defer func() { _ = logger.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "matmeta",
	Short: "Map a common dataset record to publication service payloads",
	Long: `matmeta turns one common description of a research dataset (title,
source, contacts, licenses, citations) into the metadata payloads of:

  - Citrine (PIF system)
  - Materials Data Facility (mdf/dc envelope)
  - Materials Commons (project name and description)

Records are read from JSON or YAML files. All commands output JSON by
default; use --human for human-readable output.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	// Load .env file if present (for MATMETA_* overrides)
	config.LoadEnv()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.Version = Version
}

// setupLogger builds the logger from the global config and --verbose.
func setupLogger(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	l, err := logging.New(level, os.Stderr)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	logger = l
	return nil
}

// mustLoadConfig loads the global configuration, exits on error.
func mustLoadConfig() *config.GlobalConfig {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	return cfg
}
