package main

import (
	"github.com/spf13/cobra"

	"github.com/jasonthiese/commonmetadata/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration: the global config file merged with
environment overrides.

Config file: $XDG_CONFIG_HOME/matmeta/config.yml (default ~/.config/matmeta/config.yml)

  services:            # default target services
    - mdf
    - mc
  log_level: info      # debug, info, warn, error
  indent: "  "         # JSON output indent

Environment (also read from .env):
  MATMETA_SERVICES     comma-separated services, overrides the file
  MATMETA_LOG_LEVEL    overrides log_level`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	services, err := cfg.TargetServices()
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	names := make([]string, len(services))
	for i, s := range services {
		names[i] = string(s)
	}

	resp := ConfigResponse{
		Path:     config.GlobalConfigPath(),
		Services: names,
		LogLevel: cfg.LogLevel,
		Indent:   cfg.Indent,
	}
	if humanOutput {
		outputHuman("path:      %s\n", resp.Path)
		outputHuman("services:  %v\n", resp.Services)
		outputHuman("log_level: %s\n", resp.LogLevel)
		outputHuman("indent:    %q\n", resp.Indent)
		return nil
	}
	return outputJSON(resp)
}
