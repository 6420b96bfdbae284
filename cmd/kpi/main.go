// Command kpi runs dashboard queries and what-if scenarios from a terminal,
// printing the same JSON shapes the API serves.
package main

import (
	"context"
	"fmt"
	"os"

	"kpiforecast/api"
	"kpiforecast/cmd"
	"kpiforecast/internal/util"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "kpi",
	Short:         "Query KPI forecasts and run what-if scenarios",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config YAML (defaults to KPI_CONFIG / KPI_ENV lookup)")

	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(periodsCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(accuracyCmd)
	rootCmd.AddCommand(correlationsCmd)
	rootCmd.AddCommand(scenarioCmd)
}

// loadHandler wires services from --config, or from the environment when
// the flag is unset.
func loadHandler() (*api.ApiHandler, error) {
	if err := cmd.LoadEnv(); err != nil {
		return nil, err
	}

	var (
		config *util.Config
		err    error
	)
	if configPath != "" {
		config, err = util.LoadConfigFile(configPath)
	} else {
		config, err = util.LoadConfig()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cmd.InitializeDependenciesFromConfig(*config)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
