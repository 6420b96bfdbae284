package main

import (
	"fmt"

	"kpiforecast/internal/util"

	"github.com/spf13/cobra"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "List forecast series",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := loadHandler()
		if err != nil {
			return err
		}
		return util.Pprint(c.OutOrStdout(), handler.DashboardService.ListSeries(c.Context()))
	},
}

var periodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "List forecast periods",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := loadHandler()
		if err != nil {
			return err
		}
		out := []string{}
		for _, p := range handler.DashboardService.ListPeriods(c.Context()) {
			out = append(out, util.FormatPeriod(p))
		}
		return util.Pprint(c.OutOrStdout(), out)
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast <series>",
	Short: "Print the forecast of one series",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := loadHandler()
		if err != nil {
			return err
		}
		rows, err := handler.DashboardService.GetForecast(c.Context(), args[0])
		if err != nil {
			return err
		}
		return util.Pprint(c.OutOrStdout(), rows)
	},
}

var accuracyCmd = &cobra.Command{
	Use:   "accuracy",
	Short: "Summarize forecast accuracy (MAPE distribution, best and worst series)",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := loadHandler()
		if err != nil {
			return err
		}
		summary, err := handler.DashboardService.GetAccuracySummary(c.Context())
		if err != nil {
			return err
		}
		return util.Pprint(c.OutOrStdout(), summary)
	},
}

var correlationsCmd = &cobra.Command{
	Use:   "correlations",
	Short: "Print the feature correlation matrix",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := loadHandler()
		if err != nil {
			return err
		}
		matrix := handler.DashboardService.GetCorrelationMatrix(c.Context())
		if len(matrix.Columns) == 0 {
			return fmt.Errorf("no numeric columns found in feature matrix")
		}
		return util.Pprint(c.OutOrStdout(), map[string]interface{}{
			"columns": matrix.Columns,
			"values":  matrix.NullableValues(),
		})
	},
}
