package main

import (
	"kpiforecast/internal/service"
	"kpiforecast/internal/util"

	"github.com/spf13/cobra"
)

var (
	scenarioSeries string
	scenarioPeriod string
	scenarioChange float64
)

var scenarioCmd = &cobra.Command{
	Use:     "scenario",
	Short:   "Apply a percentage change to a series and estimate the effect on correlated series",
	Example: `  kpi scenario --series "Units Sold" --period 2024-02 --change 10`,
	Args:    cobra.NoArgs,
	RunE:    runScenario,
}

func init() {
	scenarioCmd.Flags().StringVar(&scenarioSeries, "series", "", "series to change")
	scenarioCmd.Flags().StringVar(&scenarioPeriod, "period", "", "anchor period, YYYY-MM-DD or YYYY-MM")
	scenarioCmd.Flags().Float64Var(&scenarioChange, "change", 0, "percentage change to apply")
	_ = scenarioCmd.MarkFlagRequired("series")
	_ = scenarioCmd.MarkFlagRequired("period")
}

func runScenario(c *cobra.Command, args []string) error {
	period, err := util.ParsePeriod(scenarioPeriod)
	if err != nil {
		return err
	}

	handler, err := loadHandler()
	if err != nil {
		return err
	}

	result, err := handler.ScenarioService.Run(c.Context(), service.ScenarioInput{
		Series:    scenarioSeries,
		Period:    period,
		PctChange: scenarioChange,
	})
	if err != nil {
		return err
	}

	return util.Pprint(c.OutOrStdout(), result)
}
