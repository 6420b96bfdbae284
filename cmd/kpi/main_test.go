package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"kpiforecast/internal/domain"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join("testdata", "config.yaml")))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeriesCommand(t *testing.T) {
	out, err := execute(t, "series")
	require.NoError(t, err)

	series := []string{}
	require.NoError(t, json.Unmarshal([]byte(out), &series))
	require.Equal(t, []string{"Units Sold", "Revenue"}, series)
}

func TestScenarioCommand(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		out, err := execute(t, "scenario", "--series", "Units Sold", "--period", "2024-02", "--change", "10")
		require.NoError(t, err)

		result := domain.ScenarioResult{}
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.Len(t, result.AdjustedRows, 3)
		require.Equal(t, float64(121), result.AdjustedRows[0].PredictedValue)
		require.Equal(t, float64(143), result.AdjustedRows[2].PredictedValue)
		require.NotEmpty(t, result.ImpactedSeries)
		for _, s := range result.ImpactedSeries {
			require.NotEqual(t, "Units Sold", s.SeriesName)
		}
	})

	t.Run("unknown period", func(t *testing.T) {
		_, err := execute(t, "scenario", "--series", "Units Sold", "--period", "2030-01", "--change", "10")
		require.ErrorContains(t, err, "not found in predictions")
	})
}

func TestForecastCommand(t *testing.T) {
	_, err := execute(t, "forecast", "Warranty Claims")
	require.ErrorContains(t, err, "no forecast rows")
}
