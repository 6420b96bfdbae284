package repository

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"kpiforecast/internal/domain"
	"kpiforecast/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadForecastRepository(t *testing.T) {
	repo, err := LoadForecastRepository(filepath.Join("testdata", "predictions.csv"))
	require.NoError(t, err)

	t.Run("series in order of appearance", func(t *testing.T) {
		require.Equal(t, []string{"Units Sold", "Revenue"}, repo.ListSeries())
	})

	t.Run("rows by series are chronological", func(t *testing.T) {
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.ForecastRow{
					{SeriesName: "Revenue", Timestamp: util.NewDate(2024, 1, 1), PredictedValue: 5000},
					{SeriesName: "Revenue", Timestamp: util.NewDate(2024, 2, 1), PredictedValue: 5200},
				},
				repo.ListBySeries("Revenue"),
			),
		)
	})

	t.Run("periods sorted and unique", func(t *testing.T) {
		require.Equal(
			t,
			[]time.Time{
				util.NewDate(2024, 1, 1),
				util.NewDate(2024, 2, 1),
				util.NewDate(2024, 3, 1),
				util.NewDate(2024, 4, 1),
			},
			repo.ListPeriods(),
		)
	})

	t.Run("list returns a copy", func(t *testing.T) {
		rows := repo.List()
		require.Len(t, rows, 6)
		rows[0].PredictedValue = -1
		require.Equal(t, float64(100), repo.List()[0].PredictedValue)
	})

	t.Run("unknown series", func(t *testing.T) {
		require.Empty(t, repo.ListBySeries("Parts Revenue"))
	})
}

func TestParseForecasts(t *testing.T) {
	t.Run("month periods", func(t *testing.T) {
		rows, err := ParseForecasts(strings.NewReader("english_name,ds,y_hat\nUnits Sold,2024-02,110\n"))
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2024, 2, 1), rows[0].Timestamp)
	})

	t.Run("bad value", func(t *testing.T) {
		_, err := ParseForecasts(strings.NewReader("english_name,ds,y_hat\nUnits Sold,2024-02-01,abc\n"))
		require.ErrorContains(t, err, "line 2: invalid y_hat")
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := ParseForecasts(strings.NewReader("english_name,ds,y_hat\nUnits Sold,2024-02-01,\n"))
		require.Error(t, err)
	})

	t.Run("bad period", func(t *testing.T) {
		_, err := ParseForecasts(strings.NewReader("english_name,ds,y_hat\nUnits Sold,Feb,1\n"))
		require.ErrorContains(t, err, "invalid period")
	})

	t.Run("missing series name", func(t *testing.T) {
		_, err := ParseForecasts(strings.NewReader("english_name,ds,y_hat\n,2024-02-01,1\n"))
		require.ErrorContains(t, err, "missing english_name")
	})
}

func TestNewForecastRepository_duplicates(t *testing.T) {
	_, err := NewForecastRepository([]domain.ForecastRow{
		{SeriesName: "Units Sold", Timestamp: util.NewDate(2024, 1, 1), PredictedValue: 1},
		{SeriesName: "Units Sold", Timestamp: util.NewDate(2024, 1, 1), PredictedValue: 2},
	})
	require.ErrorContains(t, err, "duplicate forecast")
}
