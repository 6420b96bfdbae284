package repository

import (
	"path/filepath"
	"strings"
	"testing"

	"kpiforecast/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestLoadAccuracyRepository(t *testing.T) {
	repo, err := LoadAccuracyRepository(filepath.Join("testdata", "accuracy.csv"))
	require.NoError(t, err)

	require.Equal(t, []domain.AccuracyRow{
		{SeriesName: "Units Sold", Mape: 4.5},
		{SeriesName: "Revenue", Mape: 12.25},
		{SeriesName: "Service Hours", Mape: 7},
	}, repo.List())
}

func TestParseAccuracy(t *testing.T) {
	t.Run("bad mape", func(t *testing.T) {
		_, err := ParseAccuracy(strings.NewReader("english_name,MAPE\nRevenue,n/a\n"))
		require.ErrorContains(t, err, "invalid MAPE")
	})

	t.Run("duplicate series", func(t *testing.T) {
		_, err := NewAccuracyRepository([]domain.AccuracyRow{
			{SeriesName: "Revenue", Mape: 1},
			{SeriesName: "Revenue", Mape: 2},
		})
		require.ErrorContains(t, err, "duplicate accuracy row")
	})
}
