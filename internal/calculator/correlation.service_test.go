package calculator

import (
	"math"
	"testing"

	"kpiforecast/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCorrelation(t *testing.T) {
	t.Run("perfect positive", func(t *testing.T) {
		corr, ok := Correlation([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
		require.True(t, ok)
		require.InDelta(t, 1, corr, 1e-12)
	})

	t.Run("perfect negative", func(t *testing.T) {
		corr, ok := Correlation([]float64{1, 2, 3, 4}, []float64{8, 6, 4, 2})
		require.True(t, ok)
		require.InDelta(t, -1, corr, 1e-12)
	})

	t.Run("missing values dropped pairwise", func(t *testing.T) {
		corr, ok := Correlation(
			[]float64{1, 2, math.NaN(), 4},
			[]float64{1, 2, 100, 4},
		)
		require.True(t, ok)
		require.InDelta(t, 1, corr, 1e-12)
	})

	t.Run("zero variance is undefined", func(t *testing.T) {
		_, ok := Correlation([]float64{1, 2, 3}, []float64{5, 5, 5})
		require.False(t, ok)
	})

	t.Run("single pair is undefined", func(t *testing.T) {
		_, ok := Correlation([]float64{1, math.NaN()}, []float64{1, 2})
		require.False(t, ok)
	})
}

func TestCorrelationMatrix(t *testing.T) {
	m := domain.FeatureMatrix{
		Columns: []domain.FeatureColumn{
			{Name: "Units Sold", Values: []float64{1, 2, 3, 4}},
			{Name: "Revenue", Values: []float64{2, 4, 6, 9}},
			{Name: "Flat", Values: []float64{1, 1, 1, 1}},
			{Name: "Dropped", Values: []float64{4, 3, 2, 1}},
		},
	}

	out := CorrelationMatrix(m, 3)
	require.Equal(t, []string{"Units Sold", "Revenue", "Flat"}, out.Columns)

	for i := range out.Columns {
		require.Equal(t, float64(1), out.Values[i][i])
		for j := range out.Columns {
			a, b := out.Values[i][j], out.Values[j][i]
			if math.IsNaN(a) {
				require.True(t, math.IsNaN(b))
				continue
			}
			require.Equal(t, a, b)
		}
	}

	_, ok := out.Get("Units Sold", "Flat")
	require.False(t, ok)

	corr, ok := out.Get("Revenue", "Units Sold")
	require.True(t, ok)
	require.Greater(t, corr, 0.9)
}
