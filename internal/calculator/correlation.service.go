package calculator

import (
	"math"

	"kpiforecast/internal/domain"

	"github.com/montanaflynn/stats"
)

// Correlation is the Pearson correlation of x and y over pairwise complete
// observations (NaN on either side drops the pair). ok is false when the
// coefficient is undefined: fewer than two pairs, or no variance on a side.
func Correlation(x, y []float64) (corr float64, ok bool) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	if len(xs) < 2 {
		return 0, false
	}

	sdx, err := stats.StandardDeviationPopulation(xs)
	if err != nil || sdx == 0 {
		return 0, false
	}
	sdy, err := stats.StandardDeviationPopulation(ys)
	if err != nil || sdy == 0 {
		return 0, false
	}

	corr, err = stats.Correlation(xs, ys)
	if err != nil || math.IsNaN(corr) {
		return 0, false
	}

	// float error can push a perfect fit just past 1
	return math.Max(-1, math.Min(1, corr)), true
}

// CorrelationMatrix computes the full matrix over the first maxColumns
// columns of m. Undefined cells are NaN.
func CorrelationMatrix(m domain.FeatureMatrix, maxColumns int) domain.CorrelationMatrix {
	columns := m.Columns
	if maxColumns >= 0 && len(columns) > maxColumns {
		columns = columns[:maxColumns]
	}

	out := domain.CorrelationMatrix{
		Columns: make([]string, len(columns)),
		Values:  make([][]float64, len(columns)),
	}
	for i, c := range columns {
		out.Columns[i] = c.Name
		out.Values[i] = make([]float64, len(columns))
	}

	for i := range columns {
		out.Values[i][i] = 1
		for j := i + 1; j < len(columns); j++ {
			corr, ok := Correlation(columns[i].Values, columns[j].Values)
			if !ok {
				corr = math.NaN()
			}
			out.Values[i][j] = corr
			out.Values[j][i] = corr
		}
	}

	return out
}
