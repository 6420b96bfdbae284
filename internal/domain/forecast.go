package domain

import (
	"math"
	"time"
)

type ForecastRow struct {
	SeriesName     string    `json:"seriesName"`
	Timestamp      time.Time `json:"timestamp"`
	PredictedValue float64   `json:"predictedValue"`
}

type AccuracyRow struct {
	SeriesName string  `json:"seriesName"`
	Mape       float64 `json:"mape"`
}

// FeatureColumn holds one numeric column of the feature matrix. Absent
// observations are stored as NaN.
type FeatureColumn struct {
	Name   string
	Values []float64
}

// FeatureMatrix is a column-ordered numeric table, one row per observation
// period. All columns have the same length.
type FeatureMatrix struct {
	Columns []FeatureColumn
}

func (m FeatureMatrix) NumRows() int {
	if len(m.Columns) == 0 {
		return 0
	}
	return len(m.Columns[0].Values)
}

func (m FeatureMatrix) ColumnNames() []string {
	names := make([]string, 0, len(m.Columns))
	for _, c := range m.Columns {
		names = append(names, c.Name)
	}
	return names
}

func (m FeatureMatrix) Column(name string) (FeatureColumn, bool) {
	for _, c := range m.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return FeatureColumn{}, false
}

// DeepCopy returns a matrix that shares no backing arrays with m.
func (m FeatureMatrix) DeepCopy() FeatureMatrix {
	out := FeatureMatrix{
		Columns: make([]FeatureColumn, 0, len(m.Columns)),
	}
	for _, c := range m.Columns {
		values := make([]float64, len(c.Values))
		copy(values, c.Values)
		out.Columns = append(out.Columns, FeatureColumn{
			Name:   c.Name,
			Values: values,
		})
	}
	return out
}

// CorrelationMatrix is symmetric with a unit diagonal. Undefined cells are NaN.
type CorrelationMatrix struct {
	Columns []string
	Values  [][]float64
}

func (m CorrelationMatrix) Get(a, b string) (float64, bool) {
	i, j := -1, -1
	for x, c := range m.Columns {
		if c == a {
			i = x
		}
		if c == b {
			j = x
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	v := m.Values[i][j]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ImpactedSeries is the correlation proxy estimate for one related series:
// EstimatedPctChange = Correlation * the scenario's percentage change. It is
// a linear approximation with no causal or statistical validation.
type ImpactedSeries struct {
	SeriesName         string  `json:"seriesName"`
	Correlation        float64 `json:"correlation"`
	EstimatedPctChange float64 `json:"estimatedPctChange"`
}

// ForecastAdjustment is the output of applying a percentage change to one
// series at an anchor period.
type ForecastAdjustment struct {
	// rows in the affected span, after the multiplier
	AdjustedRows []ForecastRow
	// rendering window around the anchor, drawn from the adjusted series
	Window []ForecastRow
	// same window before any adjustment
	BaselineWindow []ForecastRow
}

type ScenarioResult struct {
	Series         string           `json:"series"`
	Period         time.Time        `json:"period"`
	PctChange      float64          `json:"pctChange"`
	ImpactedSeries []ImpactedSeries `json:"impactedSeries"`
	AdjustedRows   []ForecastRow    `json:"adjustedRows"`
	AdjustedWindow []ForecastRow    `json:"adjustedWindow"`
	BaselineWindow []ForecastRow    `json:"baselineWindow"`
}

// NullableValues returns Values with undefined cells as nil, ready for JSON.
func (m CorrelationMatrix) NullableValues() [][]*float64 {
	out := make([][]*float64, 0, len(m.Values))
	for _, row := range m.Values {
		values := make([]*float64, 0, len(row))
		for _, v := range row {
			if math.IsNaN(v) {
				values = append(values, nil)
				continue
			}
			v := v
			values = append(values, &v)
		}
		out = append(out, values)
	}
	return out
}
