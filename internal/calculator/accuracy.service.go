package calculator

import (
	"fmt"
	"sort"

	"kpiforecast/internal/domain"

	"github.com/montanaflynn/stats"
)

type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

type BoxSummary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

type AccuracySummary struct {
	Count     int                  `json:"count"`
	Histogram []HistogramBin       `json:"histogram"`
	Box       BoxSummary           `json:"box"`
	Best      []domain.AccuracyRow `json:"best"`
	Worst     []domain.AccuracyRow `json:"worst"`
}

// SummarizeAccuracy builds the MAPE distribution and the best/worst
// rankings. Ties keep input order.
func SummarizeAccuracy(rows []domain.AccuracyRow, bins int, rankSize int) (*AccuracySummary, error) {
	if len(rows) == 0 {
		return nil, domain.EmptyInputError{Input: "accuracy table"}
	}
	if bins <= 0 {
		return nil, fmt.Errorf("histogram needs at least one bin, got %d", bins)
	}

	mapes := make([]float64, 0, len(rows))
	for _, r := range rows {
		mapes = append(mapes, r.Mape)
	}

	box, err := boxSummary(mapes)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate box summary: %w", err)
	}

	return &AccuracySummary{
		Count:     len(rows),
		Histogram: Histogram(mapes, box.Min, box.Max, bins),
		Box:       *box,
		Best:      rankAccuracy(rows, rankSize, false),
		Worst:     rankAccuracy(rows, rankSize, true),
	}, nil
}

func boxSummary(values []float64) (*BoxSummary, error) {
	min, err := stats.Min(values)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(values)
	if err != nil {
		return nil, err
	}
	median, err := stats.Median(values)
	if err != nil {
		return nil, err
	}
	// quartiles of a single value are the value itself
	if len(values) == 1 {
		return &BoxSummary{Min: min, Q1: min, Median: min, Q3: min, Max: min}, nil
	}
	q, err := stats.Quartile(values)
	if err != nil {
		return nil, err
	}
	return &BoxSummary{
		Min:    min,
		Q1:     q.Q1,
		Median: median,
		Q3:     q.Q3,
		Max:    max,
	}, nil
}

// Histogram splits [min, max] into equal-width bins; the last bin is closed
// on both ends. A zero-width range collapses into a single bin.
func Histogram(values []float64, min, max float64, bins int) []HistogramBin {
	if len(values) == 0 || bins <= 0 {
		return []HistogramBin{}
	}
	if max == min {
		return []HistogramBin{{Lower: min, Upper: max, Count: len(values)}}
	}

	width := (max - min) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Lower = min + float64(i)*width
		out[i].Upper = min + float64(i+1)*width
	}
	out[bins-1].Upper = max

	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		out[idx].Count++
	}
	return out
}

func rankAccuracy(rows []domain.AccuracyRow, n int, worstFirst bool) []domain.AccuracyRow {
	sorted := append([]domain.AccuracyRow{}, rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if worstFirst {
			return sorted[i].Mape > sorted[j].Mape
		}
		return sorted[i].Mape < sorted[j].Mape
	})
	if n >= 0 && n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
