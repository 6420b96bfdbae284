package repository

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"kpiforecast/internal/domain"
	"kpiforecast/internal/util"

	"github.com/gocarina/gocsv"
)

// ForecastRepository holds the forecast table loaded at startup. Every
// method returns a fresh copy.
type ForecastRepository interface {
	List() []domain.ForecastRow
	ListSeries() []string
	ListBySeries(series string) []domain.ForecastRow
	ListPeriods() []time.Time
}

type forecastRepositoryHandler struct {
	rows   []domain.ForecastRow
	series []string
}

type forecastCsvRow struct {
	SeriesName     string `csv:"english_name"`
	Ds             string `csv:"ds"`
	PredictedValue string `csv:"y_hat"`
}

func LoadForecastRepository(path string) (ForecastRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open predictions file: %w", err)
	}
	defer f.Close()

	rows, err := ParseForecasts(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load predictions from %s: %w", path, err)
	}
	return NewForecastRepository(rows)
}

func NewForecastRepository(rows []domain.ForecastRow) (ForecastRepository, error) {
	type key struct {
		series string
		ts     time.Time
	}
	seen := map[key]bool{}
	seriesSeen := map[string]bool{}
	series := []string{}
	for _, r := range rows {
		k := key{series: r.SeriesName, ts: r.Timestamp}
		if seen[k] {
			return nil, fmt.Errorf("duplicate forecast for series %q at %s", r.SeriesName, util.FormatPeriod(r.Timestamp))
		}
		seen[k] = true
		if !seriesSeen[r.SeriesName] {
			seriesSeen[r.SeriesName] = true
			series = append(series, r.SeriesName)
		}
	}

	return forecastRepositoryHandler{
		rows:   append([]domain.ForecastRow{}, rows...),
		series: series,
	}, nil
}

// ParseForecasts reads english_name, ds and y_hat columns. Other columns are
// ignored.
func ParseForecasts(in io.Reader) ([]domain.ForecastRow, error) {
	csvRows := []forecastCsvRow{}
	if err := gocsv.Unmarshal(in, &csvRows); err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	out := make([]domain.ForecastRow, 0, len(csvRows))
	for i, row := range csvRows {
		// header is line 1
		line := i + 2
		name := strings.TrimSpace(row.SeriesName)
		if name == "" {
			return nil, fmt.Errorf("line %d: missing english_name", line)
		}
		ts, err := util.ParsePeriod(strings.TrimSpace(row.Ds))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row.PredictedValue), 64)
		if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, fmt.Errorf("line %d: invalid y_hat %q", line, row.PredictedValue)
		}
		out = append(out, domain.ForecastRow{
			SeriesName:     name,
			Timestamp:      ts,
			PredictedValue: value,
		})
	}

	return out, nil
}

func (h forecastRepositoryHandler) List() []domain.ForecastRow {
	return append([]domain.ForecastRow{}, h.rows...)
}

// ListSeries returns series names in order of first appearance.
func (h forecastRepositoryHandler) ListSeries() []string {
	return append([]string{}, h.series...)
}

// ListBySeries returns the series' rows in chronological order.
func (h forecastRepositoryHandler) ListBySeries(series string) []domain.ForecastRow {
	out := []domain.ForecastRow{}
	for _, r := range h.rows {
		if r.SeriesName == series {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func (h forecastRepositoryHandler) ListPeriods() []time.Time {
	seen := map[time.Time]bool{}
	out := []time.Time{}
	for _, r := range h.rows {
		if !seen[r.Timestamp] {
			seen[r.Timestamp] = true
			out = append(out, r.Timestamp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return out
}
