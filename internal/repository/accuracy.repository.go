package repository

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"kpiforecast/internal/domain"

	"github.com/gocarina/gocsv"
)

type AccuracyRepository interface {
	List() []domain.AccuracyRow
}

type accuracyRepositoryHandler struct {
	rows []domain.AccuracyRow
}

type accuracyCsvRow struct {
	SeriesName string `csv:"english_name"`
	Mape       string `csv:"MAPE"`
}

func LoadAccuracyRepository(path string) (AccuracyRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open accuracy file: %w", err)
	}
	defer f.Close()

	rows, err := ParseAccuracy(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load accuracy from %s: %w", path, err)
	}
	return NewAccuracyRepository(rows)
}

func NewAccuracyRepository(rows []domain.AccuracyRow) (AccuracyRepository, error) {
	seen := map[string]bool{}
	for _, r := range rows {
		if seen[r.SeriesName] {
			return nil, fmt.Errorf("duplicate accuracy row for series %q", r.SeriesName)
		}
		seen[r.SeriesName] = true
	}
	return accuracyRepositoryHandler{
		rows: append([]domain.AccuracyRow{}, rows...),
	}, nil
}

func ParseAccuracy(in io.Reader) ([]domain.AccuracyRow, error) {
	csvRows := []accuracyCsvRow{}
	if err := gocsv.Unmarshal(in, &csvRows); err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}

	out := make([]domain.AccuracyRow, 0, len(csvRows))
	for i, row := range csvRows {
		line := i + 2
		name := strings.TrimSpace(row.SeriesName)
		if name == "" {
			return nil, fmt.Errorf("line %d: missing english_name", line)
		}
		mape, err := strconv.ParseFloat(strings.TrimSpace(row.Mape), 64)
		if err != nil || math.IsNaN(mape) || math.IsInf(mape, 0) {
			return nil, fmt.Errorf("line %d: invalid MAPE %q", line, row.Mape)
		}
		out = append(out, domain.AccuracyRow{
			SeriesName: name,
			Mape:       mape,
		})
	}
	return out, nil
}

func (h accuracyRepositoryHandler) List() []domain.AccuracyRow {
	return append([]domain.AccuracyRow{}, h.rows...)
}
