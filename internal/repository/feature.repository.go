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

type FeatureRepository interface {
	Get() domain.FeatureMatrix
}

// FeatureSchema declares which feature columns are not numeric and which
// columns must be present.
type FeatureSchema struct {
	ExcludeColumns  []string
	RequiredColumns []string
}

type featureRepositoryHandler struct {
	matrix domain.FeatureMatrix
}

func LoadFeatureRepository(path string, schema FeatureSchema) (FeatureRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open feature matrix file: %w", err)
	}
	defer f.Close()

	matrix, err := ParseFeatureMatrix(f, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to load feature matrix from %s: %w", path, err)
	}
	return NewFeatureRepository(matrix), nil
}

func NewFeatureRepository(matrix domain.FeatureMatrix) FeatureRepository {
	return featureRepositoryHandler{matrix: matrix.DeepCopy()}
}

// missing-value markers written by the upstream feature pipeline
var missingValues = map[string]bool{
	"":    true,
	"NA":  true,
	"NaN": true,
	"nan": true,
	"N/A": true,
}

// ParseFeatureMatrix reads a header row followed by observation rows. Every
// column outside schema.ExcludeColumns must hold numbers or missing markers;
// anything else fails the load.
func ParseFeatureMatrix(in io.Reader, schema FeatureSchema) (domain.FeatureMatrix, error) {
	records, err := gocsv.DefaultCSVReader(in).ReadAll()
	if err != nil {
		return domain.FeatureMatrix{}, fmt.Errorf("failed to parse csv: %w", err)
	}
	if len(records) == 0 {
		return domain.FeatureMatrix{}, fmt.Errorf("feature matrix is missing a header row")
	}

	excluded := map[string]bool{}
	for _, c := range schema.ExcludeColumns {
		excluded[c] = true
	}

	header := records[0]
	seen := map[string]bool{}
	numericIdx := []int{}
	matrix := domain.FeatureMatrix{}
	for i, raw := range header {
		name := strings.TrimSpace(raw)
		if name == "" {
			return domain.FeatureMatrix{}, fmt.Errorf("column %d has an empty name", i+1)
		}
		if seen[name] {
			return domain.FeatureMatrix{}, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true
		if excluded[name] {
			continue
		}
		numericIdx = append(numericIdx, i)
		matrix.Columns = append(matrix.Columns, domain.FeatureColumn{
			Name:   name,
			Values: make([]float64, 0, len(records)-1),
		})
	}

	for _, required := range schema.RequiredColumns {
		if !seen[required] {
			return domain.FeatureMatrix{}, fmt.Errorf("required column %q not found", required)
		}
		if excluded[required] {
			return domain.FeatureMatrix{}, fmt.Errorf("required column %q is also excluded", required)
		}
	}

	for r, record := range records[1:] {
		line := r + 2
		for c, idx := range numericIdx {
			cell := strings.TrimSpace(record[idx])
			value := math.NaN()
			if !missingValues[cell] {
				value, err = strconv.ParseFloat(cell, 64)
				if err != nil || math.IsInf(value, 0) {
					return domain.FeatureMatrix{}, fmt.Errorf("line %d: column %q has non-numeric value %q", line, matrix.Columns[c].Name, cell)
				}
			}
			matrix.Columns[c].Values = append(matrix.Columns[c].Values, value)
		}
	}

	return matrix, nil
}

func (h featureRepositoryHandler) Get() domain.FeatureMatrix {
	return h.matrix.DeepCopy()
}
