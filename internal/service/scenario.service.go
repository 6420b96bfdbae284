package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"kpiforecast/internal/calculator"
	"kpiforecast/internal/domain"
	"kpiforecast/internal/logger"
	"kpiforecast/internal/repository"
	"kpiforecast/internal/util"

	"github.com/shopspring/decimal"
)

type ScenarioService interface {
	Run(ctx context.Context, input ScenarioInput) (*domain.ScenarioResult, error)
}

type ScenarioInput struct {
	Series    string
	Period    time.Time
	PctChange float64
}

type ScenarioOptions struct {
	TopK         int
	MinPctChange float64
	MaxPctChange float64
	Adjust       AdjustOptions
}

func NewScenarioService(
	forecastRepository repository.ForecastRepository,
	featureRepository repository.FeatureRepository,
	options ScenarioOptions,
) ScenarioService {
	return scenarioServiceHandler{
		ForecastRepository: forecastRepository,
		FeatureRepository:  featureRepository,
		Options:            options,
	}
}

type scenarioServiceHandler struct {
	ForecastRepository repository.ForecastRepository
	FeatureRepository  repository.FeatureRepository
	Options            ScenarioOptions
}

func (h scenarioServiceHandler) Run(ctx context.Context, input ScenarioInput) (*domain.ScenarioResult, error) {
	log := logger.FromContext(ctx)
	profile := domain.GetProfile(ctx)

	if input.PctChange < h.Options.MinPctChange || input.PctChange > h.Options.MaxPctChange || math.IsNaN(input.PctChange) {
		return nil, domain.ChangeOutOfRangeError{
			PctChange: input.PctChange,
			Min:       h.Options.MinPctChange,
			Max:       h.Options.MaxPctChange,
		}
	}

	_, endSpan := profile.StartNewSpan("estimate impact")
	impacted, err := EstimateImpact(h.FeatureRepository.Get(), input.Series, input.PctChange, h.Options.TopK)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to estimate impact: %w", err)
	}

	_, endSpan = profile.StartNewSpan("adjust forecast")
	adjustment, err := AdjustForecast(h.ForecastRepository.List(), input.Series, input.Period, input.PctChange, h.Options.Adjust)
	endSpan()
	if err != nil {
		return nil, fmt.Errorf("failed to adjust forecast: %w", err)
	}

	log.Infow(
		"ran scenario",
		"series", input.Series,
		"period", util.FormatPeriod(input.Period),
		"pctChange", input.PctChange,
		"numImpacted", len(impacted),
	)

	return &domain.ScenarioResult{
		Series:         input.Series,
		Period:         input.Period,
		PctChange:      input.PctChange,
		ImpactedSeries: impacted,
		AdjustedRows:   adjustment.AdjustedRows,
		AdjustedWindow: adjustment.Window,
		BaselineWindow: adjustment.BaselineWindow,
	}, nil
}

// EstimateImpact ranks the other feature columns by Pearson correlation with
// targetSeries and estimates each one's change as correlation * pctChange.
// That estimate is a linear proxy, not a causal model. Columns whose
// correlation is undefined are left out; ties keep column order.
func EstimateImpact(features domain.FeatureMatrix, targetSeries string, pctChange float64, topK int) ([]domain.ImpactedSeries, error) {
	if topK < 0 {
		return nil, fmt.Errorf("topK cannot be negative, got %d", topK)
	}
	target, ok := features.Column(targetSeries)
	if !ok {
		return nil, domain.UnknownSeriesError{Series: targetSeries}
	}
	if features.NumRows() == 0 {
		return nil, domain.EmptyInputError{Input: "feature matrix"}
	}

	out := []domain.ImpactedSeries{}
	for _, c := range features.Columns {
		if c.Name == targetSeries {
			continue
		}
		corr, ok := calculator.Correlation(target.Values, c.Values)
		if !ok {
			continue
		}
		estimated := corr * pctChange
		if estimated == 0 {
			// no -0 for negative correlations
			estimated = 0
		}
		out = append(out, domain.ImpactedSeries{
			SeriesName:         c.Name,
			Correlation:        corr,
			EstimatedPctChange: estimated,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Correlation > out[j].Correlation
	})
	if len(out) > topK {
		out = out[:topK]
	}

	return out, nil
}

type AdjustOptions struct {
	WindowBefore int
	WindowAfter  int
	AffectedSpan int
}

func DefaultAdjustOptions() AdjustOptions {
	return AdjustOptions{
		WindowBefore: 2,
		WindowAfter:  5,
		AffectedSpan: 3,
	}
}

// AdjustForecast multiplies the anchor row of targetSeries and the following
// AffectedSpan-1 rows of the same series by (1 + pctChange/100). Positions
// are taken within the series' own chronological sequence, so rows of other
// series never shift the span. Spans and windows are clamped to the rows
// that exist. rows is not modified.
func AdjustForecast(
	rows []domain.ForecastRow,
	targetSeries string,
	anchor time.Time,
	pctChange float64,
	opts AdjustOptions,
) (*domain.ForecastAdjustment, error) {
	if opts.WindowBefore < 0 || opts.WindowAfter < 0 || opts.AffectedSpan < 0 {
		return nil, fmt.Errorf("window sizes and affected span cannot be negative: %+v", opts)
	}
	if math.IsNaN(pctChange) || math.IsInf(pctChange, 0) {
		return nil, fmt.Errorf("invalid pct change %v", pctChange)
	}

	series := []domain.ForecastRow{}
	for _, r := range rows {
		if r.SeriesName == targetSeries {
			series = append(series, r)
		}
	}
	if len(series) == 0 {
		return nil, domain.SeriesNotFoundError{Series: targetSeries}
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Timestamp.Before(series[j].Timestamp)
	})

	anchorIdx := -1
	for i, r := range series {
		if r.Timestamp.Equal(anchor) {
			anchorIdx = i
			break
		}
	}
	if anchorIdx < 0 {
		return nil, domain.AnchorNotFoundError{Series: targetSeries, Anchor: anchor}
	}

	multiplier := decimal.NewFromInt(1).Add(
		decimal.NewFromFloat(pctChange).Div(decimal.NewFromInt(100)),
	)
	adjusted := append([]domain.ForecastRow{}, series...)
	spanEnd := min(anchorIdx+opts.AffectedSpan, len(adjusted))
	for i := anchorIdx; i < spanEnd; i++ {
		adjusted[i].PredictedValue = applyMultiplier(adjusted[i].PredictedValue, multiplier)
	}

	windowStart := max(0, anchorIdx-opts.WindowBefore)
	windowEnd := min(len(adjusted), anchorIdx+opts.WindowAfter+1)

	return &domain.ForecastAdjustment{
		AdjustedRows:   append([]domain.ForecastRow{}, adjusted[anchorIdx:spanEnd]...),
		Window:         append([]domain.ForecastRow{}, adjusted[windowStart:windowEnd]...),
		BaselineWindow: append([]domain.ForecastRow{}, series[windowStart:windowEnd]...),
	}, nil
}

func applyMultiplier(value float64, multiplier decimal.Decimal) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value * multiplier.InexactFloat64()
	}
	return decimal.NewFromFloat(value).Mul(multiplier).InexactFloat64()
}
