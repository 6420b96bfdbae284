package service

import (
	"context"
	"fmt"
	"time"

	"kpiforecast/internal/calculator"
	"kpiforecast/internal/domain"
	"kpiforecast/internal/logger"
	"kpiforecast/internal/repository"
)

type DashboardService interface {
	ListSeries(ctx context.Context) []string
	ListPeriods(ctx context.Context) []time.Time
	GetForecast(ctx context.Context, series string) ([]domain.ForecastRow, error)
	GetAccuracySummary(ctx context.Context) (*calculator.AccuracySummary, error)
	GetCorrelationMatrix(ctx context.Context) domain.CorrelationMatrix
}

type DashboardOptions struct {
	HeatmapMaxColumns int
	HistogramBins     int
	RankingSize       int
}

func NewDashboardService(
	forecastRepository repository.ForecastRepository,
	accuracyRepository repository.AccuracyRepository,
	featureRepository repository.FeatureRepository,
	options DashboardOptions,
) DashboardService {
	return dashboardServiceHandler{
		ForecastRepository: forecastRepository,
		AccuracyRepository: accuracyRepository,
		FeatureRepository:  featureRepository,
		Options:            options,
	}
}

type dashboardServiceHandler struct {
	ForecastRepository repository.ForecastRepository
	AccuracyRepository repository.AccuracyRepository
	FeatureRepository  repository.FeatureRepository
	Options            DashboardOptions
}

func (h dashboardServiceHandler) ListSeries(ctx context.Context) []string {
	return h.ForecastRepository.ListSeries()
}

func (h dashboardServiceHandler) ListPeriods(ctx context.Context) []time.Time {
	return h.ForecastRepository.ListPeriods()
}

func (h dashboardServiceHandler) GetForecast(ctx context.Context, series string) ([]domain.ForecastRow, error) {
	rows := h.ForecastRepository.ListBySeries(series)
	if len(rows) == 0 {
		return nil, domain.SeriesNotFoundError{Series: series}
	}
	return rows, nil
}

func (h dashboardServiceHandler) GetAccuracySummary(ctx context.Context) (*calculator.AccuracySummary, error) {
	summary, err := calculator.SummarizeAccuracy(
		h.AccuracyRepository.List(),
		h.Options.HistogramBins,
		h.Options.RankingSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize accuracy: %w", err)
	}
	return summary, nil
}

// GetCorrelationMatrix is recomputed on every call.
func (h dashboardServiceHandler) GetCorrelationMatrix(ctx context.Context) domain.CorrelationMatrix {
	out := calculator.CorrelationMatrix(h.FeatureRepository.Get(), h.Options.HeatmapMaxColumns)
	if len(out.Columns) == 0 {
		logger.FromContext(ctx).Warn("no numeric columns found in feature matrix for correlation heatmap")
	}
	return out
}
