package service

import (
	"context"
	"errors"
	"testing"

	"kpiforecast/internal/domain"
	mock_repository "kpiforecast/internal/repository/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDashboardService(ctrl *gomock.Controller) (
	DashboardService,
	*mock_repository.MockForecastRepository,
	*mock_repository.MockAccuracyRepository,
	*mock_repository.MockFeatureRepository,
) {
	forecastRepository := mock_repository.NewMockForecastRepository(ctrl)
	accuracyRepository := mock_repository.NewMockAccuracyRepository(ctrl)
	featureRepository := mock_repository.NewMockFeatureRepository(ctrl)
	handler := NewDashboardService(forecastRepository, accuracyRepository, featureRepository, DashboardOptions{
		HeatmapMaxColumns: 20,
		HistogramBins:     30,
		RankingSize:       2,
	})
	return handler, forecastRepository, accuracyRepository, featureRepository
}

func Test_dashboardServiceHandler_GetForecast(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, forecastRepository, _, _ := newDashboardService(ctrl)

		forecastRepository.EXPECT().ListBySeries("Units Sold").Return([]domain.ForecastRow{unitsSold(1, 100)})

		rows, err := handler.GetForecast(context.Background(), "Units Sold")
		require.NoError(t, err)
		require.Equal(t, []domain.ForecastRow{unitsSold(1, 100)}, rows)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, forecastRepository, _, _ := newDashboardService(ctrl)

		forecastRepository.EXPECT().ListBySeries("Warranty Claims").Return([]domain.ForecastRow{})

		_, err := handler.GetForecast(context.Background(), "Warranty Claims")
		require.True(t, errors.As(err, &domain.SeriesNotFoundError{}))
	})
}

func Test_dashboardServiceHandler_GetAccuracySummary(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, accuracyRepository, _ := newDashboardService(ctrl)

		accuracyRepository.EXPECT().List().Return([]domain.AccuracyRow{
			{SeriesName: "Units Sold", Mape: 4.5},
			{SeriesName: "Revenue", Mape: 12.25},
			{SeriesName: "Service Hours", Mape: 7},
		})

		summary, err := handler.GetAccuracySummary(context.Background())
		require.NoError(t, err)
		require.Equal(t, []domain.AccuracyRow{
			{SeriesName: "Units Sold", Mape: 4.5},
			{SeriesName: "Service Hours", Mape: 7},
		}, summary.Best)
		require.Equal(t, "Revenue", summary.Worst[0].SeriesName)
		require.Len(t, summary.Histogram, 30)
	})

	t.Run("empty table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, accuracyRepository, _ := newDashboardService(ctrl)

		accuracyRepository.EXPECT().List().Return([]domain.AccuracyRow{})

		_, err := handler.GetAccuracySummary(context.Background())
		require.True(t, errors.As(err, &domain.EmptyInputError{}))
	})
}

func Test_dashboardServiceHandler_GetCorrelationMatrix(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler, _, _, featureRepository := newDashboardService(ctrl)

	featureRepository.EXPECT().Get().Return(newFeatureMatrix())

	out := handler.GetCorrelationMatrix(context.Background())
	require.Equal(t, newFeatureMatrix().ColumnNames(), out.Columns)

	corr, ok := out.Get("Units Sold", "Revenue")
	require.True(t, ok)
	require.InDelta(t, 0.8, corr, 1e-9)
}
