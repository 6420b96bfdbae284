package cmd

import (
	"fmt"
	"os"

	"kpiforecast/api"
	"kpiforecast/internal/logger"
	"kpiforecast/internal/repository"
	"kpiforecast/internal/service"
	"kpiforecast/internal/util"

	"github.com/joho/godotenv"
)

// LoadEnv populates the environment from .env when one exists.
func LoadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// InitializeDependencies loads config and the three tables once, then wires
// the services on top of them. The tables are read-only afterwards.
func InitializeDependencies() (*api.ApiHandler, *util.Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, nil, err
	}

	config, err := util.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	handler, err := InitializeDependenciesFromConfig(*config)
	if err != nil {
		return nil, nil, err
	}
	return handler, config, nil
}

func InitializeDependenciesFromConfig(config util.Config) (*api.ApiHandler, error) {
	log := logger.New()

	forecastRepository, err := repository.LoadForecastRepository(config.Data.PredictionsPath)
	if err != nil {
		return nil, err
	}
	accuracyRepository, err := repository.LoadAccuracyRepository(config.Data.AccuracyPath)
	if err != nil {
		return nil, err
	}
	featureRepository, err := repository.LoadFeatureRepository(
		config.Data.FeaturesPath,
		repository.FeatureSchema{
			ExcludeColumns:  config.Features.ExcludeColumns,
			RequiredColumns: config.Features.RequiredColumns,
		},
	)
	if err != nil {
		return nil, err
	}

	log.Infow(
		"loaded dashboard data",
		"numSeries", len(forecastRepository.ListSeries()),
		"numForecastRows", len(forecastRepository.List()),
		"numAccuracyRows", len(accuracyRepository.List()),
		"numFeatureColumns", len(featureRepository.Get().Columns),
	)

	dashboardService := service.NewDashboardService(
		forecastRepository,
		accuracyRepository,
		featureRepository,
		service.DashboardOptions{
			HeatmapMaxColumns: config.Dashboard.HeatmapMaxColumns,
			HistogramBins:     config.Dashboard.HistogramBins,
			RankingSize:       config.Dashboard.RankingSize,
		},
	)
	scenarioService := service.NewScenarioService(
		forecastRepository,
		featureRepository,
		service.ScenarioOptions{
			TopK:         config.Scenario.TopK,
			MinPctChange: config.Scenario.MinPctChange,
			MaxPctChange: config.Scenario.MaxPctChange,
			Adjust: service.AdjustOptions{
				WindowBefore: config.Scenario.WindowBefore,
				WindowAfter:  config.Scenario.WindowAfter,
				AffectedSpan: config.Scenario.AffectedSpan,
			},
		},
	)

	return &api.ApiHandler{
		DashboardService: dashboardService,
		ScenarioService:  scenarioService,
		Logger:           log,
	}, nil
}

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Logger != nil {
		_ = handler.Logger.Sync()
	}
}
