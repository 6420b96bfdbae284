package util

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port      int             `yaml:"port"`
	Data      DataConfig      `yaml:"data"`
	Features  FeaturesConfig  `yaml:"features"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Scenario  ScenarioConfig  `yaml:"scenario"`
}

type DataConfig struct {
	PredictionsPath string `yaml:"predictions_path"`
	AccuracyPath    string `yaml:"accuracy_path"`
	FeaturesPath    string `yaml:"features_path"`
}

// FeaturesConfig declares the feature matrix schema. Every column not in
// ExcludeColumns must be numeric.
type FeaturesConfig struct {
	ExcludeColumns  []string `yaml:"exclude_columns"`
	RequiredColumns []string `yaml:"required_columns"`
}

type DashboardConfig struct {
	HeatmapMaxColumns int `yaml:"heatmap_max_columns"`
	HistogramBins     int `yaml:"histogram_bins"`
	RankingSize       int `yaml:"ranking_size"`
}

type ScenarioConfig struct {
	TopK         int     `yaml:"top_k"`
	WindowBefore int     `yaml:"window_before"`
	WindowAfter  int     `yaml:"window_after"`
	AffectedSpan int     `yaml:"affected_span"`
	MinPctChange float64 `yaml:"min_pct_change"`
	MaxPctChange float64 `yaml:"max_pct_change"`
}

func DefaultConfig() Config {
	return Config{
		Port: 3009,
		Data: DataConfig{
			PredictionsPath: "deliverables/predictions_3m.csv",
			AccuracyPath:    "reports/final_accuracy.csv",
			FeaturesPath:    "features/feature_matrix.csv",
		},
		Features: FeaturesConfig{
			ExcludeColumns: []string{"ds"},
		},
		Dashboard: DashboardConfig{
			HeatmapMaxColumns: 20,
			HistogramBins:     30,
			RankingSize:       5,
		},
		Scenario: ScenarioConfig{
			TopK:         5,
			WindowBefore: 2,
			WindowAfter:  5,
			AffectedSpan: 3,
			MinPctChange: -20,
			MaxPctChange: 20,
		},
	}
}

func configPath() string {
	if p := os.Getenv("KPI_CONFIG"); p != "" {
		return p
	}
	switch strings.ToLower(os.Getenv("KPI_ENV")) {
	case "dev":
		return "config-dev.yaml"
	case "test":
		return "config-test.yaml"
	}
	return "/go/src/app/config.yaml"
}

// LoadConfig reads the config file picked by KPI_CONFIG / KPI_ENV. Fields
// missing from the file keep their defaults.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(configPath())
}

func LoadConfigFile(path string) (*Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config file '%s': %w", path, err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(f, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Data.PredictionsPath == "" {
		return fmt.Errorf("predictions path cannot be empty")
	}
	if c.Data.AccuracyPath == "" {
		return fmt.Errorf("accuracy path cannot be empty")
	}
	if c.Data.FeaturesPath == "" {
		return fmt.Errorf("features path cannot be empty")
	}
	if c.Dashboard.HeatmapMaxColumns <= 0 {
		return fmt.Errorf("heatmap max columns must be greater than 0")
	}
	if c.Dashboard.HistogramBins <= 0 {
		return fmt.Errorf("histogram bins must be greater than 0")
	}
	if c.Dashboard.RankingSize < 0 {
		return fmt.Errorf("ranking size cannot be negative")
	}
	s := c.Scenario
	if s.TopK < 0 || s.WindowBefore < 0 || s.WindowAfter < 0 || s.AffectedSpan < 0 {
		return fmt.Errorf("scenario top_k, windows and affected span cannot be negative")
	}
	if s.MinPctChange > s.MaxPctChange {
		return fmt.Errorf("min pct change %g is greater than max pct change %g", s.MinPctChange, s.MaxPctChange)
	}
	return nil
}
