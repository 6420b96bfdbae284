package api

import (
	"fmt"
	"net/http"

	"kpiforecast/internal/service"
	"kpiforecast/internal/util"

	"github.com/gin-gonic/gin"
)

type scenarioRequest struct {
	Series    string   `json:"series"`
	Period    string   `json:"period"`
	PctChange *float64 `json:"pctChange"`
}

type impactedSeries struct {
	Series             string  `json:"series"`
	Correlation        float64 `json:"correlation"`
	EstimatedPctChange float64 `json:"estimatedPctChange"`
}

type scenarioResponse struct {
	Series         string           `json:"series"`
	Period         string           `json:"period"`
	PctChange      float64          `json:"pctChange"`
	ImpactedSeries []impactedSeries `json:"impactedSeries"`
	AdjustedRows   []forecastPoint  `json:"adjustedRows"`
	AdjustedWindow []forecastPoint  `json:"adjustedWindow"`
	BaselineWindow []forecastPoint  `json:"baselineWindow"`
}

func (h ApiHandler) scenario(c *gin.Context) {
	var requestBody scenarioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}
	if requestBody.Series == "" {
		returnErrorJsonCode(fmt.Errorf("series is required"), c, http.StatusBadRequest)
		return
	}
	if requestBody.PctChange == nil {
		returnErrorJsonCode(fmt.Errorf("pctChange is required"), c, http.StatusBadRequest)
		return
	}
	period, err := util.ParsePeriod(requestBody.Period)
	if err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	result, err := h.ScenarioService.Run(c.Request.Context(), service.ScenarioInput{
		Series:    requestBody.Series,
		Period:    period,
		PctChange: *requestBody.PctChange,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := scenarioResponse{
		Series:         result.Series,
		Period:         util.FormatPeriod(result.Period),
		PctChange:      result.PctChange,
		ImpactedSeries: make([]impactedSeries, 0, len(result.ImpactedSeries)),
		AdjustedRows:   toForecastPoints(result.AdjustedRows),
		AdjustedWindow: toForecastPoints(result.AdjustedWindow),
		BaselineWindow: toForecastPoints(result.BaselineWindow),
	}
	for _, s := range result.ImpactedSeries {
		out.ImpactedSeries = append(out.ImpactedSeries, impactedSeries{
			Series:             s.SeriesName,
			Correlation:        s.Correlation,
			EstimatedPctChange: s.EstimatedPctChange,
		})
	}

	c.JSON(200, out)
}
