package api

import (
	"fmt"
	"net/http"

	"kpiforecast/internal/domain"
	"kpiforecast/internal/util"

	"github.com/gin-gonic/gin"
)

type forecastPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type getForecastResponse struct {
	Series string          `json:"series"`
	Points []forecastPoint `json:"points"`
}

func toForecastPoints(rows []domain.ForecastRow) []forecastPoint {
	out := make([]forecastPoint, 0, len(rows))
	for _, r := range rows {
		out = append(out, forecastPoint{
			Date:  util.FormatPeriod(r.Timestamp),
			Value: r.PredictedValue,
		})
	}
	return out
}

func (h ApiHandler) getForecast(c *gin.Context) {
	series := c.Query("series")
	if series == "" {
		returnErrorJsonCode(fmt.Errorf("missing series query parameter"), c, http.StatusBadRequest)
		return
	}

	rows, err := h.DashboardService.GetForecast(c.Request.Context(), series)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, getForecastResponse{
		Series: series,
		Points: toForecastPoints(rows),
	})
}
