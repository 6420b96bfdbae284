package api

import (
	"kpiforecast/internal/util"

	"github.com/gin-gonic/gin"
)

type listSeriesResponse struct {
	Series []string `json:"series"`
}

func (h ApiHandler) listSeries(c *gin.Context) {
	c.JSON(200, listSeriesResponse{
		Series: h.DashboardService.ListSeries(c.Request.Context()),
	})
}

type listPeriodsResponse struct {
	Periods []string `json:"periods"`
}

func (h ApiHandler) listPeriods(c *gin.Context) {
	periods := h.DashboardService.ListPeriods(c.Request.Context())
	out := listPeriodsResponse{
		Periods: make([]string, 0, len(periods)),
	}
	for _, p := range periods {
		out.Periods = append(out.Periods, util.FormatPeriod(p))
	}
	c.JSON(200, out)
}
