package api

import (
	"github.com/gin-gonic/gin"
)

func (h ApiHandler) getAccuracy(c *gin.Context) {
	summary, err := h.DashboardService.GetAccuracySummary(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, summary)
}
