package api

import (
	"github.com/gin-gonic/gin"
)

type getCorrelationsResponse struct {
	Columns []string     `json:"columns"`
	Values  [][]*float64 `json:"values"`
	Warning *string      `json:"warning,omitempty"`
}

func (h ApiHandler) getCorrelations(c *gin.Context) {
	matrix := h.DashboardService.GetCorrelationMatrix(c.Request.Context())

	out := getCorrelationsResponse{
		Columns: matrix.Columns,
		Values:  matrix.NullableValues(),
	}
	if len(matrix.Columns) == 0 {
		warning := "No numeric columns found in feature matrix for correlation heatmap."
		out.Warning = &warning
	}

	c.JSON(200, out)
}
