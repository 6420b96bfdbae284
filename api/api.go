package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"kpiforecast/internal/domain"
	"kpiforecast/internal/logger"
	"kpiforecast/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

type ApiHandler struct {
	DashboardService service.DashboardService
	ScenarioService  service.ScenarioService
	Logger           *zap.SugaredLogger
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "kpi forecast dashboard"})
	})
	router.GET("/series", m.listSeries)
	router.GET("/periods", m.listPeriods)
	router.GET("/forecast", m.getForecast)
	router.GET("/accuracy", m.getAccuracy)
	router.GET("/correlations", m.getCorrelations)
	router.POST("/scenario", m.scenario)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func errorStatusCode(err error) int {
	switch {
	case errors.As(err, &domain.UnknownSeriesError{}),
		errors.As(err, &domain.SeriesNotFoundError{}),
		errors.As(err, &domain.AnchorNotFoundError{}):
		return http.StatusNotFound
	case errors.As(err, &domain.ChangeOutOfRangeError{}):
		return http.StatusBadRequest
	case errors.As(err, &domain.EmptyInputError{}):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, errorStatusCode(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= http.StatusInternalServerError {
		log.Errorw("request failed", "error", err, "status", code)
	} else {
		log.Infow("request rejected", "error", err.Error(), "status", code)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	c.Header(requestIDHeader, requestID)

	baseLogger := m.Logger
	if baseLogger == nil {
		baseLogger = zap.S()
	}
	log := baseLogger.With("requestID", requestID)

	profile, endProfile := domain.NewProfile()
	ctx := logger.WithContext(c.Request.Context(), log)
	ctx = domain.NewCtxWithProfile(ctx, profile)
	c.Request = c.Request.WithContext(ctx)

	start := time.Now()
	c.Next()
	endProfile()

	log.Infow(
		"handled request",
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"spans", profile.Spans,
	)
}
