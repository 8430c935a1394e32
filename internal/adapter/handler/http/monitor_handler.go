package http

import (
	"net/http"

	"github.com/kbpark824/quizr/internal/middleware/ratelimit"
	"github.com/labstack/echo/v4"
)

// MonitorHandler exposes process-local limiter internals for operators.
type MonitorHandler struct {
	limiter *ratelimit.Limiter
}

// NewMonitorHandler creates a new monitoring handler
func NewMonitorHandler(limiter *ratelimit.Limiter) *MonitorHandler {
	return &MonitorHandler{limiter: limiter}
}

// GetRateLimitStats handles GET /api/v1/internal/rate-limit
func (h *MonitorHandler) GetRateLimitStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.limiter.Stats())
}
