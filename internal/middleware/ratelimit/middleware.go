package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// KeyFunc extracts the client identifier a request is limited by.
type KeyFunc func(c echo.Context) string

// Middleware gates requests through the limiter and answers 429 with retry
// guidance when a client exhausts its window.
func Middleware(limiter *Limiter, keyFunc KeyFunc, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			clientID := keyFunc(c)
			if clientID == "" {
				// No identity to limit by; the handler decides whether
				// the request is acceptable without one.
				return next(c)
			}

			if !limiter.Allow(clientID) {
				retryAfter := int(math.Ceil(limiter.RetryAfter(clientID).Seconds()))
				logger.Warn("Rate limit exceeded",
					zap.String("client_id", clientID),
					zap.Int("retry_after_seconds", retryAfter))

				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":               "rate limit exceeded",
					"timestamp":           time.Now().UTC().Format(time.RFC3339),
					"retry_after_seconds": retryAfter,
					"limit":               limiter.MaxRequests(),
					"window_seconds":      int(limiter.Window().Seconds()),
				})
			}

			return next(c)
		}
	}
}
