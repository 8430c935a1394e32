package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

const defaultRequestTimeout = 5 * time.Second

// requestTimeout bounds each request's context so persistence and
// collaborator calls fail instead of hanging.
func requestTimeout(d time.Duration) echo.MiddlewareFunc {
	if d <= 0 {
		d = defaultRequestTimeout
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
