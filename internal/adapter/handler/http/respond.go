package http

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const deviceHeader = "X-Device-ID"

// errorResponse writes the uniform error envelope. Internal details stay in
// the logs; clients only ever see the message and a timestamp.
func errorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{
		"error":     message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// DeviceID resolves the caller's device identifier. Devices send an opaque
// self-generated ID in X-Device-ID; when that is missing the first
// X-Forwarded-For hop stands in so distinct clients stay distinct. Returns
// "" when neither is present.
func DeviceID(c echo.Context) string {
	if id := strings.TrimSpace(c.Request().Header.Get(deviceHeader)); id != "" {
		return id
	}
	forwarded := c.Request().Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return ""
	}
	first, _, _ := strings.Cut(forwarded, ",")
	return strings.TrimSpace(first)
}

// today returns the current UTC calendar date. Computed once per request and
// passed down so the midnight rollover stays testable in one place.
func today() string {
	return time.Now().UTC().Format("2006-01-02")
}
