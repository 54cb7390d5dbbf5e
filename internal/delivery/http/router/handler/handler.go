// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"time"

	"vita/internal/delivery/http/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// currentUserID extracts the authenticated user's ID set by the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}

// parseDateParam parses a YYYY-MM-DD query parameter, defaulting to now when
// the parameter is missing or malformed. Bad client input degrades to today
// instead of failing the request.
func parseDateParam(c echo.Context, name string) time.Time {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Now()
	}

	parsed, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		return time.Now()
	}

	return parsed
}

// parseIntParam parses a numeric query parameter with a default and an upper
// cap. Non-numeric or out-of-range values fall back to the default.
func parseIntParam(c echo.Context, name string, def, max int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return def
	}
	if value > max {
		return max
	}

	return value
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
