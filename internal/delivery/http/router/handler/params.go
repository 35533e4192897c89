package handler

import (
	"strconv"

	"ecoconnect/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// queryFloat parses an optional float query param; absent or malformed
// values come back nil.
func queryFloat(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &value
}

// queryInt parses an optional integer query param.
func queryInt(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}

	return &value
}

// queryUUID parses an optional UUID query param.
func queryUUID(c echo.Context, name string) *uuid.UUID {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}

	return &value
}

// pathUUID parses a required UUID path param.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// contextUserID returns the authenticated user's ID, if any.
func contextUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextUserID).(uuid.UUID)

	return userID, ok
}
