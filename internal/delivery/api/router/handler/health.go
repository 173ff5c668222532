package handler

import (
	"inventory/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports the process as alive. It does not touch the database.
func HealthCheck(c echo.Context) error {
	return response.Health(c)
}
