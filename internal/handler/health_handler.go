package handler

import (
	"net/http"

	"storefront-service/pkg/database"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service and database health
func HealthCheck(c echo.Context) error {
	status := "ok"
	dbStatus := "ok"

	if sqlDB, err := database.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
		status = "degraded"
		dbStatus = "unreachable"
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":   status,
		"database": dbStatus,
	})
}
