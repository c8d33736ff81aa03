package handler

import (
	"net/http"
	"strconv"

	"storefront-service/internal/analytics"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func analyticsService() *analytics.Service {
	return analytics.NewService(database.GetDB(), appConfig.Inventory.LowStockThreshold)
}

// AnalyticsSummary returns the dashboard revenue and order statistics
func AnalyticsSummary(c echo.Context) error {
	log := logger.FromContext(c)

	summary, err := analyticsService().Summary()
	if err != nil {
		log.Error("Failed to compute analytics summary", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute summary"})
	}
	return c.JSON(http.StatusOK, summary)
}

// DailyRevenue returns revenue grouped by calendar date over a trailing
// window of days (default 30, capped at 365).
func DailyRevenue(c echo.Context) error {
	log := logger.FromContext(c)

	days := 30
	if v := c.QueryParam("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "days must be a positive integer"})
		}
		days = parsed
	}
	if days > 365 {
		days = 365
	}

	daily, err := analyticsService().DailyRevenue(days)
	if err != nil {
		log.Error("Failed to compute daily revenue", zap.Int("days", days), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to compute daily revenue"})
	}
	return c.JSON(http.StatusOK, daily)
}

// ListInventoryAlerts reconciles and returns active inventory alerts
func ListInventoryAlerts(c echo.Context) error {
	log := logger.FromContext(c)

	alerts, err := analyticsService().RefreshAlerts()
	if err != nil {
		log.Error("Failed to refresh inventory alerts", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load alerts"})
	}
	return c.JSON(http.StatusOK, alerts)
}

// NotifyInventoryAlert marks an alert as notified
func NotifyInventoryAlert(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid alert id"})
	}

	if err := analyticsService().MarkNotified(uint(id)); err != nil {
		log.Error("Failed to mark alert notified", zap.Uint64("alert_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update alert"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "alert marked notified"})
}
