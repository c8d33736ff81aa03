package handler

import (
	"net/http"

	"storefront-service/internal/export"
	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ExportOrders serves all orders as a CSV download
func ExportOrders(c echo.Context) error {
	log := logger.FromContext(c)

	var orders []model.Order
	if err := database.GetDB().Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		log.Error("Failed to fetch orders for export", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to export orders"})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := export.WriteOrders(c.Response(), orders); err != nil {
		log.Error("Failed to write orders CSV", zap.Error(err))
		return err
	}
	log.Info("Orders exported", zap.Int("count", len(orders)))
	return nil
}

// ExportProducts serves all products as a CSV download
func ExportProducts(c echo.Context) error {
	log := logger.FromContext(c)

	var products []model.Product
	if err := database.GetDB().Order("id").Find(&products).Error; err != nil {
		log.Error("Failed to fetch products for export", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to export products"})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := export.WriteProducts(c.Response(), products); err != nil {
		log.Error("Failed to write products CSV", zap.Error(err))
		return err
	}
	log.Info("Products exported", zap.Int("count", len(products)))
	return nil
}
