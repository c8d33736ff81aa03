package handler

import (
	"net/http"
	"strconv"
	"time"

	"storefront-service/internal/catalog"
	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ListCatalog returns products matching the query filters
func ListCatalog(c echo.Context) error {
	log := logger.FromContext(c)

	var filters catalog.Filters
	if err := c.Bind(&filters); err != nil {
		log.Warn("Invalid catalog filters", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid filters"})
	}

	prometheus.CatalogQueriesCounter.WithLabelValues(filters.Sort).Inc()
	defer prometheus.TrackDBOperation("query")(time.Now())

	products, err := catalog.NewService(database.GetDB()).Load(filters)
	if err != nil {
		log.Error("Failed to load catalog",
			zap.String("category", filters.Category),
			zap.String("search", filters.Search),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve products"})
	}

	log.Info("Catalog loaded",
		zap.Int("count", len(products)),
		zap.String("sort", filters.Sort))
	return c.JSON(http.StatusOK, products)
}

// GetCatalogProduct returns a single product and records the view
func GetCatalogProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	defer prometheus.TrackDBOperation("query")(time.Now())

	product, err := catalog.NewService(database.GetDB()).Get(uint(id))
	if err != nil {
		log.Warn("Product not found", zap.Uint64("product_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	prometheus.ProductViewsCounter.WithLabelValues(strconv.FormatUint(uint64(product.ID), 10), product.Category).Inc()
	recordEvent(c, model.EventProductView, &product.ID, "")

	return c.JSON(http.StatusOK, product)
}
