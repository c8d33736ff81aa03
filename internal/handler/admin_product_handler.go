package handler

import (
	"net/http"
	"strconv"
	"time"

	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// ProductRequest defines the structure for product upserts. A present ID
// selects update, an absent one insert.
type ProductRequest struct {
	ID          uint     `json:"id,omitempty"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	SKU         string   `json:"sku" validate:"required"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	Sizes       []string `json:"sizes"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
}

// isUpdate reports which write the request selects: a present ID routes
// to update, an absent one to insert.
func (r ProductRequest) isUpdate() bool {
	return r.ID != 0
}

// UpsertProduct inserts or updates a product depending on ID presence
func UpsertProduct(c echo.Context) error {
	log := logger.FromContext(c)

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid product request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Name == "" || req.SKU == "" || req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, sku and a positive price are required"})
	}
	if req.Stock < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stock cannot be negative"})
	}

	if req.isUpdate() {
		return updateProduct(c, req)
	}
	return createProduct(c, req)
}

func createProduct(c echo.Context, req ProductRequest) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("create")
	defer prometheus.TrackDBOperation("insert")(time.Now())

	var count int64
	database.GetDB().Model(&model.Product{}).Where("sku = ?", req.SKU).Count(&count)
	if count > 0 {
		log.Warn("Product with this SKU already exists", zap.String("sku", req.SKU))
		return c.JSON(http.StatusConflict, echo.Map{"error": "product with this SKU already exists"})
	}

	product := model.Product{
		Name:        req.Name,
		Description: req.Description,
		SKU:         req.SKU,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Sizes:       pq.StringArray(req.Sizes),
		Stock:       req.Stock,
		Featured:    req.Featured,
	}
	if err := database.GetDB().Create(&product).Error; err != nil {
		log.Error("Failed to create product", zap.String("sku", req.SKU), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create product"})
	}

	refreshInventoryGauge(&product)
	log.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("sku", product.SKU))
	return c.JSON(http.StatusCreated, product)
}

func updateProduct(c echo.Context, req ProductRequest) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("update")
	defer prometheus.TrackDBOperation("update")(time.Now())

	var product model.Product
	if err := database.GetDB().First(&product, req.ID).Error; err != nil {
		log.Warn("Product not found for update", zap.Uint("product_id", req.ID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	if req.SKU != product.SKU {
		var count int64
		database.GetDB().Model(&model.Product{}).Where("sku = ? AND id != ?", req.SKU, req.ID).Count(&count)
		if count > 0 {
			log.Warn("Product with this SKU already exists", zap.String("sku", req.SKU))
			return c.JSON(http.StatusConflict, echo.Map{"error": "product with this SKU already exists"})
		}
	}

	product.Name = req.Name
	product.Description = req.Description
	product.SKU = req.SKU
	product.Price = req.Price
	product.Category = req.Category
	product.ImageURL = req.ImageURL
	product.Sizes = pq.StringArray(req.Sizes)
	product.Stock = req.Stock
	product.Featured = req.Featured

	if err := database.GetDB().Save(&product).Error; err != nil {
		log.Error("Failed to update product", zap.Uint("product_id", product.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update product"})
	}

	refreshInventoryGauge(&product)
	log.Info("Product updated",
		zap.Uint("product_id", product.ID),
		zap.String("sku", product.SKU),
		zap.Float64("price", product.Price))
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct soft-deletes a product
func DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("delete")

	id := c.Param("id")
	result := database.GetDB().Delete(&model.Product{}, id)
	if result.Error != nil {
		log.Error("Failed to delete product", zap.String("product_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete product"})
	}
	if result.RowsAffected == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	log.Info("Product deleted", zap.String("product_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}

// UpdateStock adjusts only the stock count of a product
func UpdateStock(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordProductOperation("stock")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req struct {
		Stock int `json:"stock"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Stock < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "stock cannot be negative"})
	}

	var product model.Product
	if err := database.GetDB().First(&product, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}

	if err := database.GetDB().Model(&product).Update("stock", req.Stock).Error; err != nil {
		log.Error("Failed to update stock", zap.Uint64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update stock"})
	}

	product.Stock = req.Stock
	refreshInventoryGauge(&product)
	log.Info("Stock updated",
		zap.Uint("product_id", product.ID),
		zap.Int("stock", product.Stock))
	return c.JSON(http.StatusOK, product)
}

func refreshInventoryGauge(p *model.Product) {
	prometheus.UpdateProductInventory(
		strconv.FormatUint(uint64(p.ID), 10), p.Name, p.Category, float64(p.Stock))
}
