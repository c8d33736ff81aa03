package handler

import (
	"net/http"
	"time"

	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var validOrderStatuses = map[string]bool{
	model.OrderStatusPending:    true,
	model.OrderStatusProcessing: true,
	model.OrderStatusShipped:    true,
	model.OrderStatusDelivered:  true,
	model.OrderStatusCancelled:  true,
}

var validPaymentStatuses = map[string]bool{
	model.PaymentStatusPending: true,
	model.PaymentStatusPaid:    true,
	model.PaymentStatusFailed:  true,
}

// ListOrders returns orders with their item snapshots, newest first,
// optionally filtered by status.
func ListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOrderOperation("list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := database.GetDB().Preload("Items").Order("created_at DESC")
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []model.Order
	if err := query.Find(&orders).Error; err != nil {
		log.Error("Failed to list orders", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve orders"})
	}

	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus sets the order status and/or payment status
func UpdateOrderStatus(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordOrderOperation("status")

	id := c.Param("id")

	var req struct {
		Status        string `json:"status,omitempty"`
		PaymentStatus string `json:"payment_status,omitempty"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Status == "" && req.PaymentStatus == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status or payment_status is required"})
	}
	if req.Status != "" && !validOrderStatuses[req.Status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown order status"})
	}
	if req.PaymentStatus != "" && !validPaymentStatuses[req.PaymentStatus] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown payment status"})
	}

	var order model.Order
	if err := database.GetDB().First(&order, id).Error; err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
	}

	updates := map[string]interface{}{}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.PaymentStatus != "" {
		updates["payment_status"] = req.PaymentStatus
	}

	if err := database.GetDB().Model(&order).Updates(updates).Error; err != nil {
		log.Error("Failed to update order", zap.String("order_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update order"})
	}

	log.Info("Order status updated",
		zap.Uint("order_id", order.ID),
		zap.String("status", req.Status),
		zap.String("payment_status", req.PaymentStatus))
	return c.JSON(http.StatusOK, order)
}
