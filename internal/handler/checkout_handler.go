package handler

import (
	"fmt"
	"net/http"
	"time"

	"storefront-service/internal/checkout"
	"storefront-service/internal/middleware"
	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Checkout converts the caller's cart into a pending order. Guests are
// rejected; they must sign in first.
func Checkout(c echo.Context) error {
	log := logger.FromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		log.Warn("Guest checkout rejected")
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "sign in to check out"})
	}
	email, _ := c.Get("email").(string)

	crt, _, err := openCart(c)
	if err != nil {
		log.Error("Failed to load cart for checkout", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}
	if crt.IsEmpty() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
	}

	defer prometheus.TrackDBOperation("transaction")(time.Now())
	order, err := checkout.NewService(database.GetDB()).Place(userID, email, crt.Lines())
	if err != nil {
		log.Error("Checkout failed", zap.Uint("user_id", userID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "checkout failed"})
	}

	// Cart rows were deleted in the checkout transaction; this clears
	// the in-memory aggregate for the response.
	if err := crt.Clear(); err != nil {
		log.Warn("Cart clear after checkout", zap.Error(err))
	}

	prometheus.RecordCheckout(order.Total)
	recordEvent(c, model.EventCheckout, nil, order.Number)
	log.Info("Order placed",
		zap.Uint("order_id", order.ID),
		zap.String("number", order.Number),
		zap.Float64("total", order.Total))

	return c.JSON(http.StatusCreated, echo.Map{
		"order":       order,
		"payment_url": fmt.Sprintf("/payment?order_id=%d&total=%.2f", order.ID, order.Total),
	})
}
