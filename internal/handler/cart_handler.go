package handler

import (
	"net/http"
	"strconv"

	"storefront-service/internal/cart"
	"storefront-service/internal/middleware"
	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CartLineRequest defines the structure for add-to-cart requests
type CartLineRequest struct {
	ProductID uint   `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// openCart resolves the cart aggregate for the request: backed by the
// database for authenticated users, by the guest session store
// otherwise. SessionMiddleware guarantees one of the two is present.
func openCart(c echo.Context) (*cart.Cart, string, error) {
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		crt, err := cart.Open(cart.NewGormRepository(database.GetDB(), userID))
		return crt, "backend", err
	}
	sessionID, _ := middleware.GetSessionIDFromContext(c)
	crt, err := cart.Open(guestCarts.ForSession(sessionID))
	return crt, "session", err
}

func cartResponse(crt *cart.Cart) echo.Map {
	return echo.Map{
		"lines":    crt.Lines(),
		"subtotal": crt.Subtotal(),
	}
}

// GetCart returns the current cart lines and subtotal
func GetCart(c echo.Context) error {
	log := logger.FromContext(c)

	crt, _, err := openCart(c)
	if err != nil {
		log.Error("Failed to load cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}
	return c.JSON(http.StatusOK, cartResponse(crt))
}

// AddCartLine adds a product in a chosen size to the cart
func AddCartLine(c echo.Context) error {
	log := logger.FromContext(c)

	var req CartLineRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid cart request", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Size == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "size is required"})
	}

	var product model.Product
	if err := database.GetDB().First(&product, req.ProductID).Error; err != nil {
		log.Warn("Product not found for cart add", zap.Uint("product_id", req.ProductID))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}
	if !product.HasSize(req.Size) {
		log.Warn("Size not offered",
			zap.Uint("product_id", product.ID),
			zap.String("size", req.Size))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "size not available for this product"})
	}

	crt, mode, err := openCart(c)
	if err != nil {
		log.Error("Failed to load cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}

	if err := crt.AddLine(&product, req.Size, req.Quantity); err != nil {
		if err == cart.ErrInvalidQuantity {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "quantity must be positive"})
		}
		log.Error("Failed to add cart line",
			zap.Uint("product_id", product.ID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update cart"})
	}

	prometheus.RecordCartOperation("add", mode)
	log.Info("Cart line added",
		zap.Uint("product_id", product.ID),
		zap.String("size", req.Size),
		zap.Int("quantity", req.Quantity),
		zap.String("mode", mode))
	return c.JSON(http.StatusOK, cartResponse(crt))
}

// ClearCart removes every line, e.g. when a client signs out
func ClearCart(c echo.Context) error {
	log := logger.FromContext(c)

	crt, mode, err := openCart(c)
	if err != nil {
		log.Error("Failed to load cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}

	if err := crt.Clear(); err != nil {
		log.Error("Failed to clear cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to clear cart"})
	}

	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok {
		guestCarts.Drop(sessionID)
	}

	prometheus.RecordCartOperation("clear", mode)
	return c.JSON(http.StatusOK, cartResponse(crt))
}

// UpdateCartLine sets the quantity of the line at the given index.
// Quantities below 1 remove the line.
func UpdateCartLine(c echo.Context) error {
	log := logger.FromContext(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid line index"})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	crt, mode, err := openCart(c)
	if err != nil {
		log.Error("Failed to load cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}

	if err := crt.SetQuantity(index, req.Quantity); err != nil {
		if err == cart.ErrLineNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cart line not found"})
		}
		log.Error("Failed to update cart line", zap.Int("index", index), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update cart"})
	}

	prometheus.RecordCartOperation("update", mode)
	return c.JSON(http.StatusOK, cartResponse(crt))
}

// RemoveCartLine removes the line at the given index
func RemoveCartLine(c echo.Context) error {
	log := logger.FromContext(c)

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid line index"})
	}

	crt, mode, err := openCart(c)
	if err != nil {
		log.Error("Failed to load cart", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load cart"})
	}

	if err := crt.RemoveLine(index); err != nil {
		if err == cart.ErrLineNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "cart line not found"})
		}
		log.Error("Failed to remove cart line", zap.Int("index", index), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update cart"})
	}

	prometheus.RecordCartOperation("remove", mode)
	return c.JSON(http.StatusOK, cartResponse(crt))
}
