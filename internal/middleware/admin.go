package middleware

import (
	"net/http"

	"storefront-service/internal/model"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AdminMiddleware gates admin routes. The role is looked up on every
// request; a missing row or a failed lookup both read as "not admin".
// Runs after AuthMiddleware.
func AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}

		if !IsAdmin(userID) {
			log.Warn("Non-admin access to admin route denied", zap.Uint("user_id", userID))
			prometheus.RecordAuthError("admin_denied")
			return c.JSON(http.StatusForbidden, echo.Map{"error": "admin access required"})
		}

		return next(c)
	}
}

// IsAdmin reports whether the user has an admin role row. Fails closed:
// any lookup error means false.
func IsAdmin(userID uint) bool {
	var count int64
	err := database.GetDB().Model(&model.UserRole{}).
		Where("user_id = ? AND role = ?", userID, model.RoleAdmin).
		Count(&count).Error
	if err != nil {
		return false
	}
	return count > 0
}
