package middleware

import (
	"net/http"
	"strings"

	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthMiddleware validates the JWT token and stores the identity in the
// request context. Requests without a valid token are rejected.
func AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)
		prometheus.AuthAttemptsCounter.Inc()

		claims, err := bearerClaims(c)
		if err != nil {
			log.Warn("Rejected unauthenticated request", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or missing token"})
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		return next(c)
	}
}

// SessionMiddleware resolves the cart owner: an authenticated identity
// from a Bearer token, or a guest session from the X-Session-ID header.
// Requests carrying neither are rejected.
func SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		if c.Request().Header.Get("Authorization") != "" {
			claims, err := bearerClaims(c)
			if err != nil {
				log.Warn("Invalid token on cart request", zap.Error(err))
				prometheus.RecordAuthError("invalid_token")
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
			}
			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			return next(c)
		}

		sessionID := c.Request().Header.Get("X-Session-ID")
		if sessionID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "authentication or X-Session-ID required"})
		}
		c.Set("session_id", sessionID)
		return next(c)
	}
}

func bearerClaims(c echo.Context) (*jwtutil.UserClaims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format, expected Bearer token")
	}
	return jwtutil.ValidateToken(parts[1])
}

// GetUserIDFromContext retrieves the authenticated user ID from the context
func GetUserIDFromContext(c echo.Context) (uint, bool) {
	userID, ok := c.Get("user_id").(uint)
	return userID, ok
}

// GetSessionIDFromContext retrieves the guest session ID from the context
func GetSessionIDFromContext(c echo.Context) (string, bool) {
	sessionID, ok := c.Get("session_id").(string)
	return sessionID, ok && sessionID != ""
}
