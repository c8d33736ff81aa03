package handler

import (
	"storefront-service/internal/cart"
	"storefront-service/internal/model"
	"storefront-service/internal/storage"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var (
	appConfig  *config.Config
	guestCarts *cart.SessionStore
	uploads    storage.Store
)

// Init wires the handler package with its collaborators
func Init(cfg *config.Config, store storage.Store) {
	appConfig = cfg
	guestCarts = cart.NewSessionStore()
	uploads = store
}

// recordEvent inserts an analytics event for the current request. Event
// recording is best effort: a failed insert is logged, never surfaced.
func recordEvent(c echo.Context, eventType string, productID *uint, metadata string) {
	event := model.AnalyticsEvent{
		EventType: eventType,
		ProductID: productID,
		Metadata:  metadata,
	}
	if userID, ok := c.Get("user_id").(uint); ok {
		event.UserID = &userID
	}
	if sessionID, ok := c.Get("session_id").(string); ok {
		event.SessionID = sessionID
	}

	if err := database.GetDB().Create(&event).Error; err != nil {
		logger.FromContext(c).Warn("Failed to record analytics event",
			zap.String("event_type", eventType),
			zap.Error(err))
	}
}
