package model

import "time"

// Analytics event types
const (
	EventProductView = "product_view"
	EventCheckout    = "checkout"
)

// AnalyticsEvent records a storefront interaction for later aggregation
type AnalyticsEvent struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	EventType string    `json:"event_type" gorm:"type:varchar(64);index;not null"`
	UserID    *uint     `json:"user_id,omitempty" gorm:"index"`
	SessionID string    `json:"session_id" gorm:"type:varchar(64);index"`
	ProductID *uint     `json:"product_id,omitempty" gorm:"index"`
	Metadata  string    `json:"metadata,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
