package model

import "time"

// Inventory alert types
const (
	AlertOutOfStock = "out_of_stock"
	AlertLowStock   = "low_stock"
)

// InventoryAlert flags a product whose stock crossed an alert threshold
type InventoryAlert struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	AlertType string    `json:"alert_type" gorm:"type:varchar(32);not null"`
	Active    bool      `json:"active" gorm:"default:true"`
	Notified  bool      `json:"notified" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
