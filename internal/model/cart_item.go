package model

import "time"

// CartItem represents one cart line persisted for an authenticated user.
// The product name, price and image are denormalized at add time so the
// cart renders without re-reading the product table.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ProductID uint      `json:"product_id" gorm:"index;not null"`
	Size      string    `json:"size" gorm:"type:varchar(20);not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Price     float64   `json:"price"`
	ImageURL  string    `json:"image_url" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
