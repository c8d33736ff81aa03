package model

import "time"

// Order statuses. Status moves beyond pending through admin updates.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// Order represents a placed order. UserID is nullable so the model can
// carry guest orders even though checkout currently requires an identity.
type Order struct {
	ID            uint        `json:"id" gorm:"primarykey"`
	Number        string      `json:"number" gorm:"type:varchar(64);uniqueIndex;not null"`
	UserID        *uint       `json:"user_id,omitempty" gorm:"index"`
	Email         string      `json:"email" gorm:"type:varchar(100)"`
	Total         float64     `json:"total" gorm:"not null"`
	Status        string      `json:"status" gorm:"type:varchar(32);default:'pending'"`
	PaymentStatus string      `json:"payment_status" gorm:"type:varchar(32);default:'pending'"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// OrderItem is a value snapshot of a cart line taken at checkout time.
// Later product edits must not alter it.
type OrderItem struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	OrderID   uint      `json:"order_id" gorm:"index;not null"`
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name" gorm:"type:varchar(255)"`
	Size      string    `json:"size" gorm:"type:varchar(20)"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	ImageURL  string    `json:"image_url" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
