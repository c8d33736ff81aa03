// Package checkout converts a cart into an order. Line snapshots are
// value copies taken at checkout time; later product edits never touch
// a placed order. The order insert and the cart row cleanup run in one
// transaction so a failed cleanup can not strand a stale cart.
package checkout

import (
	"errors"

	"storefront-service/internal/cart"
	"storefront-service/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrEmptyCart is returned when checkout is attempted on an empty cart
	ErrEmptyCart = errors.New("cart is empty")

	// ErrIdentityRequired is returned for guest checkout attempts
	ErrIdentityRequired = errors.New("checkout requires an authenticated identity")
)

// Service places orders
type Service struct {
	db *gorm.DB
}

// NewService creates a checkout service over the given database
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// BuildOrder assembles a pending order from cart lines. The total is the
// sum of line price times quantity and each item is a snapshot of its
// line.
func BuildOrder(userID *uint, email string, lines []cart.Line) (*model.Order, error) {
	if userID == nil {
		return nil, ErrIdentityRequired
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	order := &model.Order{
		Number:        uuid.New().String(),
		UserID:        userID,
		Email:         email,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
	}
	for _, line := range lines {
		order.Items = append(order.Items, model.OrderItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     line.Price,
			ImageURL:  line.ImageURL,
		})
		order.Total += line.Price * float64(line.Quantity)
	}
	return order, nil
}

// Place builds the order, inserts it and deletes the identity's cart
// rows atomically. The returned order carries the assigned ID and number
// for the payment hand-off.
func (s *Service) Place(userID uint, email string, lines []cart.Line) (*model.Order, error) {
	order, err := BuildOrder(&userID, email, lines)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
