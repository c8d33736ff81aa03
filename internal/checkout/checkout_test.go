package checkout

import (
	"testing"

	"storefront-service/internal/cart"
	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userID(id uint) *uint { return &id }

func TestBuildOrderSnapshotsLinesAndTotal(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 1, Name: "Oxford Shirt", Size: "M", Quantity: 1, Price: 89.99},
		{ProductID: 2, Name: "Linen Shirt", Size: "L", Quantity: 2, Price: 75.00},
	}

	order, err := BuildOrder(userID(7), "shopper@example.com", lines)
	require.NoError(t, err)

	assert.InDelta(t, 239.99, order.Total, 0.001)
	require.Len(t, order.Items, 2)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentStatusPending, order.PaymentStatus)
	assert.NotEmpty(t, order.Number)

	first := order.Items[0]
	assert.Equal(t, uint(1), first.ProductID)
	assert.Equal(t, "Oxford Shirt", first.Name)
	assert.Equal(t, "M", first.Size)
	assert.Equal(t, 1, first.Quantity)
	assert.Equal(t, 89.99, first.Price)
}

func TestBuildOrderUsesSnapshotPrices(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 1, Name: "Oxford Shirt", Size: "M", Quantity: 1, Price: 89.99},
	}

	order, err := BuildOrder(userID(7), "shopper@example.com", lines)
	require.NoError(t, err)

	// A later price edit on the source line must not reach the order.
	lines[0].Price = 120.00
	assert.Equal(t, 89.99, order.Items[0].Price)
	assert.InDelta(t, 89.99, order.Total, 0.001)
}

func TestBuildOrderRejectsEmptyCart(t *testing.T) {
	_, err := BuildOrder(userID(7), "shopper@example.com", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildOrderRejectsGuest(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 1, Name: "Oxford Shirt", Size: "M", Quantity: 1, Price: 89.99},
	}
	_, err := BuildOrder(nil, "guest@example.com", lines)
	assert.ErrorIs(t, err, ErrIdentityRequired)
}

func TestBuildOrderOwnership(t *testing.T) {
	lines := []cart.Line{
		{ProductID: 1, Name: "Oxford Shirt", Size: "M", Quantity: 3, Price: 10.00},
	}

	order, err := BuildOrder(userID(42), "shopper@example.com", lines)
	require.NoError(t, err)

	require.NotNil(t, order.UserID)
	assert.Equal(t, uint(42), *order.UserID)
	assert.Equal(t, "shopper@example.com", order.Email)
	assert.InDelta(t, 30.00, order.Total, 0.001)
}
