package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"storefront-service/internal/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOrders(t *testing.T) {
	created := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{
			ID:            1,
			Number:        "ord-1",
			Email:         "shopper@example.com",
			Total:         239.99,
			Status:        model.OrderStatusPending,
			PaymentStatus: model.PaymentStatusPaid,
			Items:         []model.OrderItem{{}, {}},
			CreatedAt:     created,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, orders))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"id", "number", "email", "total", "status", "payment_status", "items", "created_at"}, records[0])
	assert.Equal(t, []string{"1", "ord-1", "shopper@example.com", "239.99", "pending", "paid", "2", "2026-08-01 12:00:00"}, records[1])
}

func TestWriteOrdersEscapesCommasAndQuotes(t *testing.T) {
	orders := []model.Order{
		{ID: 1, Number: "ord-1", Email: `"doe, jane"@example.com`, Total: 10},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOrders(&buf, orders))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `"doe, jane"@example.com`, records[1][2])
}

func TestWriteProducts(t *testing.T) {
	products := []model.Product{
		{
			ID:       3,
			Name:     "Oxford Shirt, slim fit",
			SKU:      "OXF-001",
			Category: "shirts",
			Price:    89.99,
			Stock:    12,
			Sizes:    pq.StringArray{"S", "M", "L"},
			Featured: true,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteProducts(&buf, products))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{"3", "Oxford Shirt, slim fit", "OXF-001", "shirts", "89.99", "12", "S|M|L", "true"}, records[1])
}
