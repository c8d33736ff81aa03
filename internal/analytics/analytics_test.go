package analytics

import (
	"testing"
	"time"

	"storefront-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	assert.InDelta(t, 50.0, PercentChange(150.00, 100.00), 0.001)
	assert.InDelta(t, -25.0, PercentChange(75.00, 100.00), 0.001)
	assert.Equal(t, 0.0, PercentChange(150.00, 0))
	assert.Equal(t, 0.0, PercentChange(0, 0))
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)
	start := MonthStart(now)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), start)

	// Previous month via the day before the current month start
	previous := MonthStart(start.AddDate(0, 0, -1))
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), previous)
}

func TestSumTotals(t *testing.T) {
	orders := []model.Order{{Total: 89.99}, {Total: 150.00}}
	assert.InDelta(t, 239.99, SumTotals(orders), 0.001)
	assert.Equal(t, 0.0, SumTotals(nil))
}

func orderOn(day string, total float64) model.Order {
	ts, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return model.Order{Total: total, CreatedAt: ts}
}

func TestGroupDailyRevenue(t *testing.T) {
	orders := []model.Order{
		orderOn("2026-08-01", 10),
		orderOn("2026-08-01", 20),
		orderOn("2026-08-03", 5),
		orderOn("2026-08-07", 40),
	}

	daily := GroupDailyRevenue(orders)

	require.Len(t, daily, 3)
	assert.Equal(t, DailyRevenue{Date: "2026-08-01", Revenue: 30, Orders: 2}, daily[0])
	assert.Equal(t, DailyRevenue{Date: "2026-08-03", Revenue: 5, Orders: 1}, daily[1])
	assert.Equal(t, DailyRevenue{Date: "2026-08-07", Revenue: 40, Orders: 1}, daily[2])
}

func TestGroupDailyRevenueKeepsFirstSeenOrder(t *testing.T) {
	// Sparse dates stay in scan order, no calendar backfill.
	orders := []model.Order{
		orderOn("2026-08-05", 1),
		orderOn("2026-08-09", 2),
		orderOn("2026-08-09", 3),
	}

	daily := GroupDailyRevenue(orders)

	require.Len(t, daily, 2)
	assert.Equal(t, "2026-08-05", daily[0].Date)
	assert.Equal(t, "2026-08-09", daily[1].Date)
}

func TestCategoryBreakdown(t *testing.T) {
	products := []model.Product{
		{ID: 1, Category: "shirts"},
		{ID: 2, Category: "shirts"},
		{ID: 3, Category: "pants"},
	}
	orders := []model.Order{
		{Items: []model.OrderItem{
			{ProductID: 1, Price: 89.99, Quantity: 1},
			{ProductID: 3, Price: 60.00, Quantity: 2},
		}},
		{Items: []model.OrderItem{
			{ProductID: 2, Price: 75.00, Quantity: 1},
		}},
	}

	breakdown := CategoryBreakdown(orders, products)

	require.Len(t, breakdown, 2)
	assert.Equal(t, "shirts", breakdown[0].Category)
	assert.InDelta(t, 164.99, breakdown[0].Revenue, 0.001)
	assert.Equal(t, 2, breakdown[0].Quantity)
	assert.Equal(t, "pants", breakdown[1].Category)
	assert.InDelta(t, 120.00, breakdown[1].Revenue, 0.001)
}

func TestCategoryBreakdownUnknownProduct(t *testing.T) {
	orders := []model.Order{
		{Items: []model.OrderItem{{ProductID: 99, Price: 10.00, Quantity: 1}}},
	}

	breakdown := CategoryBreakdown(orders, nil)

	require.Len(t, breakdown, 1)
	assert.Equal(t, "uncategorized", breakdown[0].Category)
}

func TestDeriveAlertType(t *testing.T) {
	alertType, ok := DeriveAlertType(0, 5)
	assert.True(t, ok)
	assert.Equal(t, model.AlertOutOfStock, alertType)

	alertType, ok = DeriveAlertType(3, 5)
	assert.True(t, ok)
	assert.Equal(t, model.AlertLowStock, alertType)

	_, ok = DeriveAlertType(6, 5)
	assert.False(t, ok)
}
