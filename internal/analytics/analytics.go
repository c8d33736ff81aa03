// Package analytics derives summary statistics from order and product
// records. Everything is fetch-and-reduce: orders are read in bulk and
// reduced in memory, the only mutation being inventory alert upkeep.
package analytics

import (
	"time"

	"storefront-service/internal/model"

	"gorm.io/gorm"
)

// Summary holds the dashboard revenue and order statistics
type Summary struct {
	CurrentMonthRevenue  float64           `json:"current_month_revenue"`
	PreviousMonthRevenue float64           `json:"previous_month_revenue"`
	RevenueChangePct     float64           `json:"revenue_change_pct"`
	OrderCount           int64             `json:"order_count"`
	AverageOrderValue    float64           `json:"average_order_value"`
	Categories           []CategoryRevenue `json:"categories"`
}

// CategoryRevenue is revenue and units sold for one product category
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Quantity int     `json:"quantity"`
}

// DailyRevenue is the revenue for one calendar date
type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// Service aggregates analytics over the order and product tables
type Service struct {
	db                *gorm.DB
	lowStockThreshold int
	now               func() time.Time
}

// NewService creates an analytics service. Products with stock at or
// below threshold raise low-stock alerts.
func NewService(db *gorm.DB, lowStockThreshold int) *Service {
	return &Service{db: db, lowStockThreshold: lowStockThreshold, now: time.Now}
}

// Summary computes month-over-month revenue, order statistics and the
// category breakdown from paid orders.
func (s *Service) Summary() (*Summary, error) {
	now := s.now()
	currentStart := MonthStart(now)
	previousStart := MonthStart(currentStart.AddDate(0, 0, -1))

	current, err := s.paidOrdersBetween(currentStart, now)
	if err != nil {
		return nil, err
	}
	previous, err := s.paidOrdersBetween(previousStart, currentStart)
	if err != nil {
		return nil, err
	}

	var products []model.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}

	summary := &Summary{
		CurrentMonthRevenue:  SumTotals(current),
		PreviousMonthRevenue: SumTotals(previous),
		OrderCount:           int64(len(current)),
		Categories:           CategoryBreakdown(current, products),
	}
	summary.RevenueChangePct = PercentChange(summary.CurrentMonthRevenue, summary.PreviousMonthRevenue)
	if len(current) > 0 {
		summary.AverageOrderValue = summary.CurrentMonthRevenue / float64(len(current))
	}
	return summary, nil
}

// DailyRevenue groups paid orders from the trailing window of days by
// calendar date.
func (s *Service) DailyRevenue(days int) ([]DailyRevenue, error) {
	now := s.now()
	orders, err := s.paidOrdersBetween(now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, err
	}
	return GroupDailyRevenue(orders), nil
}

func (s *Service) paidOrdersBetween(from, to time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := s.db.Preload("Items").
		Where("payment_status = ?", model.PaymentStatusPaid).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}

// MonthStart returns midnight on the first day of t's month
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// PercentChange returns the percentage change from previous to current,
// or 0 when there is no previous baseline.
func PercentChange(current, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// SumTotals sums order totals
func SumTotals(orders []model.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return total
}

// GroupDailyRevenue groups orders by calendar date string. Buckets keep
// the first-seen order of dates from the input, so an ascending scan
// yields ascending dates with sparse days skipped.
func GroupDailyRevenue(orders []model.Order) []DailyRevenue {
	index := make(map[string]int)
	var out []DailyRevenue
	for _, o := range orders {
		date := o.CreatedAt.Format("2006-01-02")
		i, ok := index[date]
		if !ok {
			i = len(out)
			index[date] = i
			out = append(out, DailyRevenue{Date: date})
		}
		out[i].Revenue += o.Total
		out[i].Orders++
	}
	return out
}

// CategoryBreakdown reduces order item snapshots against the product
// table. Items whose product no longer resolves count as uncategorized.
func CategoryBreakdown(orders []model.Order, products []model.Product) []CategoryRevenue {
	categories := make(map[uint]string, len(products))
	for _, p := range products {
		categories[p.ID] = p.Category
	}

	index := make(map[string]int)
	var out []CategoryRevenue
	for _, o := range orders {
		for _, item := range o.Items {
			category, ok := categories[item.ProductID]
			if !ok || category == "" {
				category = "uncategorized"
			}
			i, seen := index[category]
			if !seen {
				i = len(out)
				index[category] = i
				out = append(out, CategoryRevenue{Category: category})
			}
			out[i].Revenue += item.Price * float64(item.Quantity)
			out[i].Quantity += item.Quantity
		}
	}
	return out
}
