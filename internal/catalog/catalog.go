// Package catalog provides the filterable, sortable read-only view over
// products. Category and search narrowing and the sort order run in the
// database; the size filter is applied after the fetch, on top of the
// already filtered and sorted set.
package catalog

import (
	"storefront-service/internal/model"

	"gorm.io/gorm"
)

// Sort options recognized by Load. Anything else falls back to newest
// first.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"
)

// Filters configures a catalog load
type Filters struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Size     string `query:"size"`
	Sort     string `query:"sort"`
}

// Service reads the product catalog
type Service struct {
	db *gorm.DB
}

// NewService creates a catalog service over the given database
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Load returns products matching the filters, ordered per the sort
// option. Category is an exact match and search a case-insensitive
// substring match on the name.
func (s *Service) Load(f Filters) ([]model.Product, error) {
	query := s.db.Model(&model.Product{})

	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Search != "" {
		query = query.Where("name ILIKE ?", "%"+f.Search+"%")
	}

	var products []model.Product
	if err := query.Order(OrderClause(f.Sort)).Find(&products).Error; err != nil {
		return nil, err
	}

	return FilterBySize(products, f.Size), nil
}

// Get returns a single product by ID
func (s *Service) Get(id uint) (*model.Product, error) {
	var product model.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// OrderClause maps a sort option to its SQL order expression. Popular
// puts featured products first with newest first breaking ties.
func OrderClause(sort string) string {
	switch sort {
	case SortPriceLow:
		return "price ASC"
	case SortPriceHigh:
		return "price DESC"
	case SortPopular:
		return "featured DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

// FilterBySize keeps products whose size set contains the given size,
// preserving order. An empty size keeps everything.
func FilterBySize(products []model.Product, size string) []model.Product {
	if size == "" {
		return products
	}
	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.HasSize(size) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
