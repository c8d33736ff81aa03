package catalog

import (
	"strings"
	"testing"

	"storefront-service/internal/model"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func product(id uint, name, category string, sizes ...string) model.Product {
	return model.Product{
		ID:       id,
		Name:     name,
		Category: category,
		Sizes:    pq.StringArray(sizes),
	}
}

func TestOrderClause(t *testing.T) {
	assert.Equal(t, "price ASC", OrderClause(SortPriceLow))
	assert.Equal(t, "price DESC", OrderClause(SortPriceHigh))
	assert.Equal(t, "featured DESC, created_at DESC", OrderClause(SortPopular))
	assert.Equal(t, "created_at DESC", OrderClause(""))
	assert.Equal(t, "created_at DESC", OrderClause("bogus"))
}

func TestFilterBySize(t *testing.T) {
	products := []model.Product{
		product(1, "Oxford Shirt", "shirts", "S", "M"),
		product(2, "Linen Shirt", "shirts", "L"),
		product(3, "Chino Pants", "pants", "M", "L"),
	}

	filtered := FilterBySize(products, "M")

	assert.Len(t, filtered, 2)
	assert.Equal(t, uint(1), filtered[0].ID)
	assert.Equal(t, uint(3), filtered[1].ID)
}

func TestFilterBySizeEmptyKeepsAll(t *testing.T) {
	products := []model.Product{
		product(1, "Oxford Shirt", "shirts", "M"),
		product(2, "Linen Shirt", "shirts", "L"),
	}

	assert.Equal(t, products, FilterBySize(products, ""))
}

func TestFilterBySizeNoMatches(t *testing.T) {
	products := []model.Product{product(1, "Oxford Shirt", "shirts", "M")}
	assert.Empty(t, FilterBySize(products, "XXL"))
}

// Size filtering composes with category and search narrowing: applying
// it on top of an already narrowed set yields the intersection of the
// predicates.
func TestSizeFilterIntersectsWithOtherFilters(t *testing.T) {
	all := []model.Product{
		product(1, "Oxford Shirt", "shirts", "M"),
		product(2, "Linen Shirt", "shirts", "L"),
		product(3, "Oxford Pants", "pants", "M"),
		product(4, "Oxford Polo", "shirts", "M", "L"),
	}

	// Narrow the way the database would: category exact, search as a
	// case-insensitive substring on the name.
	narrowed := make([]model.Product, 0)
	for _, p := range all {
		if p.Category == "shirts" && strings.Contains(strings.ToLower(p.Name), "oxford") {
			narrowed = append(narrowed, p)
		}
	}

	filtered := FilterBySize(narrowed, "M")

	assert.Len(t, filtered, 2)
	for _, p := range filtered {
		assert.Equal(t, "shirts", p.Category)
		assert.Contains(t, strings.ToLower(p.Name), "oxford")
		assert.True(t, p.HasSize("M"))
	}
}
