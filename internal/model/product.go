package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Product represents a catalog product
type Product struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Name        string         `json:"name" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text"`
	SKU         string         `json:"sku" gorm:"type:varchar(100);unique;not null"`
	Price       float64        `json:"price" gorm:"not null"`
	Category    string         `json:"category" gorm:"type:varchar(100);index"`
	ImageURL    string         `json:"image_url" gorm:"type:text"`
	Sizes       pq.StringArray `json:"sizes" gorm:"type:text[]"`
	Stock       int            `json:"stock" gorm:"default:0"`
	Featured    bool           `json:"featured" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// HasSize reports whether the product is offered in the given size
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
