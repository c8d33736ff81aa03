package cart

import (
	"storefront-service/internal/model"

	"gorm.io/gorm"
)

// gormRepository persists cart lines as rows keyed by user ID. Each
// mutation is a synchronous write; the backend-assigned row ID is
// captured on insert.
type gormRepository struct {
	db     *gorm.DB
	userID uint
}

// NewGormRepository returns the cart repository for an authenticated user
func NewGormRepository(db *gorm.DB, userID uint) Repository {
	return &gormRepository{db: db, userID: userID}
}

func (r *gormRepository) Load() ([]Line, error) {
	var items []model.CartItem
	if err := r.db.Where("user_id = ?", r.userID).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
		})
	}
	return lines, nil
}

func (r *gormRepository) Save(line *Line) error {
	if line.ID == 0 {
		item := model.CartItem{
			UserID:    r.userID,
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Name:      line.Name,
			Price:     line.Price,
			ImageURL:  line.ImageURL,
		}
		if err := r.db.Create(&item).Error; err != nil {
			return err
		}
		line.ID = item.ID
		return nil
	}

	return r.db.Model(&model.CartItem{}).
		Where("id = ? AND user_id = ?", line.ID, r.userID).
		Update("quantity", line.Quantity).Error
}

func (r *gormRepository) Remove(id uint) error {
	return r.db.Where("id = ? AND user_id = ?", id, r.userID).Delete(&model.CartItem{}).Error
}

func (r *gormRepository) Clear() error {
	return r.db.Where("user_id = ?", r.userID).Delete(&model.CartItem{}).Error
}
