package analytics

import "storefront-service/internal/model"

// DeriveAlertType returns the alert type for a stock level, if any
func DeriveAlertType(stock, threshold int) (string, bool) {
	switch {
	case stock <= 0:
		return model.AlertOutOfStock, true
	case stock <= threshold:
		return model.AlertLowStock, true
	default:
		return "", false
	}
}

// RefreshAlerts reconciles inventory alerts with current stock levels:
// products at or below threshold get an active alert of the right type,
// recovered products have their alerts deactivated. Returns the active
// alerts after reconciliation.
func (s *Service) RefreshAlerts() ([]model.InventoryAlert, error) {
	var products []model.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, err
	}

	for _, p := range products {
		alertType, wanted := DeriveAlertType(p.Stock, s.lowStockThreshold)

		var existing model.InventoryAlert
		err := s.db.Where("product_id = ? AND active = ?", p.ID, true).First(&existing).Error

		switch {
		case wanted && err == nil:
			if existing.AlertType != alertType {
				existing.AlertType = alertType
				existing.Notified = false
				if err := s.db.Save(&existing).Error; err != nil {
					return nil, err
				}
			}
		case wanted:
			alert := model.InventoryAlert{ProductID: p.ID, AlertType: alertType, Active: true}
			if err := s.db.Create(&alert).Error; err != nil {
				return nil, err
			}
		case err == nil:
			existing.Active = false
			if err := s.db.Save(&existing).Error; err != nil {
				return nil, err
			}
		}
	}

	var alerts []model.InventoryAlert
	if err := s.db.Where("active = ?", true).Order("id").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// MarkNotified flags an alert as notified
func (s *Service) MarkNotified(id uint) error {
	return s.db.Model(&model.InventoryAlert{}).Where("id = ?", id).Update("notified", true).Error
}
