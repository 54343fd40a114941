package services

import (
	"errors"
	"fmt"

	"hotel-ledger/models"

	"gorm.io/gorm"
)

// MenuService reads the seeded price catalogs (food menu, item shop,
// housekeeping price list) for the presentation layer.
type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// List returns the catalog for one category in storage order.
func (s *MenuService) List(category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.
		Where("category = ?", category).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s catalog: %w", category, err)
	}
	return items, nil
}

// Get looks up one priced entry by category and name.
func (s *MenuService) Get(category, name string) (models.MenuItem, error) {
	var item models.MenuItem
	err := s.DB.
		Where("category = ? AND name = ?", category, name).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MenuItem{}, ErrNotFound
		}
		return models.MenuItem{}, fmt.Errorf("failed to look up %s %q: %w", category, name, err)
	}
	return item, nil
}
