package models

import (
	"gorm.io/gorm"
)

const (
	MenuCategoryFood         = "food"
	MenuCategoryItem         = "item"
	MenuCategoryHousekeeping = "housekeeping"
)

// MenuItem is one priced catalog entry (food menu, item shop or housekeeping
// price list). Seeded once, read-only reference data for the front desk.
type MenuItem struct {
	gorm.Model

	Category string `json:"category" gorm:"size:20;index:idx_menu_category_name,unique"`
	Name     string `json:"name" gorm:"size:100;index:idx_menu_category_name,unique"`
	Price    int    `json:"price"`
}
