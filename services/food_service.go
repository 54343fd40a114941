package services

import (
	"fmt"
	"strings"
	"time"

	"hotel-ledger/models"

	"gorm.io/gorm"
)

// FoodService is the append-only food ledger.
type FoodService struct {
	DB *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{DB: db}
}

// Append inserts one food line. The front desk supplies already-validated
// values; only identity presence and positive quantity/price are enforced
// here. LineTotal and OrderedAt are derived when left zero.
func (s *FoodService) Append(order *models.FoodOrder) error {
	if strings.TrimSpace(order.GuestName) == "" || strings.TrimSpace(order.IDProof) == "" {
		return ErrInvalidInput
	}
	if order.Quantity <= 0 || order.UnitPrice <= 0 {
		return ErrInvalidInput
	}
	if order.LineTotal == 0 {
		order.LineTotal = order.UnitPrice * order.Quantity
	}
	if order.OrderedAt.IsZero() {
		order.OrderedAt = time.Now()
	}
	if err := s.DB.Create(order).Error; err != nil {
		return fmt.Errorf("failed to append food order: %w", err)
	}
	return nil
}

// LinesFor re-reads the ledger and returns the guest's lines in storage order.
func (s *FoodService) LinesFor(name, idProof string) ([]models.FoodOrder, error) {
	var lines []models.FoodOrder
	err := s.DB.
		Where("LOWER(guest_name) = ? AND id_proof = ?", strings.ToLower(strings.TrimSpace(name)), idProof).
		Order("id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read food orders: %w", err)
	}
	return lines, nil
}
