package services

import (
	"fmt"
	"strings"
	"time"

	"hotel-ledger/models"

	"gorm.io/gorm"
)

// ServiceOrderService is the append-only ledger for miscellaneous non-food
// items. Structurally the food ledger's twin, kept as its own log.
type ServiceOrderService struct {
	DB *gorm.DB
}

func NewServiceOrderService(db *gorm.DB) *ServiceOrderService {
	return &ServiceOrderService{DB: db}
}

// Append inserts one item line. Same rules as the food ledger.
func (s *ServiceOrderService) Append(order *models.ServiceOrder) error {
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
		return fmt.Errorf("failed to append service order: %w", err)
	}
	return nil
}

// LinesFor re-reads the ledger and returns the guest's lines in storage order.
func (s *ServiceOrderService) LinesFor(name, idProof string) ([]models.ServiceOrder, error) {
	var lines []models.ServiceOrder
	err := s.DB.
		Where("LOWER(guest_name) = ? AND id_proof = ?", strings.ToLower(strings.TrimSpace(name)), idProof).
		Order("id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read service orders: %w", err)
	}
	return lines, nil
}
