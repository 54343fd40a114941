package services

import (
	"fmt"
	"strings"
	"time"

	"hotel-ledger/models"

	"gorm.io/gorm"
)

// HousekeepingService is the append-only housekeeping ledger. Lines carry a
// flat cost per service, no quantity, and start out Pending; completing a
// request is an operations concern outside this core.
type HousekeepingService struct {
	DB *gorm.DB
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{DB: db}
}

// Append inserts one housekeeping request line.
func (s *HousekeepingService) Append(req *models.HousekeepingRequest) error {
	if strings.TrimSpace(req.GuestName) == "" || strings.TrimSpace(req.IDProof) == "" {
		return ErrInvalidInput
	}
	if req.Cost <= 0 {
		return ErrInvalidInput
	}
	if req.RequestedAt.IsZero() {
		req.RequestedAt = time.Now()
	}
	if req.Status == "" {
		req.Status = models.HousekeepingPending
	}
	if err := s.DB.Create(req).Error; err != nil {
		return fmt.Errorf("failed to append housekeeping request: %w", err)
	}
	return nil
}

// LinesFor re-reads the ledger and returns the guest's lines in storage order.
func (s *HousekeepingService) LinesFor(name, idProof string) ([]models.HousekeepingRequest, error) {
	var lines []models.HousekeepingRequest
	err := s.DB.
		Where("LOWER(guest_name) = ? AND id_proof = ?", strings.ToLower(strings.TrimSpace(name)), idProof).
		Order("id ASC").
		Find(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read housekeeping requests: %w", err)
	}
	return lines, nil
}
