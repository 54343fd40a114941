package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-ledger/models"

	"gorm.io/gorm"
)

// OccupancyService is the registry of active stays, one row per checked-in
// guest. It performs no availability checks; the reservation service pairs
// every registry write with the matching inventory write in one transaction.
type OccupancyService struct {
	DB *gorm.DB
}

func NewOccupancyService(db *gorm.DB) *OccupancyService {
	return &OccupancyService{DB: db}
}

// FindActive returns the guest's active stay. The name matches
// case-insensitively, the ID proof exactly; the first row in storage order
// wins. A miss is the normal "please check in first" outcome.
func (s *OccupancyService) FindActive(name, idProof string) (models.Occupancy, error) {
	return findActiveOccupancy(s.DB, name, idProof)
}

func findActiveOccupancy(db *gorm.DB, name, idProof string) (models.Occupancy, error) {
	var occ models.Occupancy
	err := db.
		Where("LOWER(guest_name) = ? AND id_proof = ?", strings.ToLower(strings.TrimSpace(name)), idProof).
		Order("id ASC").
		First(&occ).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Occupancy{}, ErrNotCheckedIn
		}
		return models.Occupancy{}, fmt.Errorf("failed to look up occupancy: %w", err)
	}
	return occ, nil
}

// Create appends a stay record. The caller must already hold the room.
func (s *OccupancyService) Create(db *gorm.DB, occ *models.Occupancy) error {
	if err := db.Create(occ).Error; err != nil {
		return fmt.Errorf("failed to create occupancy: %w", err)
	}
	return nil
}

// Remove deletes the first active stay matching the identity and returns its
// data so the caller can bill and free the room.
func (s *OccupancyService) Remove(db *gorm.DB, name, idProof string) (models.Occupancy, error) {
	occ, err := findActiveOccupancy(db, name, idProof)
	if err != nil {
		return models.Occupancy{}, err
	}
	if err := db.Delete(&occ).Error; err != nil {
		return models.Occupancy{}, fmt.Errorf("failed to remove occupancy: %w", err)
	}
	return occ, nil
}
