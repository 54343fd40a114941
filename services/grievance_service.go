package services

import (
	"fmt"
	"strings"
	"time"

	"hotel-ledger/models"

	"gorm.io/gorm"
)

// GrievanceService records guest complaints. Side log only, never billed.
type GrievanceService struct {
	DB *gorm.DB
}

func NewGrievanceService(db *gorm.DB) *GrievanceService {
	return &GrievanceService{DB: db}
}

// Submit appends one grievance as Open. Priority defaults to Medium.
func (s *GrievanceService) Submit(name, idProof, roomNumber, category, priority, description string) (models.Grievance, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(idProof) == "" {
		return models.Grievance{}, ErrInvalidInput
	}
	if strings.TrimSpace(description) == "" {
		return models.Grievance{}, ErrInvalidInput
	}
	if strings.TrimSpace(priority) == "" {
		priority = "Medium"
	}

	grievance := models.Grievance{
		GuestName:   strings.TrimSpace(name),
		IDProof:     strings.TrimSpace(idProof),
		RoomNumber:  roomNumber,
		Category:    category,
		Priority:    priority,
		Description: description,
		SubmittedAt: time.Now(),
		Status:      models.GrievanceOpen,
	}
	if err := s.DB.Create(&grievance).Error; err != nil {
		return models.Grievance{}, fmt.Errorf("failed to submit grievance: %w", err)
	}
	return grievance, nil
}
