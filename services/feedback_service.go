package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotel-ledger/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FeedbackService records guest feedback. Unlike every other operation it
// does not require an active stay: departed guests may still leave feedback,
// in which case the room is recorded as N/A.
type FeedbackService struct {
	DB *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{DB: db}
}

// Submit appends one feedback entry. Ratings map category names to star
// values and are stored as a JSON column.
func (s *FeedbackService) Submit(name, idProof string, ratings map[string]int, recommend, comments string) (models.Feedback, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Feedback{}, ErrInvalidInput
	}

	roomNumber := "N/A"
	if strings.TrimSpace(idProof) != "" {
		if occ, err := findActiveOccupancy(s.DB, name, idProof); err == nil {
			roomNumber = occ.RoomNumber
		}
	}

	payload, err := json.Marshal(ratings)
	if err != nil {
		return models.Feedback{}, fmt.Errorf("failed to encode ratings: %w", err)
	}

	feedback := models.Feedback{
		GuestName:  name,
		IDProof:    strings.TrimSpace(idProof),
		RoomNumber: roomNumber,
		Ratings:    datatypes.JSON(payload),
		Recommend:  recommend,
		Comments:   comments,
		LeftAt:     time.Now(),
	}
	if err := s.DB.Create(&feedback).Error; err != nil {
		return models.Feedback{}, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return feedback, nil
}
