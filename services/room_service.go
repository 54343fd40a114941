package services

import (
	"errors"
	"fmt"

	"hotel-ledger/models"

	"gorm.io/gorm"
)

// RoomService owns the room inventory. It never decides who gets a room; the
// reservation service calls the mutators inside its own transaction.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// List returns every room in storage order.
func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// FindAvailableByType returns the first Available room of the given type in
// storage order. The tie-break is insertion order, not price or number. Pass a
// transaction handle to pick the room under its row lock.
func (s *RoomService) FindAvailableByType(db *gorm.DB, roomType string) (models.Room, error) {
	var room models.Room
	err := db.
		Where("type = ? AND status = ?", roomType, models.RoomAvailable).
		Order("id ASC").
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrNoAvailability
		}
		return models.Room{}, fmt.Errorf("failed to find available %s room: %w", roomType, err)
	}
	return room, nil
}

// MarkBooked flips the room to Booked. Idempotent.
func (s *RoomService) MarkBooked(db *gorm.DB, roomNumber string) error {
	return s.setStatus(db, roomNumber, models.RoomBooked)
}

// MarkAvailable flips the room back to Available. Idempotent.
func (s *RoomService) MarkAvailable(db *gorm.DB, roomNumber string) error {
	return s.setStatus(db, roomNumber, models.RoomAvailable)
}

func (s *RoomService) setStatus(db *gorm.DB, roomNumber, status string) error {
	err := db.Model(&models.Room{}).
		Where("room_number = ?", roomNumber).
		Update("status", status).Error
	if err != nil {
		return fmt.Errorf("failed to mark room %s %s: %w", roomNumber, status, err)
	}
	return nil
}
