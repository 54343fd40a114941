package models

import (
	"time"

	"gorm.io/gorm"
)

// Occupancy is one active stay. RoomTotal is frozen at check-in
// (price per night x nights) and never recomputed afterwards.
type Occupancy struct {
	gorm.Model

	GuestName  string    `json:"guestName" gorm:"column:guest_name;size:255;index"`
	IDProof    string    `json:"idProof" gorm:"column:id_proof;size:100;index"`
	RoomNumber string    `json:"roomNumber" gorm:"column:room_number;size:50;index"`
	RoomType   string    `json:"roomType" gorm:"column:room_type;size:50"`
	Nights     int       `json:"nights"`
	RoomTotal  int       `json:"roomTotal" gorm:"column:room_total"`
	Phone      string    `json:"phone" gorm:"size:50"`
	CheckInAt  time.Time `json:"checkInAt" gorm:"column:check_in_at"`
}
