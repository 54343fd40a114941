package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Feedback is a side log only. Ratings holds the per-category star values
// (category name -> 1..5) as JSON. RoomNumber is "N/A" for guests without an
// active stay; feedback is accepted either way.
type Feedback struct {
	gorm.Model

	GuestName  string         `json:"guestName" gorm:"column:guest_name;size:255"`
	IDProof    string         `json:"idProof" gorm:"column:id_proof;size:100"`
	RoomNumber string         `json:"roomNumber" gorm:"column:room_number;size:50"`
	Ratings    datatypes.JSON `json:"ratings"`
	Recommend  string         `json:"recommend" gorm:"size:10"`
	Comments   string         `json:"comments" gorm:"type:text"`
	LeftAt     time.Time      `json:"leftAt" gorm:"column:left_at"`
}
