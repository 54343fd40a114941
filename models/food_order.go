package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodOrder is one billed food line. Append-only: lines survive check-out and
// are matched back to guests by identity, never deleted by the core.
type FoodOrder struct {
	gorm.Model

	GuestName  string    `json:"guestName" gorm:"column:guest_name;size:255;index"`
	IDProof    string    `json:"idProof" gorm:"column:id_proof;size:100;index"`
	RoomNumber string    `json:"roomNumber" gorm:"column:room_number;size:50"`
	Item       string    `json:"item" gorm:"size:100"`
	Quantity   int       `json:"quantity"`
	UnitPrice  int       `json:"unitPrice" gorm:"column:unit_price"`
	LineTotal  int       `json:"lineTotal" gorm:"column:line_total"`
	OrderedAt  time.Time `json:"orderedAt" gorm:"column:ordered_at"`
}
