package models

import (
	"time"

	"gorm.io/gorm"
)

// ServiceOrder is one billed non-food item line (towels, toiletries, ...).
// Same append-only rules as FoodOrder; the two are logged independently.
type ServiceOrder struct {
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
