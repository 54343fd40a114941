package models

import (
	"time"

	"gorm.io/gorm"
)

const HousekeepingPending = "Pending"

// HousekeepingRequest is one flat-cost housekeeping line. Status is owned by
// the operations side; this core only ever creates rows as Pending.
type HousekeepingRequest struct {
	gorm.Model

	GuestName      string    `json:"guestName" gorm:"column:guest_name;size:255;index"`
	IDProof        string    `json:"idProof" gorm:"column:id_proof;size:100;index"`
	RoomNumber     string    `json:"roomNumber" gorm:"column:room_number;size:50"`
	Service        string    `json:"service" gorm:"size:100"`
	Cost           int       `json:"cost"`
	PreferredTime  string    `json:"preferredTime" gorm:"column:preferred_time;size:100"`
	SpecialRequest string    `json:"specialRequest" gorm:"column:special_request;type:text"`
	RequestedAt    time.Time `json:"requestedAt" gorm:"column:requested_at"`
	Status         string    `json:"status" gorm:"size:20;default:Pending"`
}
