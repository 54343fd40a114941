package models

import (
	"time"

	"gorm.io/gorm"
)

const GrievanceOpen = "Open"

// Grievance is a side log only; it never appears on a bill.
type Grievance struct {
	gorm.Model

	GuestName   string    `json:"guestName" gorm:"column:guest_name;size:255;index"`
	IDProof     string    `json:"idProof" gorm:"column:id_proof;size:100;index"`
	RoomNumber  string    `json:"roomNumber" gorm:"column:room_number;size:50"`
	Category    string    `json:"category" gorm:"size:100"`
	Priority    string    `json:"priority" gorm:"size:20"`
	Description string    `json:"description" gorm:"type:text"`
	SubmittedAt time.Time `json:"submittedAt" gorm:"column:submitted_at"`
	Status      string    `json:"status" gorm:"size:20;default:Open"`
}
