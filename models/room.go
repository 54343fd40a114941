package models

import (
	"gorm.io/gorm"
)

const (
	RoomTypeNormal = "Normal"
	RoomTypeDeluxe = "Deluxe"
	RoomTypeSuite  = "Suite"
)

const (
	RoomAvailable = "Available"
	RoomBooked    = "Booked"
)

// Room is one rentable room. Rows are created by seeding only; Status is
// mutated exclusively by the reservation service.
type Room struct {
	gorm.Model

	RoomNumber    string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Type          string `json:"type" gorm:"column:type;size:50;index"`
	Status        string `json:"status" gorm:"column:status;size:20;default:Available"`
	PricePerNight int    `json:"pricePerNight" gorm:"column:price_per_night"`
}
