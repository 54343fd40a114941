package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-ledger/models"

	"gorm.io/gorm"
)

// BillingService turns the occupancy registry and the three charge ledgers
// into one itemized bill. Read-only.
type BillingService struct {
	DB *gorm.DB
}

func NewBillingService(db *gorm.DB) *BillingService {
	return &BillingService{DB: db}
}

// ComputeBill aggregates everything the identity currently owes. Calling it
// twice without intervening writes yields identical bills. A guest with no
// active stay still gets a bill (room total zero); an unreadable ledger
// degrades its category to zero and leaves a warning instead of failing.
func (s *BillingService) ComputeBill(name, idProof string) (models.Bill, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(idProof) == "" {
		return models.Bill{}, ErrInvalidInput
	}
	return computeBill(s.DB, name, idProof), nil
}

func computeBill(db *gorm.DB, name, idProof string) models.Bill {
	var bill models.Bill
	lower := strings.ToLower(strings.TrimSpace(name))

	// Room charges come from the active stay's frozen total. The per-night
	// price on the line is a display derivation, integer floor.
	var occ models.Occupancy
	err := db.
		Where("LOWER(guest_name) = ? AND id_proof = ?", lower, idProof).
		Order("id ASC").
		First(&occ).Error
	switch {
	case err == nil:
		nights := occ.Nights
		if nights < 1 {
			nights = 1
		}
		bill.RoomTotal = occ.RoomTotal
		bill.RoomItems = append(bill.RoomItems, models.BillLine{
			Description: fmt.Sprintf("%s Room - %d night(s) @ %d/night", occ.RoomType, occ.Nights, occ.RoomTotal/nights),
			Amount:      occ.RoomTotal,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no active stay, room charges stay zero
	default:
		bill.Warnings = append(bill.Warnings, fmt.Sprintf("room charges unavailable: %v", err))
	}

	var food []models.FoodOrder
	err = db.
		Where("LOWER(guest_name) = ? AND id_proof = ?", lower, idProof).
		Order("id ASC").
		Find(&food).Error
	if err != nil {
		bill.Warnings = append(bill.Warnings, fmt.Sprintf("food ledger unavailable: %v", err))
	} else {
		for _, line := range food {
			bill.FoodTotal += line.LineTotal
			bill.FoodItems = append(bill.FoodItems, models.BillLine{
				Description: fmt.Sprintf("%s x%d", line.Item, line.Quantity),
				Amount:      line.LineTotal,
			})
		}
	}

	var items []models.ServiceOrder
	err = db.
		Where("LOWER(guest_name) = ? AND id_proof = ?", lower, idProof).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		bill.Warnings = append(bill.Warnings, fmt.Sprintf("service ledger unavailable: %v", err))
	} else {
		for _, line := range items {
			bill.ServicesTotal += line.LineTotal
			bill.ServiceItems = append(bill.ServiceItems, models.BillLine{
				Description: fmt.Sprintf("%s x%d", line.Item, line.Quantity),
				Amount:      line.LineTotal,
			})
		}
	}

	var housekeeping []models.HousekeepingRequest
	err = db.
		Where("LOWER(guest_name) = ? AND id_proof = ?", lower, idProof).
		Order("id ASC").
		Find(&housekeeping).Error
	if err != nil {
		bill.Warnings = append(bill.Warnings, fmt.Sprintf("housekeeping ledger unavailable: %v", err))
	} else {
		for _, line := range housekeeping {
			bill.HousekeepingTotal += line.Cost
			bill.HousekeepingItems = append(bill.HousekeepingItems, models.BillLine{
				Description: line.Service,
				Amount:      line.Cost,
			})
		}
	}

	bill.GrandTotal = bill.RoomTotal + bill.FoodTotal + bill.ServicesTotal + bill.HousekeepingTotal
	return bill
}
