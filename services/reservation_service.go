package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"hotel-ledger/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService drives the room state machine:
// Available -> Booked -> Available. It is the only writer of room status and
// the only creator/remover of occupancy rows, and it always moves the two
// together inside one transaction.
type ReservationService struct {
	DB          *gorm.DB
	Rooms       *RoomService
	Occupancies *OccupancyService
	Billing     *BillingService
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{
		DB:          db,
		Rooms:       NewRoomService(db),
		Occupancies: NewOccupancyService(db),
		Billing:     NewBillingService(db),
	}
}

// sqlite (tests) has no FOR UPDATE; writes there serialize on the database
// file lock instead.
func withUpdateLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CheckIn allocates the first available room of the requested type, freezes
// the stay total and books the room. Fails before any write on bad input, a
// duplicate active stay or a full house.
func (s *ReservationService) CheckIn(name, idProof, roomType string, nights int, phone string) (models.Occupancy, error) {
	name = strings.TrimSpace(name)
	idProof = strings.TrimSpace(idProof)
	if name == "" || idProof == "" || nights <= 0 {
		return models.Occupancy{}, ErrInvalidInput
	}

	var occ models.Occupancy
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := findActiveOccupancy(tx, name, idProof); err == nil {
			return ErrAlreadyCheckedIn
		} else if !errors.Is(err, ErrNotCheckedIn) {
			return err
		}

		room, err := s.Rooms.FindAvailableByType(withUpdateLock(tx), roomType)
		if err != nil {
			return err
		}

		occ = models.Occupancy{
			GuestName:  name,
			IDProof:    idProof,
			RoomNumber: room.RoomNumber,
			RoomType:   room.Type,
			Nights:     nights,
			RoomTotal:  room.PricePerNight * nights,
			Phone:      phone,
			CheckInAt:  time.Now(),
		}
		if err := s.Occupancies.Create(tx, &occ); err != nil {
			return err
		}
		return s.Rooms.MarkBooked(tx, room.RoomNumber)
	})
	if err != nil {
		return models.Occupancy{}, err
	}

	log.Printf("checked in %s: room %s (%s), %d night(s), total %d",
		occ.GuestName, occ.RoomNumber, occ.RoomType, occ.Nights, occ.RoomTotal)
	return occ, nil
}

// CheckOut computes the final bill from the stay that is about to be removed,
// removes it and frees the room, all in one transaction. Returns the
// authoritative bill and the closed stay.
func (s *ReservationService) CheckOut(name, idProof string) (models.Bill, models.Occupancy, error) {
	name = strings.TrimSpace(name)
	idProof = strings.TrimSpace(idProof)
	if name == "" || idProof == "" {
		return models.Bill{}, models.Occupancy{}, ErrInvalidInput
	}

	var bill models.Bill
	var closed models.Occupancy
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		occ, err := findActiveOccupancy(withUpdateLock(tx), name, idProof)
		if err != nil {
			return err
		}

		// bill first: the aggregator needs the stay row still present
		bill = computeBill(tx, name, idProof)

		if err := tx.Delete(&occ).Error; err != nil {
			return err
		}
		closed = occ
		return s.Rooms.MarkAvailable(tx, occ.RoomNumber)
	})
	if err != nil {
		return models.Bill{}, models.Occupancy{}, err
	}

	log.Printf("checked out %s: room %s freed, grand total %d",
		closed.GuestName, closed.RoomNumber, bill.GrandTotal)
	return bill, closed, nil
}

// ViewBill returns the running bill for a checked-in guest. Read-only; a
// guest without an active stay is told to check in first.
func (s *ReservationService) ViewBill(name, idProof string) (models.Bill, error) {
	if _, err := s.Occupancies.FindActive(name, idProof); err != nil {
		return models.Bill{}, err
	}
	return s.Billing.ComputeBill(name, idProof)
}

// VerifyGuest confirms the identity pair belongs to an active stay and
// returns it, so the front desk can gate orders and requests on it.
func (s *ReservationService) VerifyGuest(name, idProof string) (models.Occupancy, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(idProof) == "" {
		return models.Occupancy{}, ErrInvalidInput
	}
	return s.Occupancies.FindActive(name, idProof)
}
