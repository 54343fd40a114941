package services

import (
	"testing"

	"hotel-ledger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingAppendDefaultsToPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewHousekeepingService(db)

	req := models.HousekeepingRequest{
		GuestName: "Ann", IDProof: "P1", RoomNumber: "101",
		Service: "Room Cleaning", Cost: 200,
		PreferredTime: "Morning", SpecialRequest: "after 10am",
	}
	require.NoError(t, svc.Append(&req))
	assert.Equal(t, models.HousekeepingPending, req.Status)
	assert.False(t, req.RequestedAt.IsZero())

	lines, err := svc.LinesFor("ann", "P1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Room Cleaning", lines[0].Service)
	assert.Equal(t, 200, lines[0].Cost)
}

func TestHousekeepingAppendRejectsNonPositiveCost(t *testing.T) {
	db := newTestDB(t)
	svc := NewHousekeepingService(db)

	req := models.HousekeepingRequest{GuestName: "Ann", IDProof: "P1", Service: "Room Cleaning"}
	assert.ErrorIs(t, svc.Append(&req), ErrInvalidInput)

	req.Cost = -100
	assert.ErrorIs(t, svc.Append(&req), ErrInvalidInput)
}

func TestServiceOrderLedgerIsIndependentOfFood(t *testing.T) {
	db := newTestDB(t)
	items := NewServiceOrderService(db)
	food := NewFoodService(db)

	require.NoError(t, items.Append(&models.ServiceOrder{
		GuestName: "Ann", IDProof: "P1", RoomNumber: "101",
		Item: "Extra Towels", Quantity: 2, UnitPrice: 50,
	}))

	foodLines, err := food.LinesFor("Ann", "P1")
	require.NoError(t, err)
	assert.Empty(t, foodLines)

	itemLines, err := items.LinesFor("Ann", "P1")
	require.NoError(t, err)
	require.Len(t, itemLines, 1)
	assert.Equal(t, 100, itemLines[0].LineTotal)
}
