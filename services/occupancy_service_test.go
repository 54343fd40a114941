package services

import (
	"testing"
	"time"

	"hotel-ledger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createStay(t *testing.T, svc *OccupancyService, name, idProof, roomNumber string) models.Occupancy {
	t.Helper()
	occ := models.Occupancy{
		GuestName:  name,
		IDProof:    idProof,
		RoomNumber: roomNumber,
		RoomType:   models.RoomTypeNormal,
		Nights:     2,
		RoomTotal:  2000,
		Phone:      "5550100",
		CheckInAt:  time.Now(),
	}
	require.NoError(t, svc.Create(svc.DB, &occ))
	return occ
}

func TestFindActiveMatchesNameCaseInsensitively(t *testing.T) {
	db := newTestDB(t)
	svc := NewOccupancyService(db)
	createStay(t, svc, "Ann Kapoor", "P1", "101")

	for _, name := range []string{"Ann Kapoor", "ann kapoor", "ANN KAPOOR", "  Ann Kapoor  "} {
		occ, err := svc.FindActive(name, "P1")
		require.NoError(t, err, "lookup with %q", name)
		assert.Equal(t, "101", occ.RoomNumber)
	}
}

func TestFindActiveRequiresExactIDProof(t *testing.T) {
	db := newTestDB(t)
	svc := NewOccupancyService(db)
	createStay(t, svc, "Ann", "P1", "101")

	_, err := svc.FindActive("Ann", "p1")
	assert.ErrorIs(t, err, ErrNotCheckedIn)
	_, err = svc.FindActive("Ann", "P2")
	assert.ErrorIs(t, err, ErrNotCheckedIn)
}

func TestFindActiveFirstMatchWins(t *testing.T) {
	db := newTestDB(t)
	svc := NewOccupancyService(db)
	first := createStay(t, svc, "Ann", "P1", "101")
	createStay(t, svc, "ann", "P1", "102")

	occ, err := svc.FindActive("Ann", "P1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, occ.ID)
}

func TestRemoveReturnsStayAndKeepsOthers(t *testing.T) {
	db := newTestDB(t)
	svc := NewOccupancyService(db)
	createStay(t, svc, "Ann", "P1", "101")
	createStay(t, svc, "Bob", "P2", "102")

	removed, err := svc.Remove(db, "ann", "P1")
	require.NoError(t, err)
	assert.Equal(t, "101", removed.RoomNumber)
	assert.Equal(t, 2000, removed.RoomTotal)

	_, err = svc.FindActive("Ann", "P1")
	assert.ErrorIs(t, err, ErrNotCheckedIn)

	// the other stay is untouched
	occ, err := svc.FindActive("Bob", "P2")
	require.NoError(t, err)
	assert.Equal(t, "102", occ.RoomNumber)
}

func TestRemoveMissIsNotCheckedIn(t *testing.T) {
	db := newTestDB(t)
	svc := NewOccupancyService(db)

	_, err := svc.Remove(db, "Nobody", "P9")
	assert.ErrorIs(t, err, ErrNotCheckedIn)
}
