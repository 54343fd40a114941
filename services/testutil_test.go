package services

import (
	"path/filepath"
	"testing"

	"hotel-ledger/config"
	"hotel-ledger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database with the real migrations and
// seed data (8 rooms, priced catalogs).
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "ledger.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.SeedDatabase(db))
	return db
}

// assertRoomOccupancyInvariant checks that a room is Booked if and only if
// exactly one active stay references it.
func assertRoomOccupancyInvariant(t *testing.T, db *gorm.DB) {
	t.Helper()

	var rooms []models.Room
	require.NoError(t, db.Find(&rooms).Error)
	for _, room := range rooms {
		var stays int64
		require.NoError(t, db.Model(&models.Occupancy{}).
			Where("room_number = ?", room.RoomNumber).
			Count(&stays).Error)
		if room.Status == models.RoomBooked {
			assert.EqualValues(t, 1, stays, "room %s is Booked but has %d active stays", room.RoomNumber, stays)
		} else {
			assert.EqualValues(t, 0, stays, "room %s is Available but has %d active stays", room.RoomNumber, stays)
		}
	}
}
