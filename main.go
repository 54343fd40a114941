package main

import (
	"log"

	"github.com/joho/godotenv"

	"hotel-ledger/config"
	"hotel-ledger/services"
)

// Ops bootstrap: opens the store, applies migrations and seed data, and
// reports the inventory. The presentation layer links against services/
// directly; there is no network surface here.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer func() {
		if err := config.Close(db); err != nil {
			log.Printf("warning: failed to close database: %v", err)
		}
	}()
	log.Println("database connection established, migrations and seed applied")

	rooms, err := services.NewRoomService(db).List()
	if err != nil {
		log.Fatalf("failed to read inventory: %v", err)
	}
	for _, room := range rooms {
		log.Printf("room %s: %s, %s, %d/night", room.RoomNumber, room.Type, room.Status, room.PricePerNight)
	}
	log.Printf("%d rooms in inventory", len(rooms))
}
