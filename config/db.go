package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-ledger/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_ledger")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// Migrate creates or updates every table the ledger uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Room{},
		&models.Occupancy{},
		&models.FoodOrder{},
		&models.ServiceOrder{},
		&models.HousekeepingRequest{},
		&models.Grievance{},
		&models.Feedback{},
		&models.MenuItem{},
	)
}

// SeedDatabase fills empty tables with the initial inventory and the priced
// catalogs. Safe to call on every startup: non-empty tables are left alone.
func SeedDatabase(db *gorm.DB) error {
	var roomCount int64
	if err := db.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if roomCount == 0 {
		rooms := []models.Room{
			{RoomNumber: "101", Type: models.RoomTypeNormal, Status: models.RoomAvailable, PricePerNight: 1000},
			{RoomNumber: "102", Type: models.RoomTypeNormal, Status: models.RoomAvailable, PricePerNight: 1000},
			{RoomNumber: "103", Type: models.RoomTypeNormal, Status: models.RoomAvailable, PricePerNight: 1000},
			{RoomNumber: "201", Type: models.RoomTypeDeluxe, Status: models.RoomAvailable, PricePerNight: 1800},
			{RoomNumber: "202", Type: models.RoomTypeDeluxe, Status: models.RoomAvailable, PricePerNight: 1800},
			{RoomNumber: "203", Type: models.RoomTypeDeluxe, Status: models.RoomAvailable, PricePerNight: 1800},
			{RoomNumber: "301", Type: models.RoomTypeSuite, Status: models.RoomAvailable, PricePerNight: 3000},
			{RoomNumber: "302", Type: models.RoomTypeSuite, Status: models.RoomAvailable, PricePerNight: 3000},
		}
		if err := db.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}
		log.Println("Rooms seeded")
	}

	var menuCount int64
	if err := db.Model(&models.MenuItem{}).Count(&menuCount).Error; err != nil {
		return fmt.Errorf("failed to count menu items: %w", err)
	}
	if menuCount == 0 {
		items := []models.MenuItem{
			{Category: models.MenuCategoryFood, Name: "Breakfast Combo", Price: 250},
			{Category: models.MenuCategoryFood, Name: "Lunch Thali", Price: 350},
			{Category: models.MenuCategoryFood, Name: "Dinner Combo", Price: 400},
			{Category: models.MenuCategoryFood, Name: "Sandwich", Price: 150},
			{Category: models.MenuCategoryFood, Name: "Pizza", Price: 450},
			{Category: models.MenuCategoryFood, Name: "Pasta", Price: 300},
			{Category: models.MenuCategoryFood, Name: "Biryani", Price: 350},
			{Category: models.MenuCategoryFood, Name: "Chinese Combo", Price: 400},
			{Category: models.MenuCategoryFood, Name: "South Indian", Price: 200},
			{Category: models.MenuCategoryFood, Name: "Dessert", Price: 150},

			{Category: models.MenuCategoryItem, Name: "Extra Towels", Price: 50},
			{Category: models.MenuCategoryItem, Name: "Toiletries Kit", Price: 100},
			{Category: models.MenuCategoryItem, Name: "Mineral Water (1L)", Price: 30},
			{Category: models.MenuCategoryItem, Name: "Newspaper", Price: 10},
			{Category: models.MenuCategoryItem, Name: "Laundry Bag", Price: 20},
			{Category: models.MenuCategoryItem, Name: "Iron", Price: 100},
			{Category: models.MenuCategoryItem, Name: "Hair Dryer", Price: 100},
			{Category: models.MenuCategoryItem, Name: "Extra Pillows", Price: 80},
			{Category: models.MenuCategoryItem, Name: "Blanket", Price: 150},
			{Category: models.MenuCategoryItem, Name: "Room Slippers", Price: 120},

			{Category: models.MenuCategoryHousekeeping, Name: "Room Cleaning", Price: 200},
			{Category: models.MenuCategoryHousekeeping, Name: "Bed Sheet Change", Price: 150},
			{Category: models.MenuCategoryHousekeeping, Name: "Towel Replacement", Price: 150},
			{Category: models.MenuCategoryHousekeeping, Name: "Bathroom Cleaning", Price: 400},
			{Category: models.MenuCategoryHousekeeping, Name: "Full Service", Price: 700},
		}
		if err := db.Create(&items).Error; err != nil {
			return fmt.Errorf("failed to seed menu items: %w", err)
		}
		log.Println("Menu items seeded")
	}

	return nil
}

// ConnectDatabase opens the MySQL connection described by the environment,
// migrates the schema and seeds initial data. The returned handle is the only
// way into the store; callers inject it into every service.
func ConnectDatabase() (*gorm.DB, error) {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := SeedDatabase(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
