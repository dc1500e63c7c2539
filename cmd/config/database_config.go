package config

import (
	"FoodBridge-Backend/internal/utils"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the single storage handle for the process. The driver is
// chosen by DB_DRIVER: "sqlite" keeps the original file-backed deployment,
// "postgres" (default) is the hosted setup.
func ConnectDB() (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch utils.GetConfig("DB_DRIVER") {
	case "sqlite":
		path := utils.GetConfig("DB_PATH")
		if path == "" {
			path = "data/food_waste.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}
	return db, nil
}
