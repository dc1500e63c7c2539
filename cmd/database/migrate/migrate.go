package migration

import (
	"FoodBridge-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Migrate creates or updates the four tables. AutoMigrate is idempotent:
// re-running against an up-to-date schema is a no-op.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entities.Provider{}); err != nil {
		log.Fatalf("Error migrating provider database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Receiver{}); err != nil {
		log.Fatalf("Error migrating receiver database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodListing{}); err != nil {
		log.Fatalf("Error migrating food listing database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Claim{}); err != nil {
		log.Fatalf("Error migrating claim database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
