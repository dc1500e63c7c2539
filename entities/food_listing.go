package entities

import (
	"time"
)

type FoodListing struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"food_id"`
	ProviderID   uint      `gorm:"index;not null" json:"provider_id"`
	FoodName     string    `gorm:"not null" json:"food_name"`
	Quantity     int       `gorm:"not null" json:"quantity"`
	ExpiryDate   time.Time `gorm:"index" json:"expiry_date"`
	ProviderType string    `json:"provider_type"` // denormalized from Provider.Type at write time
	Location     string    `gorm:"index" json:"location"`
	FoodType     string    `gorm:"index" json:"food_type"` // "Vegetarian", "Non-Vegetarian", "Vegan", ...
	MealType     string    `json:"meal_type"`              // "Breakfast", "Lunch", "Dinner", "Snacks"

	Provider *Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	Claims   []*Claim  `gorm:"foreignKey:FoodListingID" json:"-"`
	Timestamp
}
