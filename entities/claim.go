package entities

import (
	"time"
)

const (
	ClaimStatusPending   = "Pending"
	ClaimStatusCompleted = "Completed"
	ClaimStatusCancelled = "Cancelled"
)

type Claim struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"claim_id"`
	FoodListingID uint      `gorm:"index;not null;column:food_listing_id" json:"food_listing_id"`
	ReceiverID    uint      `gorm:"index;not null" json:"receiver_id"`
	Status        string    `gorm:"not null;default:Pending" json:"status"` // Pending, Completed, Cancelled
	ClaimedAt     time.Time `gorm:"column:timestamp;index" json:"timestamp"`

	FoodListing *FoodListing `gorm:"foreignKey:FoodListingID" json:"food_listing,omitempty"`
	Receiver    *Receiver    `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	Timestamp
}

// Terminal reports whether the claim status admits no further transition.
func (c *Claim) Terminal() bool {
	return c.Status == ClaimStatusCompleted || c.Status == ClaimStatusCancelled
}
