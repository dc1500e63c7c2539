package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateListing = "food listing created successfully"
	MessageSuccessGetListings   = "food listings retrieved successfully"
	MessageSuccessUpdateListing = "food listing updated successfully"
	MessageSuccessDeleteListing = "food listing deleted successfully"

	MessageFailedCreateListing = "failed to create food listing"
	MessageFailedGetListings   = "failed to retrieve food listings"
	MessageFailedUpdateListing = "failed to update food listing"
	MessageFailedDeleteListing = "failed to delete food listing"

	ErrListingNotFound   = errors.New("food listing not found")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidExpiryDate = errors.New("invalid expiry date")
)

type (
	CreateListingRequest struct {
		ProviderID uint   `json:"provider_id" validate:"required,min=1"`
		FoodName   string `json:"food_name" validate:"required"`
		Quantity   int    `json:"quantity" validate:"required,min=1"`
		ExpiryDate string `json:"expiry_date" validate:"required"`
		Location   string `json:"location" validate:"omitempty"`
		FoodType   string `json:"food_type" validate:"required"`
		MealType   string `json:"meal_type" validate:"omitempty"`
	}

	UpdateListingRequest struct {
		FoodName   *string `json:"food_name" validate:"omitempty,min=1"`
		Quantity   *int    `json:"quantity" validate:"omitempty,min=1"`
		ExpiryDate *string `json:"expiry_date" validate:"omitempty"`
		Location   *string `json:"location" validate:"omitempty"`
		FoodType   *string `json:"food_type" validate:"omitempty,min=1"`
		MealType   *string `json:"meal_type" validate:"omitempty"`
	}

	ListingResponse struct {
		ID           uint      `json:"food_id"`
		ProviderID   uint      `json:"provider_id"`
		ProviderName string    `json:"provider_name,omitempty"`
		Contact      string    `json:"provider_contact,omitempty"`
		FoodName     string    `json:"food_name"`
		Quantity     int       `json:"quantity"`
		ExpiryDate   time.Time `json:"expiry_date"`
		ProviderType string    `json:"provider_type"`
		Location     string    `json:"location"`
		FoodType     string    `json:"food_type"`
		MealType     string    `json:"meal_type"`
		CreatedAt    time.Time `json:"created_at"`
	}

	// ListingFilter narrows browse queries. Matching on City, Provider and
	// FoodType is case-insensitive and trims surrounding spaces, mirroring
	// how the listing data arrives from loosely curated sources.
	ListingFilter struct {
		City         string
		ProviderName string
		FoodType     string
	}
)
