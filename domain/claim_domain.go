package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateClaim = "claim created successfully"
	MessageSuccessGetClaims   = "claims retrieved successfully"
	MessageSuccessUpdateClaim = "claim updated successfully"
	MessageSuccessDeleteClaim = "claim deleted successfully"

	MessageFailedCreateClaim = "failed to create claim"
	MessageFailedGetClaims   = "failed to retrieve claims"
	MessageFailedUpdateClaim = "failed to update claim"
	MessageFailedDeleteClaim = "failed to delete claim"

	ErrClaimNotFound      = errors.New("claim not found")
	ErrInvalidClaimStatus = errors.New("invalid claim status")
	ErrClaimTerminal      = errors.New("claim is in a terminal status")
)

type (
	CreateClaimRequest struct {
		FoodListingID uint   `json:"food_listing_id" validate:"required,min=1"`
		ReceiverID    uint   `json:"receiver_id" validate:"required,min=1"`
		Status        string `json:"status" validate:"omitempty,oneof=Pending Completed Cancelled"`
	}

	UpdateClaimStatusRequest struct {
		Status string `json:"status" validate:"required,oneof=Pending Completed Cancelled"`
	}

	ClaimResponse struct {
		ID            uint      `json:"claim_id"`
		FoodListingID uint      `json:"food_listing_id"`
		ReceiverID    uint      `json:"receiver_id"`
		FoodName      string    `json:"food_name,omitempty"`
		ReceiverName  string    `json:"receiver_name,omitempty"`
		Status        string    `json:"status"`
		ClaimedAt     time.Time `json:"timestamp"`
	}

	ClaimFilter struct {
		Status     string
		ReceiverID uint
		ListingID  uint
	}
)
