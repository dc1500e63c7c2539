package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateReceiver = "receiver created successfully"
	MessageSuccessGetReceivers   = "receivers retrieved successfully"
	MessageSuccessUpdateReceiver = "receiver updated successfully"
	MessageSuccessDeleteReceiver = "receiver deleted successfully"

	MessageFailedCreateReceiver = "failed to create receiver"
	MessageFailedGetReceivers   = "failed to retrieve receivers"
	MessageFailedUpdateReceiver = "failed to update receiver"
	MessageFailedDeleteReceiver = "failed to delete receiver"

	ErrReceiverNotFound = errors.New("receiver not found")
)

type (
	CreateReceiverRequest struct {
		Name    string `json:"name" validate:"required"`
		Type    string `json:"type" validate:"required"`
		City    string `json:"city" validate:"required"`
		Contact string `json:"contact" validate:"omitempty"`
	}

	UpdateReceiverRequest struct {
		Name    *string `json:"name" validate:"omitempty,min=1"`
		Type    *string `json:"type" validate:"omitempty,min=1"`
		City    *string `json:"city" validate:"omitempty,min=1"`
		Contact *string `json:"contact" validate:"omitempty"`
	}

	ReceiverResponse struct {
		ID        uint      `json:"receiver_id"`
		Name      string    `json:"name"`
		Type      string    `json:"type"`
		City      string    `json:"city"`
		Contact   string    `json:"contact"`
		CreatedAt time.Time `json:"created_at"`
	}

	ReceiverFilter struct {
		City string
		Type string
	}
)
