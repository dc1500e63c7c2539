package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateProvider = "provider created successfully"
	MessageSuccessGetProviders   = "providers retrieved successfully"
	MessageSuccessUpdateProvider = "provider updated successfully"
	MessageSuccessDeleteProvider = "provider deleted successfully"
	MessageSuccessGetContacts    = "provider contacts retrieved successfully"

	MessageFailedCreateProvider = "failed to create provider"
	MessageFailedGetProviders   = "failed to retrieve providers"
	MessageFailedUpdateProvider = "failed to update provider"
	MessageFailedDeleteProvider = "failed to delete provider"
	MessageFailedGetContacts    = "failed to retrieve provider contacts"

	ErrProviderNotFound = errors.New("provider not found")
)

type (
	CreateProviderRequest struct {
		Name    string `json:"name" validate:"required"`
		Type    string `json:"type" validate:"required"`
		Address string `json:"address" validate:"omitempty"`
		City    string `json:"city" validate:"required"`
		Contact string `json:"contact" validate:"omitempty"`
	}

	UpdateProviderRequest struct {
		Name    *string `json:"name" validate:"omitempty,min=1"`
		Type    *string `json:"type" validate:"omitempty,min=1"`
		Address *string `json:"address" validate:"omitempty"`
		City    *string `json:"city" validate:"omitempty,min=1"`
		Contact *string `json:"contact" validate:"omitempty"`
	}

	ProviderResponse struct {
		ID        uint      `json:"provider_id"`
		Name      string    `json:"name"`
		Type      string    `json:"type"`
		Address   string    `json:"address"`
		City      string    `json:"city"`
		Contact   string    `json:"contact"`
		CreatedAt time.Time `json:"created_at"`
	}

	ProviderContact struct {
		Name    string `json:"name"`
		Contact string `json:"contact"`
		Address string `json:"address"`
	}

	ProviderFilter struct {
		City string
		Type string
	}
)
