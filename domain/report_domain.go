package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetReport    = "report generated successfully"
	MessageSuccessExportReport = "report exported successfully"

	MessageFailedGetReport    = "failed to generate report"
	MessageFailedExportReport = "failed to export report"

	ErrReportNotFound      = errors.New("unknown report id")
	ErrInvalidGranularity  = errors.New("granularity must be day, week or month")
	ErrInvalidReportFilter = errors.New("invalid report filter")
)

// ReportCount is the number of predefined analytical queries.
const ReportCount = 16

type (
	// Report is the uniform result envelope: an ordered sequence of rows
	// under a fixed column header. Rows are already formatted with the
	// report's rounding rules, so JSON and CSV render the same values.
	Report struct {
		ID      int        `json:"report_id"`
		Name    string     `json:"name"`
		Columns []string   `json:"columns"`
		Rows    [][]string `json:"rows"`
	}

	// ReportFilter predicates are applied in the WHERE clause, before any
	// aggregation. Zero values mean "no filter".
	ReportFilter struct {
		City        string
		ProviderID  uint
		FoodType    string
		From        time.Time
		To          time.Time
		Granularity string // report 16 only: day, week, month
	}

	CityProviderCountRow struct {
		City         string `json:"city"`
		NumProviders int64  `json:"num_providers"`
	}

	CityReceiverCountRow struct {
		City         string `json:"city"`
		NumReceivers int64  `json:"num_receivers"`
	}

	ProviderTypeQuantityRow struct {
		ProviderType  string `json:"provider_type"`
		TotalQuantity int64  `json:"total_quantity"`
	}

	ReceiverClaimRankRow struct {
		ReceiverID      uint   `json:"receiver_id"`
		Name            string `json:"name"`
		CompletedClaims int64  `json:"completed_claims"`
	}

	CityListingCountRow struct {
		City          string `json:"city"`
		ListingsCount int64  `json:"listings_count"`
	}

	FoodTypeCountRow struct {
		FoodType string `json:"food_type"`
		Count    int64  `json:"cnt"`
	}

	ListingClaimCountRow struct {
		FoodID     uint   `json:"food_id"`
		FoodName   string `json:"food_name"`
		ClaimCount int64  `json:"claim_count"`
	}

	ProviderEfficiencyRow struct {
		ProviderID      uint    `json:"provider_id"`
		Name            string  `json:"name"`
		CompletedClaims int64   `json:"completed_claims"`
		TotalClaims     int64   `json:"total_claims"`
		PctCompleted    float64 `json:"pct_completed"`
	}

	ReceiverAvgQuantityRow struct {
		ReceiverID  uint    `json:"receiver_id"`
		Name        string  `json:"name"`
		AvgQuantity float64 `json:"avg_quantity_per_claim"`
	}

	MealTypeClaimRow struct {
		MealType     string `json:"meal_type"`
		TimesClaimed int64  `json:"times_claimed"`
	}

	ProviderDonationRow struct {
		ProviderID   uint   `json:"provider_id"`
		Name         string `json:"name"`
		TotalDonated int64  `json:"total_donated"`
	}

	TrendPointRow struct {
		Period        string `json:"period"`
		Listings      int64  `json:"listings"`
		TotalQuantity int64  `json:"total_quantity"`
	}
)
