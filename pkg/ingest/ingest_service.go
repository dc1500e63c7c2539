package ingest

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type (
	IngestService interface {
		IngestCSV(ctx context.Context, table string, src io.Reader) (*domain.IngestResult, error)
	}

	ingestService struct {
		ingestRepository IngestRepository
	}
)

func NewIngestService(ingestRepository IngestRepository) IngestService {
	return &ingestService{ingestRepository: ingestRepository}
}

// record is one CSV data row with header-keyed access and typed coercion.
// Every failure carries the 1-based data row number for the batch report.
type record struct {
	row    int
	fields map[string]string
}

// normalizeHeader matches columns by name: case-insensitive, underscores and
// surrounding spaces ignored, so "Provider_ID" binds to "providerid".
func normalizeHeader(h string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), "_", "")
}

func (rec *record) str(column string) string {
	return strings.TrimSpace(rec.fields[normalizeHeader(column)])
}

func (rec *record) uintField(column string) (uint, error) {
	raw := rec.str(column)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &domain.MalformedRecord{Row: rec.row, Column: column, Cause: "not a valid integer"}
	}
	return uint(v), nil
}

func (rec *record) intField(column string) (int, error) {
	raw := rec.str(column)
	if raw == "" {
		return 0, &domain.MalformedRecord{Row: rec.row, Column: column, Cause: "value is required"}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.MalformedRecord{Row: rec.row, Column: column, Cause: "not a valid integer"}
	}
	return v, nil
}

func (rec *record) dateField(column string) (time.Time, error) {
	raw := rec.str(column)
	if raw == "" {
		return time.Time{}, &domain.MalformedRecord{Row: rec.row, Column: column, Cause: "value is required"}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &domain.MalformedRecord{Row: rec.row, Column: column, Cause: "not a valid date"}
}

// parseCSV reads the whole source. A wrong field count surfaces from the
// csv reader and is reported as a malformed record.
func parseCSV(src io.Reader) ([]*record, error) {
	reader := csv.NewReader(src)

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, domain.ErrEmptyBatch
		}
		return nil, &domain.MalformedRecord{Row: 0, Column: "", Cause: err.Error()}
	}
	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalizeHeader(h)
	}

	var records []*record
	row := 0
	for {
		raw, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &domain.MalformedRecord{Row: row, Column: "", Cause: err.Error()}
		}

		fields := make(map[string]string, len(columns))
		for i, col := range columns {
			fields[col] = raw[i]
		}
		records = append(records, &record{row: row, fields: fields})
	}

	if len(records) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	return records, nil
}

// IngestCSV loads one tabular source. Policy is fail-fast: the first
// malformed row or unresolved reference aborts the whole batch and nothing
// is written.
func (s *ingestService) IngestCSV(ctx context.Context, table string, src io.Reader) (*domain.IngestResult, error) {
	records, err := parseCSV(src)
	if err != nil {
		return nil, err
	}

	var inserted int
	switch table {
	case "providers":
		inserted, err = s.loadProviders(ctx, records)
	case "receivers":
		inserted, err = s.loadReceivers(ctx, records)
	case "food_listings":
		inserted, err = s.loadListings(ctx, records)
	case "claims":
		inserted, err = s.loadClaims(ctx, records)
	default:
		return nil, domain.ErrUnknownTable
	}
	if err != nil {
		return nil, err
	}

	return &domain.IngestResult{
		BatchID:  uuid.New().String(),
		Table:    table,
		Inserted: inserted,
	}, nil
}

func (s *ingestService) loadProviders(ctx context.Context, records []*record) (int, error) {
	rows := make([]*entities.Provider, 0, len(records))
	for _, rec := range records {
		id, err := rec.uintField("provider_id")
		if err != nil {
			return 0, err
		}
		name := rec.str("name")
		if name == "" {
			return 0, &domain.MalformedRecord{Row: rec.row, Column: "name", Cause: "value is required"}
		}
		rows = append(rows, &entities.Provider{
			ID:      id,
			Name:    name,
			Type:    rec.str("type"),
			Address: rec.str("address"),
			City:    rec.str("city"),
			Contact: rec.str("contact"),
		})
	}

	if err := s.ingestRepository.LoadProviders(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *ingestService) loadReceivers(ctx context.Context, records []*record) (int, error) {
	rows := make([]*entities.Receiver, 0, len(records))
	for _, rec := range records {
		id, err := rec.uintField("receiver_id")
		if err != nil {
			return 0, err
		}
		name := rec.str("name")
		if name == "" {
			return 0, &domain.MalformedRecord{Row: rec.row, Column: "name", Cause: "value is required"}
		}
		rows = append(rows, &entities.Receiver{
			ID:      id,
			Name:    name,
			Type:    rec.str("type"),
			City:    rec.str("city"),
			Contact: rec.str("contact"),
		})
	}

	if err := s.ingestRepository.LoadReceivers(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *ingestService) loadListings(ctx context.Context, records []*record) (int, error) {
	rows := make([]*entities.FoodListing, 0, len(records))

	for _, rec := range records {
		id, err := rec.uintField("food_id")
		if err != nil {
			return 0, err
		}
		providerID, err := rec.uintField("provider_id")
		if err != nil {
			return 0, err
		}
		if providerID == 0 {
			return 0, &domain.MalformedRecord{Row: rec.row, Column: "provider_id", Cause: "value is required"}
		}
		quantity, err := rec.intField("quantity")
		if err != nil {
			return 0, err
		}
		if quantity <= 0 {
			return 0, &domain.MalformedRecord{Row: rec.row, Column: "quantity", Cause: "must be positive"}
		}
		expiry, err := rec.dateField("expiry_date")
		if err != nil {
			return 0, err
		}

		rows = append(rows, &entities.FoodListing{
			ID:           id,
			ProviderID:   providerID,
			FoodName:     rec.str("food_name"),
			Quantity:     quantity,
			ExpiryDate:   expiry,
			ProviderType: rec.str("provider_type"),
			Location:     rec.str("location"),
			FoodType:     rec.str("food_type"),
			MealType:     rec.str("meal_type"),
		})
	}

	// Reference resolution happens inside the load transaction.
	if err := s.ingestRepository.LoadListings(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *ingestService) loadClaims(ctx context.Context, records []*record) (int, error) {
	rows := make([]*entities.Claim, 0, len(records))

	for _, rec := range records {
		id, err := rec.uintField("claim_id")
		if err != nil {
			return 0, err
		}
		listingID, err := rec.uintField("food_id")
		if err != nil {
			return 0, err
		}
		if listingID == 0 {
			// the export format also appears with the long column name
			listingID, err = rec.uintField("food_listing_id")
			if err != nil {
				return 0, err
			}
		}
		if listingID == 0 {
			return 0, &domain.MalformedRecord{Row: rec.row, Column: "food_id", Cause: "value is required"}
		}
		receiverID, err := rec.uintField("receiver_id")
		if err != nil {
			return 0, err
		}
		if receiverID == 0 {
			return 0, &domain.MalformedRecord{Row: rec.row, Column: "receiver_id", Cause: "value is required"}
		}

		status := rec.str("status")
		switch status {
		case entities.ClaimStatusPending, entities.ClaimStatusCompleted, entities.ClaimStatusCancelled:
		default:
			return 0, &domain.MalformedRecord{Row: rec.row, Column: "status", Cause: "not a valid claim status"}
		}

		claimedAt, err := rec.dateField("timestamp")
		if err != nil {
			return 0, err
		}

		rows = append(rows, &entities.Claim{
			ID:            id,
			FoodListingID: listingID,
			ReceiverID:    receiverID,
			Status:        status,
			ClaimedAt:     claimedAt,
		})
	}

	if err := s.ingestRepository.LoadClaims(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
