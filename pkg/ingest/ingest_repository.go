package ingest

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"

	"gorm.io/gorm"
)

const insertBatchSize = 500

type (
	IngestRepository interface {
		LoadProviders(ctx context.Context, rows []*entities.Provider) error
		LoadReceivers(ctx context.Context, rows []*entities.Receiver) error
		LoadListings(ctx context.Context, rows []*entities.FoodListing) error
		LoadClaims(ctx context.Context, rows []*entities.Claim) error
	}

	ingestRepository struct {
		db *gorm.DB
	}
)

func NewIngestRepository(db *gorm.DB) IngestRepository {
	return &ingestRepository{db: db}
}

func (r *ingestRepository) LoadProviders(ctx context.Context, rows []*entities.Provider) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
}

func (r *ingestRepository) LoadReceivers(ctx context.Context, rows []*entities.Receiver) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
}

// LoadListings resolves the provider references and inserts in the same
// transaction, so a concurrent provider delete cannot slip between the two.
func (r *ingestRepository) LoadListings(ctx context.Context, rows []*entities.FoodListing) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		providerIDs := make([]uint, 0, len(rows))
		for _, row := range rows {
			providerIDs = append(providerIDs, row.ProviderID)
		}

		existing, err := existingIDs(tx, &entities.Provider{}, providerIDs)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if !existing[row.ProviderID] {
				return &domain.ConstraintViolation{Entity: "food_listings", Field: "provider_id"}
			}
		}

		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
}

// LoadClaims resolves both reference sets and inserts in one transaction.
func (r *ingestRepository) LoadClaims(ctx context.Context, rows []*entities.Claim) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listingIDs := make([]uint, 0, len(rows))
		receiverIDs := make([]uint, 0, len(rows))
		for _, row := range rows {
			listingIDs = append(listingIDs, row.FoodListingID)
			receiverIDs = append(receiverIDs, row.ReceiverID)
		}

		existingListings, err := existingIDs(tx, &entities.FoodListing{}, listingIDs)
		if err != nil {
			return err
		}
		existingReceivers, err := existingIDs(tx, &entities.Receiver{}, receiverIDs)
		if err != nil {
			return err
		}
		for _, row := range rows {
			if !existingListings[row.FoodListingID] {
				return &domain.ConstraintViolation{Entity: "claims", Field: "food_listing_id"}
			}
			if !existingReceivers[row.ReceiverID] {
				return &domain.ConstraintViolation{Entity: "claims", Field: "receiver_id"}
			}
		}

		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
}

func existingIDs(tx *gorm.DB, model interface{}, ids []uint) (map[uint]bool, error) {
	var found []uint
	if err := tx.Model(model).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	existing := make(map[uint]bool, len(found))
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}
