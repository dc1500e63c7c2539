package listing

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ListingRepository interface {
		CreateListing(ctx context.Context, listing *entities.FoodListing) error
		GetListingByID(ctx context.Context, id uint) (*entities.FoodListing, error)
		BrowseListings(ctx context.Context, filter domain.ListingFilter, page, limit int) ([]*entities.FoodListing, int64, error)
		UpdateListing(ctx context.Context, listing *entities.FoodListing) error
		DeleteListing(ctx context.Context, id uint) error
	}

	listingRepository struct {
		db *gorm.DB
	}
)

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{db: db}
}

// CreateListing re-checks the provider reference inside the transaction so
// the insert cannot interleave with a provider delete.
func (r *listingRepository) CreateListing(ctx context.Context, listing *entities.FoodListing) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var providers int64
		if err := tx.Model(&entities.Provider{}).
			Where("id = ?", listing.ProviderID).
			Count(&providers).Error; err != nil {
			return err
		}
		if providers == 0 {
			return &domain.ConstraintViolation{Entity: "food_listings", Field: "provider_id"}
		}

		return tx.Create(listing).Error
	})
}

func (r *listingRepository) GetListingByID(ctx context.Context, id uint) (*entities.FoodListing, error) {
	var listing entities.FoodListing
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("id = ?", id).
		First(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// BrowseListings applies the optional filters in the WHERE clause and orders
// by soonest expiry first.
func (r *listingRepository) BrowseListings(ctx context.Context, filter domain.ListingFilter, page, limit int) ([]*entities.FoodListing, int64, error) {
	var listings []*entities.FoodListing
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.FoodListing{}).
		Joins("LEFT JOIN providers ON food_listings.provider_id = providers.id")

	if filter.City != "" {
		query = query.Where("LOWER(TRIM(food_listings.location)) = LOWER(TRIM(?))", filter.City)
	}
	if filter.ProviderName != "" {
		query = query.Where("LOWER(TRIM(providers.name)) = LOWER(TRIM(?))", filter.ProviderName)
	}
	if filter.FoodType != "" {
		query = query.Where("LOWER(TRIM(food_listings.food_type)) = LOWER(TRIM(?))", filter.FoodType)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Provider").
		Order("food_listings.expiry_date asc, food_listings.id asc").
		Offset(offset).Limit(limit).
		Find(&listings).Error; err != nil {
		return nil, 0, err
	}

	return listings, count, nil
}

func (r *listingRepository) UpdateListing(ctx context.Context, listing *entities.FoodListing) error {
	return r.db.WithContext(ctx).Save(listing).Error
}

// DeleteListing blocks while dependent claims exist.
func (r *listingRepository) DeleteListing(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&entities.Claim{}).
			Where("food_listing_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return &domain.DependencyExists{Entity: "food_listings", Dependent: "claims", Count: dependents}
		}

		res := tx.Where("id = ?", id).Delete(&entities.FoodListing{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
