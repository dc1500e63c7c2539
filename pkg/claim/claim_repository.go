package claim

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ClaimRepository interface {
		CreateClaim(ctx context.Context, claim *entities.Claim) error
		GetClaimByID(ctx context.Context, id uint) (*entities.Claim, error)
		GetClaims(ctx context.Context, filter domain.ClaimFilter, page, limit int) ([]*entities.Claim, int64, error)
		UpdateClaimStatus(ctx context.Context, id uint, status string) error
		DeleteClaim(ctx context.Context, id uint) error
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{db: db}
}

// CreateClaim re-checks both references inside the transaction so the insert
// cannot interleave with a listing or receiver delete.
func (r *claimRepository) CreateClaim(ctx context.Context, claim *entities.Claim) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var listings int64
		if err := tx.Model(&entities.FoodListing{}).
			Where("id = ?", claim.FoodListingID).
			Count(&listings).Error; err != nil {
			return err
		}
		if listings == 0 {
			return &domain.ConstraintViolation{Entity: "claims", Field: "food_listing_id"}
		}

		var receivers int64
		if err := tx.Model(&entities.Receiver{}).
			Where("id = ?", claim.ReceiverID).
			Count(&receivers).Error; err != nil {
			return err
		}
		if receivers == 0 {
			return &domain.ConstraintViolation{Entity: "claims", Field: "receiver_id"}
		}

		return tx.Create(claim).Error
	})
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id uint) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("FoodListing").
		Preload("FoodListing.Provider").
		Preload("Receiver").
		Where("id = ?", id).
		First(&claim).Error; err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetClaims(ctx context.Context, filter domain.ClaimFilter, page, limit int) ([]*entities.Claim, int64, error) {
	var claims []*entities.Claim
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Claim{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ReceiverID != 0 {
		query = query.Where("receiver_id = ?", filter.ReceiverID)
	}
	if filter.ListingID != 0 {
		query = query.Where("food_listing_id = ?", filter.ListingID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("FoodListing").
		Preload("Receiver").
		Order("timestamp desc, id asc").
		Offset(offset).Limit(limit).
		Find(&claims).Error; err != nil {
		return nil, 0, err
	}

	return claims, count, nil
}

// UpdateClaimStatus re-reads the claim inside the transaction so the
// terminal-status check and the write cannot interleave with another update.
func (r *claimRepository) UpdateClaimStatus(ctx context.Context, id uint, status string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entities.Claim
		if err := tx.Where("id = ?", id).First(&current).Error; err != nil {
			return err
		}
		if current.Terminal() && current.Status != status {
			return domain.ErrClaimTerminal
		}

		return tx.Model(&entities.Claim{}).
			Where("id = ?", id).
			Update("status", status).Error
	})
}

func (r *claimRepository) DeleteClaim(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Claim{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
