package provider

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ProviderRepository interface {
		CreateProvider(ctx context.Context, provider *entities.Provider) error
		GetProviderByID(ctx context.Context, id uint) (*entities.Provider, error)
		GetProviders(ctx context.Context, filter domain.ProviderFilter, page, limit int) ([]*entities.Provider, int64, error)
		UpdateProvider(ctx context.Context, provider *entities.Provider) error
		DeleteProvider(ctx context.Context, id uint) error
		GetContactsByCity(ctx context.Context, city string) ([]*domain.ProviderContact, error)
	}

	providerRepository struct {
		db *gorm.DB
	}
)

func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &providerRepository{db: db}
}

func (r *providerRepository) CreateProvider(ctx context.Context, provider *entities.Provider) error {
	return r.db.WithContext(ctx).Create(provider).Error
}

func (r *providerRepository) GetProviderByID(ctx context.Context, id uint) (*entities.Provider, error) {
	var provider entities.Provider
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *providerRepository) GetProviders(ctx context.Context, filter domain.ProviderFilter, page, limit int) ([]*entities.Provider, int64, error) {
	var providers []*entities.Provider
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Provider{})
	if filter.City != "" {
		query = query.Where("LOWER(TRIM(city)) = LOWER(TRIM(?))", filter.City)
	}
	if filter.Type != "" {
		query = query.Where("LOWER(TRIM(type)) = LOWER(TRIM(?))", filter.Type)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("id asc").Find(&providers).Error; err != nil {
		return nil, 0, err
	}

	return providers, count, nil
}

// UpdateProvider saves the provider and refreshes the denormalized
// provider_type on its listings in the same transaction.
func (r *providerRepository) UpdateProvider(ctx context.Context, provider *entities.Provider) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(provider).Error; err != nil {
			return err
		}
		return tx.Model(&entities.FoodListing{}).
			Where("provider_id = ?", provider.ID).
			Update("provider_type", provider.Type).Error
	})
}

// DeleteProvider blocks while dependent listings exist. The check and the
// delete run in one transaction.
func (r *providerRepository) DeleteProvider(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&entities.FoodListing{}).
			Where("provider_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return &domain.DependencyExists{Entity: "providers", Dependent: "food_listings", Count: dependents}
		}

		res := tx.Where("id = ?", id).Delete(&entities.Provider{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *providerRepository) GetContactsByCity(ctx context.Context, city string) ([]*domain.ProviderContact, error) {
	var contacts []*domain.ProviderContact

	if err := r.db.WithContext(ctx).
		Model(&entities.Provider{}).
		Select("name, contact, address").
		Where("LOWER(TRIM(city)) = LOWER(TRIM(?))", city).
		Order("name asc, id asc").
		Scan(&contacts).Error; err != nil {
		return nil, err
	}

	return contacts, nil
}
