package receiver

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ReceiverRepository interface {
		CreateReceiver(ctx context.Context, receiver *entities.Receiver) error
		GetReceiverByID(ctx context.Context, id uint) (*entities.Receiver, error)
		GetReceivers(ctx context.Context, filter domain.ReceiverFilter, page, limit int) ([]*entities.Receiver, int64, error)
		UpdateReceiver(ctx context.Context, receiver *entities.Receiver) error
		DeleteReceiver(ctx context.Context, id uint) error
	}

	receiverRepository struct {
		db *gorm.DB
	}
)

func NewReceiverRepository(db *gorm.DB) ReceiverRepository {
	return &receiverRepository{db: db}
}

func (r *receiverRepository) CreateReceiver(ctx context.Context, receiver *entities.Receiver) error {
	return r.db.WithContext(ctx).Create(receiver).Error
}

func (r *receiverRepository) GetReceiverByID(ctx context.Context, id uint) (*entities.Receiver, error) {
	var receiver entities.Receiver
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&receiver).Error; err != nil {
		return nil, err
	}
	return &receiver, nil
}

func (r *receiverRepository) GetReceivers(ctx context.Context, filter domain.ReceiverFilter, page, limit int) ([]*entities.Receiver, int64, error) {
	var receivers []*entities.Receiver
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Receiver{})
	if filter.City != "" {
		query = query.Where("LOWER(TRIM(city)) = LOWER(TRIM(?))", filter.City)
	}
	if filter.Type != "" {
		query = query.Where("LOWER(TRIM(type)) = LOWER(TRIM(?))", filter.Type)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("id asc").Find(&receivers).Error; err != nil {
		return nil, 0, err
	}

	return receivers, count, nil
}

func (r *receiverRepository) UpdateReceiver(ctx context.Context, receiver *entities.Receiver) error {
	return r.db.WithContext(ctx).Save(receiver).Error
}

// DeleteReceiver blocks while dependent claims exist.
func (r *receiverRepository) DeleteReceiver(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var dependents int64
		if err := tx.Model(&entities.Claim{}).
			Where("receiver_id = ?", id).
			Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return &domain.DependencyExists{Entity: "receivers", Dependent: "claims", Count: dependents}
		}

		res := tx.Where("id = ?", id).Delete(&entities.Receiver{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
