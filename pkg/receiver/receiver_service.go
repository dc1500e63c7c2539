package receiver

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	ReceiverService interface {
		CreateReceiver(ctx context.Context, req domain.CreateReceiverRequest) (*domain.ReceiverResponse, error)
		GetReceiverByID(ctx context.Context, id uint) (*domain.ReceiverResponse, error)
		GetReceivers(ctx context.Context, filter domain.ReceiverFilter, page, limit int) ([]*domain.ReceiverResponse, int64, error)
		UpdateReceiver(ctx context.Context, id uint, req domain.UpdateReceiverRequest) (*domain.ReceiverResponse, error)
		DeleteReceiver(ctx context.Context, id uint) error
	}

	receiverService struct {
		receiverRepository ReceiverRepository
	}
)

func NewReceiverService(receiverRepository ReceiverRepository) ReceiverService {
	return &receiverService{receiverRepository: receiverRepository}
}

func toReceiverResponse(r *entities.Receiver) *domain.ReceiverResponse {
	return &domain.ReceiverResponse{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.Type,
		City:      r.City,
		Contact:   r.Contact,
		CreatedAt: r.CreatedAt,
	}
}

func (s *receiverService) CreateReceiver(ctx context.Context, req domain.CreateReceiverRequest) (*domain.ReceiverResponse, error) {
	receiver := &entities.Receiver{
		Name:    req.Name,
		Type:    req.Type,
		City:    req.City,
		Contact: req.Contact,
	}

	if err := s.receiverRepository.CreateReceiver(ctx, receiver); err != nil {
		return nil, err
	}

	return toReceiverResponse(receiver), nil
}

func (s *receiverService) GetReceiverByID(ctx context.Context, id uint) (*domain.ReceiverResponse, error) {
	receiver, err := s.receiverRepository.GetReceiverByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReceiverNotFound
		}
		return nil, err
	}
	return toReceiverResponse(receiver), nil
}

func (s *receiverService) GetReceivers(ctx context.Context, filter domain.ReceiverFilter, page, limit int) ([]*domain.ReceiverResponse, int64, error) {
	receivers, count, err := s.receiverRepository.GetReceivers(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ReceiverResponse, 0, len(receivers))
	for _, rec := range receivers {
		result = append(result, toReceiverResponse(rec))
	}
	return result, count, nil
}

func (s *receiverService) UpdateReceiver(ctx context.Context, id uint, req domain.UpdateReceiverRequest) (*domain.ReceiverResponse, error) {
	receiver, err := s.receiverRepository.GetReceiverByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReceiverNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		receiver.Name = *req.Name
	}
	if req.Type != nil {
		receiver.Type = *req.Type
	}
	if req.City != nil {
		receiver.City = *req.City
	}
	if req.Contact != nil {
		receiver.Contact = *req.Contact
	}

	if err := s.receiverRepository.UpdateReceiver(ctx, receiver); err != nil {
		return nil, err
	}

	return toReceiverResponse(receiver), nil
}

func (s *receiverService) DeleteReceiver(ctx context.Context, id uint) error {
	if err := s.receiverRepository.DeleteReceiver(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceiverNotFound
		}
		return err
	}
	return nil
}
