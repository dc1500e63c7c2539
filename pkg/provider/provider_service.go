package provider

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	ProviderService interface {
		CreateProvider(ctx context.Context, req domain.CreateProviderRequest) (*domain.ProviderResponse, error)
		GetProviderByID(ctx context.Context, id uint) (*domain.ProviderResponse, error)
		GetProviders(ctx context.Context, filter domain.ProviderFilter, page, limit int) ([]*domain.ProviderResponse, int64, error)
		UpdateProvider(ctx context.Context, id uint, req domain.UpdateProviderRequest) (*domain.ProviderResponse, error)
		DeleteProvider(ctx context.Context, id uint) error
		GetContactsByCity(ctx context.Context, city string) ([]*domain.ProviderContact, error)
	}

	providerService struct {
		providerRepository ProviderRepository
	}
)

func NewProviderService(providerRepository ProviderRepository) ProviderService {
	return &providerService{providerRepository: providerRepository}
}

func toProviderResponse(p *entities.Provider) *domain.ProviderResponse {
	return &domain.ProviderResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Address:   p.Address,
		City:      p.City,
		Contact:   p.Contact,
		CreatedAt: p.CreatedAt,
	}
}

func (s *providerService) CreateProvider(ctx context.Context, req domain.CreateProviderRequest) (*domain.ProviderResponse, error) {
	provider := &entities.Provider{
		Name:    req.Name,
		Type:    req.Type,
		Address: req.Address,
		City:    req.City,
		Contact: req.Contact,
	}

	if err := s.providerRepository.CreateProvider(ctx, provider); err != nil {
		return nil, err
	}

	return toProviderResponse(provider), nil
}

func (s *providerService) GetProviderByID(ctx context.Context, id uint) (*domain.ProviderResponse, error) {
	provider, err := s.providerRepository.GetProviderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, err
	}
	return toProviderResponse(provider), nil
}

func (s *providerService) GetProviders(ctx context.Context, filter domain.ProviderFilter, page, limit int) ([]*domain.ProviderResponse, int64, error) {
	providers, count, err := s.providerRepository.GetProviders(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		result = append(result, toProviderResponse(p))
	}
	return result, count, nil
}

func (s *providerService) UpdateProvider(ctx context.Context, id uint, req domain.UpdateProviderRequest) (*domain.ProviderResponse, error) {
	provider, err := s.providerRepository.GetProviderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		provider.Name = *req.Name
	}
	if req.Type != nil {
		provider.Type = *req.Type
	}
	if req.Address != nil {
		provider.Address = *req.Address
	}
	if req.City != nil {
		provider.City = *req.City
	}
	if req.Contact != nil {
		provider.Contact = *req.Contact
	}

	if err := s.providerRepository.UpdateProvider(ctx, provider); err != nil {
		return nil, err
	}

	return toProviderResponse(provider), nil
}

func (s *providerService) DeleteProvider(ctx context.Context, id uint) error {
	if err := s.providerRepository.DeleteProvider(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProviderNotFound
		}
		return err
	}
	return nil
}

func (s *providerService) GetContactsByCity(ctx context.Context, city string) ([]*domain.ProviderContact, error) {
	return s.providerRepository.GetContactsByCity(ctx, city)
}
