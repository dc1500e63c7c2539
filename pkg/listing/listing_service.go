package listing

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/pkg/provider"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

const expiryDateLayout = "2006-01-02"

type (
	ListingService interface {
		CreateListing(ctx context.Context, req domain.CreateListingRequest) (*domain.ListingResponse, error)
		GetListingByID(ctx context.Context, id uint) (*domain.ListingResponse, error)
		BrowseListings(ctx context.Context, filter domain.ListingFilter, page, limit int) ([]*domain.ListingResponse, int64, error)
		UpdateListing(ctx context.Context, id uint, req domain.UpdateListingRequest) (*domain.ListingResponse, error)
		DeleteListing(ctx context.Context, id uint) error
	}

	listingService struct {
		listingRepository  ListingRepository
		providerRepository provider.ProviderRepository
	}
)

func NewListingService(listingRepository ListingRepository, providerRepository provider.ProviderRepository) ListingService {
	return &listingService{
		listingRepository:  listingRepository,
		providerRepository: providerRepository,
	}
}

func toListingResponse(l *entities.FoodListing) *domain.ListingResponse {
	res := &domain.ListingResponse{
		ID:           l.ID,
		ProviderID:   l.ProviderID,
		FoodName:     l.FoodName,
		Quantity:     l.Quantity,
		ExpiryDate:   l.ExpiryDate,
		ProviderType: l.ProviderType,
		Location:     l.Location,
		FoodType:     l.FoodType,
		MealType:     l.MealType,
		CreatedAt:    l.CreatedAt,
	}
	if l.Provider != nil {
		res.ProviderName = l.Provider.Name
		res.Contact = l.Provider.Contact
	}
	return res
}

func parseExpiryDate(value string) (time.Time, error) {
	if t, err := time.Parse(expiryDateLayout, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidExpiryDate
	}
	return t, nil
}

func (s *listingService) CreateListing(ctx context.Context, req domain.CreateListingRequest) (*domain.ListingResponse, error) {
	if req.Quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: domain.ErrInvalidQuantity.Error()}
	}

	expiryDate, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return nil, &domain.ValidationError{Field: "expiry_date", Reason: err.Error()}
	}

	// Resolve the provider reference before writing anything.
	prov, err := s.providerRepository.GetProviderByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.ConstraintViolation{Entity: "food_listings", Field: "provider_id"}
		}
		return nil, err
	}

	location := req.Location
	if location == "" {
		location = prov.City
	}

	listing := &entities.FoodListing{
		ProviderID:   req.ProviderID,
		FoodName:     req.FoodName,
		Quantity:     req.Quantity,
		ExpiryDate:   expiryDate,
		ProviderType: prov.Type,
		Location:     location,
		FoodType:     req.FoodType,
		MealType:     req.MealType,
	}

	if err := s.listingRepository.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	listing.Provider = prov
	return toListingResponse(listing), nil
}

func (s *listingService) GetListingByID(ctx context.Context, id uint) (*domain.ListingResponse, error) {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return toListingResponse(listing), nil
}

func (s *listingService) BrowseListings(ctx context.Context, filter domain.ListingFilter, page, limit int) ([]*domain.ListingResponse, int64, error) {
	listings, count, err := s.listingRepository.BrowseListings(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ListingResponse, 0, len(listings))
	for _, l := range listings {
		result = append(result, toListingResponse(l))
	}
	return result, count, nil
}

func (s *listingService) UpdateListing(ctx context.Context, id uint, req domain.UpdateListingRequest) (*domain.ListingResponse, error) {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}

	if req.Quantity != nil {
		if *req.Quantity <= 0 {
			return nil, &domain.ValidationError{Field: "quantity", Reason: domain.ErrInvalidQuantity.Error()}
		}
		listing.Quantity = *req.Quantity
	}
	if req.ExpiryDate != nil {
		expiryDate, err := parseExpiryDate(*req.ExpiryDate)
		if err != nil {
			return nil, &domain.ValidationError{Field: "expiry_date", Reason: err.Error()}
		}
		listing.ExpiryDate = expiryDate
	}
	if req.FoodName != nil {
		listing.FoodName = *req.FoodName
	}
	if req.Location != nil {
		listing.Location = *req.Location
	}
	if req.FoodType != nil {
		listing.FoodType = *req.FoodType
	}
	if req.MealType != nil {
		listing.MealType = *req.MealType
	}

	// Detach the preloaded association so Save touches only the listing row.
	prov := listing.Provider
	listing.Provider = nil

	if err := s.listingRepository.UpdateListing(ctx, listing); err != nil {
		return nil, err
	}

	listing.Provider = prov
	return toListingResponse(listing), nil
}

func (s *listingService) DeleteListing(ctx context.Context, id uint) error {
	if err := s.listingRepository.DeleteListing(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrListingNotFound
		}
		return err
	}
	return nil
}
