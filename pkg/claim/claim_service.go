package claim

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/internal/utils/mailing"
	"FoodBridge-Backend/pkg/listing"
	"FoodBridge-Backend/pkg/receiver"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
)

type (
	ClaimService interface {
		CreateClaim(ctx context.Context, req domain.CreateClaimRequest) (*domain.ClaimResponse, error)
		GetClaimByID(ctx context.Context, id uint) (*domain.ClaimResponse, error)
		GetClaims(ctx context.Context, filter domain.ClaimFilter, page, limit int) ([]*domain.ClaimResponse, int64, error)
		UpdateClaimStatus(ctx context.Context, id uint, req domain.UpdateClaimStatusRequest) (*domain.ClaimResponse, error)
		DeleteClaim(ctx context.Context, id uint) error
	}

	claimService struct {
		claimRepository    ClaimRepository
		listingRepository  listing.ListingRepository
		receiverRepository receiver.ReceiverRepository
	}
)

func NewClaimService(
	claimRepository ClaimRepository,
	listingRepository listing.ListingRepository,
	receiverRepository receiver.ReceiverRepository,
) ClaimService {
	return &claimService{
		claimRepository:    claimRepository,
		listingRepository:  listingRepository,
		receiverRepository: receiverRepository,
	}
}

func validStatus(status string) bool {
	switch status {
	case entities.ClaimStatusPending, entities.ClaimStatusCompleted, entities.ClaimStatusCancelled:
		return true
	}
	return false
}

func toClaimResponse(c *entities.Claim) *domain.ClaimResponse {
	res := &domain.ClaimResponse{
		ID:            c.ID,
		FoodListingID: c.FoodListingID,
		ReceiverID:    c.ReceiverID,
		Status:        c.Status,
		ClaimedAt:     c.ClaimedAt,
	}
	if c.FoodListing != nil {
		res.FoodName = c.FoodListing.FoodName
	}
	if c.Receiver != nil {
		res.ReceiverName = c.Receiver.Name
	}
	return res
}

func (s *claimService) CreateClaim(ctx context.Context, req domain.CreateClaimRequest) (*domain.ClaimResponse, error) {
	status := req.Status
	if status == "" {
		status = entities.ClaimStatusPending
	}
	if !validStatus(status) {
		return nil, &domain.ValidationError{Field: "status", Reason: domain.ErrInvalidClaimStatus.Error()}
	}

	// Both references must resolve before the claim row is written.
	lst, err := s.listingRepository.GetListingByID(ctx, req.FoodListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.ConstraintViolation{Entity: "claims", Field: "food_listing_id"}
		}
		return nil, err
	}
	rec, err := s.receiverRepository.GetReceiverByID(ctx, req.ReceiverID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &domain.ConstraintViolation{Entity: "claims", Field: "receiver_id"}
		}
		return nil, err
	}

	claim := &entities.Claim{
		FoodListingID: req.FoodListingID,
		ReceiverID:    req.ReceiverID,
		Status:        status,
		ClaimedAt:     time.Now(),
	}

	if err := s.claimRepository.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}

	if status == entities.ClaimStatusCompleted {
		s.notifyProvider(lst, rec)
	}

	claim.FoodListing = lst
	claim.Receiver = rec
	return toClaimResponse(claim), nil
}

func (s *claimService) GetClaimByID(ctx context.Context, id uint) (*domain.ClaimResponse, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	return toClaimResponse(claim), nil
}

func (s *claimService) GetClaims(ctx context.Context, filter domain.ClaimFilter, page, limit int) ([]*domain.ClaimResponse, int64, error) {
	if filter.Status != "" && !validStatus(filter.Status) {
		return nil, 0, &domain.ValidationError{Field: "status", Reason: domain.ErrInvalidClaimStatus.Error()}
	}

	claims, count, err := s.claimRepository.GetClaims(ctx, filter, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.ClaimResponse, 0, len(claims))
	for _, c := range claims {
		result = append(result, toClaimResponse(c))
	}
	return result, count, nil
}

func (s *claimService) UpdateClaimStatus(ctx context.Context, id uint, req domain.UpdateClaimStatusRequest) (*domain.ClaimResponse, error) {
	if !validStatus(req.Status) {
		return nil, &domain.ValidationError{Field: "status", Reason: domain.ErrInvalidClaimStatus.Error()}
	}

	if err := s.claimRepository.UpdateClaimStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}

	claim, err := s.claimRepository.GetClaimByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status == entities.ClaimStatusCompleted && claim.FoodListing != nil {
		s.notifyProvider(claim.FoodListing, claim.Receiver)
	}

	return toClaimResponse(claim), nil
}

func (s *claimService) DeleteClaim(ctx context.Context, id uint) error {
	if err := s.claimRepository.DeleteClaim(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrClaimNotFound
		}
		return err
	}
	return nil
}

// notifyProvider mails the listing's provider when a claim completes.
// Best effort: failures are logged and never surface to the caller.
func (s *claimService) notifyProvider(lst *entities.FoodListing, rec *entities.Receiver) {
	if !mailing.Configured() || lst.Provider == nil {
		return
	}
	contact := lst.Provider.Contact
	if !strings.Contains(contact, "@") {
		return
	}

	receiverName := "a receiver"
	if rec != nil {
		receiverName = rec.Name
	}
	body := fmt.Sprintf(
		"<p>Your listing <b>%s</b> (quantity %d) has been claimed and marked completed by %s.</p>",
		lst.FoodName, lst.Quantity, receiverName,
	)
	if err := mailing.SendMail(contact, "Food listing claimed", body); err != nil {
		log.Printf("claim notification mail failed: %v", err)
	}
}
