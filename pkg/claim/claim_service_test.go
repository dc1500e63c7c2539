package claim

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/pkg/listing"
	"FoodBridge-Backend/pkg/receiver"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entities.Provider{},
		&entities.Receiver{},
		&entities.FoodListing{},
		&entities.Claim{},
	))
	return db
}

func newClaimService(db *gorm.DB) ClaimService {
	return NewClaimService(
		NewClaimRepository(db),
		listing.NewListingRepository(db),
		receiver.NewReceiverRepository(db),
	)
}

func seedClaimFixtures(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi", Contact: "+91-111"}).Error)
	require.NoError(t, db.Create(&entities.Receiver{ID: 1, Name: "Hope Shelter", Type: "Shelter", City: "Delhi"}).Error)
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 10, ProviderID: 1, FoodName: "Rice", Quantity: 5,
		ExpiryDate: time.Now().AddDate(0, 0, 7), Location: "Delhi", FoodType: "Vegetarian", MealType: "Lunch",
	}).Error)
}

func TestCreateClaimDefaultsToPending(t *testing.T) {
	db := newTestDB(t)
	seedClaimFixtures(t, db)
	svc := newClaimService(db)

	created, err := svc.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodListingID: 10,
		ReceiverID:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusPending, created.Status)
	assert.Equal(t, "Rice", created.FoodName)
	assert.Equal(t, "Hope Shelter", created.ReceiverName)
	assert.False(t, created.ClaimedAt.IsZero())

	got, err := svc.GetClaimByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, entities.ClaimStatusPending, got.Status)
}

func TestCreateClaimUnknownListing(t *testing.T) {
	db := newTestDB(t)
	seedClaimFixtures(t, db)
	svc := newClaimService(db)

	_, err := svc.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodListingID: 999,
		ReceiverID:    1,
	})

	var cv *domain.ConstraintViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "claims", cv.Entity)
	assert.Equal(t, "food_listing_id", cv.Field)

	var count int64
	require.NoError(t, db.Model(&entities.Claim{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateClaimUnknownReceiver(t *testing.T) {
	db := newTestDB(t)
	seedClaimFixtures(t, db)
	svc := newClaimService(db)

	_, err := svc.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodListingID: 10,
		ReceiverID:    999,
	})

	var cv *domain.ConstraintViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "receiver_id", cv.Field)
}

// vanishingListingRepository deletes the listing right after handing it out,
// standing in for a delete racing the create between its two reads.
type vanishingListingRepository struct {
	listing.ListingRepository
	db *gorm.DB
}

func (r *vanishingListingRepository) GetListingByID(ctx context.Context, id uint) (*entities.FoodListing, error) {
	l, err := r.ListingRepository.GetListingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&entities.FoodListing{}, id).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func TestCreateClaimListingDeletedMidFlight(t *testing.T) {
	db := newTestDB(t)
	seedClaimFixtures(t, db)

	svc := NewClaimService(
		NewClaimRepository(db),
		&vanishingListingRepository{ListingRepository: listing.NewListingRepository(db), db: db},
		receiver.NewReceiverRepository(db),
	)

	_, err := svc.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodListingID: 10,
		ReceiverID:    1,
	})

	var cv *domain.ConstraintViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "food_listing_id", cv.Field)

	var count int64
	require.NoError(t, db.Model(&entities.Claim{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateClaimStatusTerminalIsFinal(t *testing.T) {
	db := newTestDB(t)
	seedClaimFixtures(t, db)
	svc := newClaimService(db)

	created, err := svc.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodListingID: 10,
		ReceiverID:    1,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateClaimStatus(context.Background(), created.ID, domain.UpdateClaimStatusRequest{
		Status: entities.ClaimStatusCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusCompleted, updated.Status)

	// Re-applying the same terminal status is a no-op, not an error.
	_, err = svc.UpdateClaimStatus(context.Background(), created.ID, domain.UpdateClaimStatusRequest{
		Status: entities.ClaimStatusCompleted,
	})
	require.NoError(t, err)

	_, err = svc.UpdateClaimStatus(context.Background(), created.ID, domain.UpdateClaimStatusRequest{
		Status: entities.ClaimStatusCancelled,
	})
	assert.ErrorIs(t, err, domain.ErrClaimTerminal)

	got, err := svc.GetClaimByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.ClaimStatusCompleted, got.Status)
}

func TestUpdateClaimStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	seedClaimFixtures(t, db)
	svc := newClaimService(db)

	_, err := svc.UpdateClaimStatus(context.Background(), 1, domain.UpdateClaimStatusRequest{Status: "Delivered"})

	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestGetClaimsFilterByStatus(t *testing.T) {
	db := newTestDB(t)
	seedClaimFixtures(t, db)
	svc := newClaimService(db)

	for _, status := range []string{entities.ClaimStatusPending, entities.ClaimStatusPending, entities.ClaimStatusCancelled} {
		require.NoError(t, db.Create(&entities.Claim{
			FoodListingID: 10, ReceiverID: 1, Status: status, ClaimedAt: time.Now(),
		}).Error)
	}

	result, count, err := svc.GetClaims(context.Background(), domain.ClaimFilter{Status: entities.ClaimStatusPending}, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	for _, c := range result {
		assert.Equal(t, entities.ClaimStatusPending, c.Status)
	}
}

func TestDeleteClaim(t *testing.T) {
	db := newTestDB(t)
	seedClaimFixtures(t, db)
	svc := newClaimService(db)

	created, err := svc.CreateClaim(context.Background(), domain.CreateClaimRequest{
		FoodListingID: 10,
		ReceiverID:    1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteClaim(context.Background(), created.ID))

	_, err = svc.GetClaimByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrClaimNotFound)

	assert.ErrorIs(t, svc.DeleteClaim(context.Background(), created.ID), domain.ErrClaimNotFound)
}
