package listing

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"FoodBridge-Backend/pkg/provider"
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

func newListingService(db *gorm.DB) ListingService {
	return NewListingService(NewListingRepository(db), provider.NewProviderRepository(db))
}

func intptr(v int) *int { return &v }

func TestCreateListingDenormalizesProvider(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi", Contact: "+91-111"}).Error)
	svc := newListingService(db)

	created, err := svc.CreateListing(context.Background(), domain.CreateListingRequest{
		ProviderID: 1,
		FoodName:   "Rice",
		Quantity:   5,
		ExpiryDate: "2026-09-15",
		FoodType:   "Vegetarian",
		MealType:   "Lunch",
	})
	require.NoError(t, err)

	// Provider type is captured on the listing and location falls back to
	// the provider's city when the request leaves it empty.
	assert.Equal(t, "Restaurant", created.ProviderType)
	assert.Equal(t, "Delhi", created.Location)
	assert.Equal(t, "Annapurna Kitchen", created.ProviderName)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), created.ExpiryDate)

	got, err := svc.GetListingByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Rice", got.FoodName)
}

func TestCreateListingUnknownProvider(t *testing.T) {
	db := newTestDB(t)
	svc := newListingService(db)

	_, err := svc.CreateListing(context.Background(), domain.CreateListingRequest{
		ProviderID: 999,
		FoodName:   "Rice",
		Quantity:   5,
		ExpiryDate: "2026-09-15",
		FoodType:   "Vegetarian",
	})

	var cv *domain.ConstraintViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "food_listings", cv.Entity)
	assert.Equal(t, "provider_id", cv.Field)
}

// vanishingProviderRepository deletes the provider right after handing it
// out, standing in for a delete racing the create between its two reads.
type vanishingProviderRepository struct {
	provider.ProviderRepository
	db *gorm.DB
}

func (r *vanishingProviderRepository) GetProviderByID(ctx context.Context, id uint) (*entities.Provider, error) {
	p, err := r.ProviderRepository.GetProviderByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Delete(&entities.Provider{}, id).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func TestCreateListingProviderDeletedMidFlight(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"}).Error)

	svc := NewListingService(
		NewListingRepository(db),
		&vanishingProviderRepository{ProviderRepository: provider.NewProviderRepository(db), db: db},
	)

	_, err := svc.CreateListing(context.Background(), domain.CreateListingRequest{
		ProviderID: 1,
		FoodName:   "Rice",
		Quantity:   5,
		ExpiryDate: "2026-09-15",
		FoodType:   "Vegetarian",
	})

	var cv *domain.ConstraintViolation
	require.ErrorAs(t, err, &cv)
	assert.Equal(t, "provider_id", cv.Field)

	// No orphan row may survive the failed create.
	var count int64
	require.NoError(t, db.Model(&entities.FoodListing{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateListingRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"}).Error)
	svc := newListingService(db)

	tests := []struct {
		name string
		req  domain.CreateListingRequest
	}{
		{
			name: "zero quantity",
			req:  domain.CreateListingRequest{ProviderID: 1, FoodName: "Rice", Quantity: 0, ExpiryDate: "2026-09-15"},
		},
		{
			name: "negative quantity",
			req:  domain.CreateListingRequest{ProviderID: 1, FoodName: "Rice", Quantity: -3, ExpiryDate: "2026-09-15"},
		},
		{
			name: "unparseable expiry date",
			req:  domain.CreateListingRequest{ProviderID: 1, FoodName: "Rice", Quantity: 5, ExpiryDate: "15/09/2026"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateListing(context.Background(), tt.req)
			var ve *domain.ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestBrowseListingsFiltersAndOrder(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"}).Error)
	require.NoError(t, db.Create(&entities.Provider{ID: 2, Name: "Fresh Mart", Type: "Grocery Store", City: "Mumbai"}).Error)

	base := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	for i, l := range []*entities.FoodListing{
		{ID: 10, ProviderID: 1, FoodName: "Rice", Quantity: 5, Location: "Delhi", FoodType: "Vegetarian"},
		{ID: 11, ProviderID: 1, FoodName: "Dal", Quantity: 3, Location: "Delhi", FoodType: "Vegan"},
		{ID: 12, ProviderID: 2, FoodName: "Bread", Quantity: 2, Location: "Mumbai", FoodType: "Vegetarian"},
	} {
		l.ExpiryDate = base.AddDate(0, 0, 3-i) // later expiry for earlier ids
		require.NoError(t, db.Create(l).Error)
	}

	svc := newListingService(db)

	result, count, err := svc.BrowseListings(context.Background(), domain.ListingFilter{City: " DELHI "}, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	require.Len(t, result, 2)
	// Soonest expiry first.
	assert.Equal(t, uint(11), result[0].ID)
	assert.Equal(t, uint(10), result[1].ID)

	result, count, err = svc.BrowseListings(context.Background(), domain.ListingFilter{
		FoodType:     "vegetarian",
		ProviderName: "fresh mart",
	}, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, result, 1)
	assert.Equal(t, uint(12), result[0].ID)
	assert.Equal(t, "Fresh Mart", result[0].ProviderName)
}

func TestUpdateListingPartial(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"}).Error)
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 10, ProviderID: 1, FoodName: "Rice", Quantity: 5,
		ExpiryDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), ProviderType: "Restaurant", Location: "Delhi", FoodType: "Vegetarian",
	}).Error)
	svc := newListingService(db)

	updated, err := svc.UpdateListing(context.Background(), 10, domain.UpdateListingRequest{Quantity: intptr(8)})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Quantity)
	assert.Equal(t, "Rice", updated.FoodName)

	_, err = svc.UpdateListing(context.Background(), 10, domain.UpdateListingRequest{Quantity: intptr(-1)})
	var ve *domain.ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.UpdateListing(context.Background(), 999, domain.UpdateListingRequest{Quantity: intptr(8)})
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestDeleteListingBlockedByClaims(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"}).Error)
	require.NoError(t, db.Create(&entities.Receiver{ID: 1, Name: "Hope Shelter", Type: "Shelter", City: "Delhi"}).Error)
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 10, ProviderID: 1, FoodName: "Rice", Quantity: 5,
		ExpiryDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), Location: "Delhi",
	}).Error)
	require.NoError(t, db.Create(&entities.Claim{
		ID: 100, FoodListingID: 10, ReceiverID: 1,
		Status: entities.ClaimStatusPending, ClaimedAt: time.Now(),
	}).Error)
	svc := newListingService(db)

	err := svc.DeleteListing(context.Background(), 10)

	var dep *domain.DependencyExists
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, "food_listings", dep.Entity)
	assert.Equal(t, "claims", dep.Dependent)

	_, err = svc.GetListingByID(context.Background(), 10)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&entities.Claim{}, 100).Error)
	require.NoError(t, svc.DeleteListing(context.Background(), 10))
}
