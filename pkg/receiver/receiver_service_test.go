package receiver

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
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

func TestCreateReceiverRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewReceiverService(NewReceiverRepository(db))

	created, err := svc.CreateReceiver(context.Background(), domain.CreateReceiverRequest{
		Name:    "Hope Shelter",
		Type:    "Shelter",
		City:    "Delhi",
		Contact: "+91-444",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetReceiverByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hope Shelter", got.Name)
	assert.Equal(t, "Delhi", got.City)

	_, err = svc.GetReceiverByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrReceiverNotFound)
}

func TestDeleteReceiverBlockedByClaims(t *testing.T) {
	db := newTestDB(t)
	svc := NewReceiverService(NewReceiverRepository(db))

	require.NoError(t, db.Create(&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"}).Error)
	require.NoError(t, db.Create(&entities.Receiver{ID: 1, Name: "Hope Shelter", Type: "Shelter", City: "Delhi"}).Error)
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 10, ProviderID: 1, FoodName: "Rice", Quantity: 5,
		ExpiryDate: time.Now().AddDate(0, 0, 7), Location: "Delhi",
	}).Error)
	require.NoError(t, db.Create(&entities.Claim{
		ID: 100, FoodListingID: 10, ReceiverID: 1,
		Status: entities.ClaimStatusPending, ClaimedAt: time.Now(),
	}).Error)

	err := svc.DeleteReceiver(context.Background(), 1)

	var dep *domain.DependencyExists
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, "receivers", dep.Entity)
	assert.Equal(t, "claims", dep.Dependent)

	_, err = svc.GetReceiverByID(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&entities.Claim{}, 100).Error)
	require.NoError(t, svc.DeleteReceiver(context.Background(), 1))

	_, err = svc.GetReceiverByID(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrReceiverNotFound)
}
