package report

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"bytes"
	"context"
	"encoding/csv"
	"path/filepath"
	"strconv"
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

func seedProviders(t *testing.T, db *gorm.DB, providers ...*entities.Provider) {
	t.Helper()
	for _, p := range providers {
		require.NoError(t, db.Create(p).Error)
	}
}

func TestProvidersPerCity(t *testing.T) {
	db := newTestDB(t)
	seedProviders(t, db,
		&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"},
		&entities.Provider{ID: 2, Name: "Fresh Mart", Type: "Grocery Store", City: "Delhi"},
		&entities.Provider{ID: 3, Name: "Sagar Caterers", Type: "Catering Service", City: "Mumbai"},
	)

	svc := NewReportService(NewReportRepository(db))
	report, err := svc.GetReport(context.Background(), 1, domain.ReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"city", "num_providers"}, report.Columns)
	require.Len(t, report.Rows, 2)
	assert.Equal(t, []string{"Delhi", "2"}, report.Rows[0])
	assert.Equal(t, []string{"Mumbai", "1"}, report.Rows[1])
}

func TestClaimsPerListingAndProviderTotals(t *testing.T) {
	db := newTestDB(t)
	seedProviders(t, db, &entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"})
	require.NoError(t, db.Create(&entities.Receiver{ID: 1, Name: "Hope Shelter", Type: "Shelter", City: "Delhi"}).Error)
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 10, ProviderID: 1, FoodName: "Rice", Quantity: 5,
		ExpiryDate: time.Now().AddDate(0, 0, 7), Location: "Delhi", FoodType: "Vegetarian", MealType: "Lunch",
	}).Error)
	require.NoError(t, db.Create(&entities.Claim{
		ID: 100, FoodListingID: 10, ReceiverID: 1,
		Status: entities.ClaimStatusCompleted, ClaimedAt: time.Now(),
	}).Error)

	svc := NewReportService(NewReportRepository(db))

	claims, err := svc.GetReport(context.Background(), 9, domain.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, claims.Rows, 1)
	assert.Equal(t, []string{"10", "Rice", "1"}, claims.Rows[0])

	donated, err := svc.GetReport(context.Background(), 14, domain.ReportFilter{ProviderID: 1})
	require.NoError(t, err)
	require.Len(t, donated.Rows, 1)
	assert.Equal(t, []string{"1", "Annapurna Kitchen", "5"}, donated.Rows[0])
}

func TestStatusBreakdownSumsToHundred(t *testing.T) {
	db := newTestDB(t)
	seedProviders(t, db, &entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"})
	require.NoError(t, db.Create(&entities.Receiver{ID: 1, Name: "Hope Shelter", Type: "Shelter", City: "Delhi"}).Error)
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 10, ProviderID: 1, FoodName: "Rice", Quantity: 5,
		ExpiryDate: time.Now().AddDate(0, 0, 7), Location: "Delhi",
	}).Error)

	// One claim of each status: raw thirds do not round to a clean sum, so
	// the residue rule has to make up the difference.
	for i, status := range []string{entities.ClaimStatusPending, entities.ClaimStatusCompleted, entities.ClaimStatusCancelled} {
		require.NoError(t, db.Create(&entities.Claim{
			ID: uint(100 + i), FoodListingID: 10, ReceiverID: 1,
			Status: status, ClaimedAt: time.Now(),
		}).Error)
	}

	svc := NewReportService(NewReportRepository(db))
	report, err := svc.GetReport(context.Background(), 11, domain.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, report.Rows, 3)

	sum := 0.0
	for _, row := range report.Rows {
		pct, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		sum += pct
	}
	assert.InDelta(t, 100.0, sum, 0.0001)
}

func TestProviderTypeTieBreakIsDeterministic(t *testing.T) {
	db := newTestDB(t)
	seedProviders(t, db,
		&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"},
		&entities.Provider{ID: 2, Name: "Hope NGO", Type: "NGO", City: "Delhi"},
	)
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 10, ProviderID: 1, FoodName: "Rice", Quantity: 10,
		ExpiryDate: time.Now().AddDate(0, 0, 7), Location: "Delhi",
	}).Error)
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 11, ProviderID: 2, FoodName: "Bread", Quantity: 10,
		ExpiryDate: time.Now().AddDate(0, 0, 7), Location: "Delhi",
	}).Error)

	svc := NewReportService(NewReportRepository(db))

	first, err := svc.GetReport(context.Background(), 3, domain.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, first.Rows, 2)
	// Equal totals: the type holding the earliest provider id wins.
	assert.Equal(t, "Restaurant", first.Rows[0][0])

	for i := 0; i < 5; i++ {
		again, err := svc.GetReport(context.Background(), 3, domain.ReportFilter{})
		require.NoError(t, err)
		assert.Equal(t, first.Rows, again.Rows)
	}
}

func TestProviderEfficiencyTieBreak(t *testing.T) {
	db := newTestDB(t)
	seedProviders(t, db,
		&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"},
		&entities.Provider{ID: 2, Name: "Fresh Mart", Type: "Grocery Store", City: "Delhi"},
	)
	require.NoError(t, db.Create(&entities.Receiver{ID: 1, Name: "Hope Shelter", Type: "Shelter", City: "Delhi"}).Error)

	// Both providers end at 50% with one completed claim each: the tie
	// resolves on provider id.
	for i, providerID := range []uint{1, 2} {
		listingID := uint(10 + i)
		require.NoError(t, db.Create(&entities.FoodListing{
			ID: listingID, ProviderID: providerID, FoodName: "Rice", Quantity: 5,
			ExpiryDate: time.Now().AddDate(0, 0, 7), Location: "Delhi",
		}).Error)
		require.NoError(t, db.Create(&entities.Claim{
			ID: uint(100 + 2*i), FoodListingID: listingID, ReceiverID: 1,
			Status: entities.ClaimStatusCompleted, ClaimedAt: time.Now(),
		}).Error)
		require.NoError(t, db.Create(&entities.Claim{
			ID: uint(101 + 2*i), FoodListingID: listingID, ReceiverID: 1,
			Status: entities.ClaimStatusPending, ClaimedAt: time.Now(),
		}).Error)
	}

	svc := NewReportService(NewReportRepository(db))

	first, err := svc.GetReport(context.Background(), 10, domain.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, first.Rows, 2)
	assert.Equal(t, "1", first.Rows[0][0])
	assert.Equal(t, "50.0", first.Rows[0][4])

	for i := 0; i < 5; i++ {
		again, err := svc.GetReport(context.Background(), 10, domain.ReportFilter{})
		require.NoError(t, err)
		assert.Equal(t, first.Rows, again.Rows)
	}
}

func TestTotalAvailableExcludesExpiredAndCompleted(t *testing.T) {
	db := newTestDB(t)
	seedProviders(t, db, &entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"})
	require.NoError(t, db.Create(&entities.Receiver{ID: 1, Name: "Hope Shelter", Type: "Shelter", City: "Delhi"}).Error)

	// Counted: fresh and unclaimed.
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 10, ProviderID: 1, FoodName: "Rice", Quantity: 5,
		ExpiryDate: time.Now().AddDate(0, 0, 7), Location: "Delhi",
	}).Error)
	// Excluded: already expired.
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 11, ProviderID: 1, FoodName: "Bread", Quantity: 3,
		ExpiryDate: time.Now().AddDate(0, 0, -2), Location: "Delhi",
	}).Error)
	// Excluded: has a completed claim.
	require.NoError(t, db.Create(&entities.FoodListing{
		ID: 12, ProviderID: 1, FoodName: "Dal", Quantity: 7,
		ExpiryDate: time.Now().AddDate(0, 0, 7), Location: "Delhi",
	}).Error)
	require.NoError(t, db.Create(&entities.Claim{
		ID: 100, FoodListingID: 12, ReceiverID: 1,
		Status: entities.ClaimStatusCompleted, ClaimedAt: time.Now(),
	}).Error)

	svc := NewReportService(NewReportRepository(db))
	report, err := svc.GetReport(context.Background(), 6, domain.ReportFilter{})
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, []string{"5"}, report.Rows[0])
}

func TestListingTrendAscending(t *testing.T) {
	db := newTestDB(t)
	seedProviders(t, db, &entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi"})

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		listing := &entities.FoodListing{
			ID: uint(10 + i), ProviderID: 1, FoodName: "Rice", Quantity: 2 + i,
			ExpiryDate: base.AddDate(0, 1, 0), Location: "Delhi",
		}
		listing.CreatedAt = base.AddDate(0, 0, 2-i) // inserted newest first
		require.NoError(t, db.Create(listing).Error)
	}

	svc := NewReportService(NewReportRepository(db))
	report, err := svc.GetReport(context.Background(), 16, domain.ReportFilter{Granularity: "day"})
	require.NoError(t, err)
	require.Len(t, report.Rows, 3)

	for i := 1; i < len(report.Rows); i++ {
		assert.Less(t, report.Rows[i-1][0], report.Rows[i][0])
	}

	_, err = svc.GetReport(context.Background(), 16, domain.ReportFilter{Granularity: "hourly"})
	assert.ErrorIs(t, err, domain.ErrInvalidGranularity)
}

func TestUnknownReportID(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(NewReportRepository(db))

	_, err := svc.GetReport(context.Background(), 0, domain.ReportFilter{})
	assert.ErrorIs(t, err, domain.ErrReportNotFound)

	_, err = svc.GetReport(context.Background(), 17, domain.ReportFilter{})
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestExportCSVRoundTrip(t *testing.T) {
	db := newTestDB(t)
	seedProviders(t, db,
		&entities.Provider{ID: 1, Name: "Annapurna Kitchen", Type: "Restaurant", City: "Delhi", Contact: "+91-111", Address: "12, MG Road"},
		&entities.Provider{ID: 2, Name: "Fresh Mart", Type: "Grocery Store", City: "Delhi", Contact: "fresh@mart.example", Address: "4, Park St"},
	)

	svc := NewReportService(NewReportRepository(db))
	report, err := svc.GetReport(context.Background(), 4, domain.ReportFilter{City: "Delhi"})
	require.NoError(t, err)

	data, err := svc.ExportCSV(report)
	require.NoError(t, err)

	parsed, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, len(report.Rows)+1)
	assert.Equal(t, report.Columns, parsed[0])
	for i, row := range report.Rows {
		assert.Equal(t, row, parsed[i+1])
	}
}
