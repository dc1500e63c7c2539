package report

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type (
	ReportRepository interface {
		ProvidersPerCity(ctx context.Context, f domain.ReportFilter) ([]*domain.CityProviderCountRow, error)
		ReceiversPerCity(ctx context.Context, f domain.ReportFilter) ([]*domain.CityReceiverCountRow, error)
		QuantityByProviderType(ctx context.Context, f domain.ReportFilter) ([]*domain.ProviderTypeQuantityRow, error)
		ProviderContactsByCity(ctx context.Context, f domain.ReportFilter) ([]*domain.ProviderContact, error)
		ReceiversByCompletedClaims(ctx context.Context, f domain.ReportFilter) ([]*domain.ReceiverClaimRankRow, error)
		TotalAvailableQuantity(ctx context.Context, f domain.ReportFilter, now time.Time) (int64, error)
		ListingsPerCity(ctx context.Context, f domain.ReportFilter) ([]*domain.CityListingCountRow, error)
		ListingsByFoodType(ctx context.Context, f domain.ReportFilter) ([]*domain.FoodTypeCountRow, error)
		ClaimsPerListing(ctx context.Context, f domain.ReportFilter) ([]*domain.ListingClaimCountRow, error)
		ClaimCountsByProvider(ctx context.Context, f domain.ReportFilter) ([]*domain.ProviderEfficiencyRow, error)
		ClaimCountsByStatus(ctx context.Context, f domain.ReportFilter) (map[string]int64, error)
		AvgQuantityPerReceiver(ctx context.Context, f domain.ReportFilter) ([]*domain.ReceiverAvgQuantityRow, error)
		ClaimsByMealType(ctx context.Context, f domain.ReportFilter) ([]*domain.MealTypeClaimRow, error)
		QuantityPerProvider(ctx context.Context, f domain.ReportFilter) ([]*domain.ProviderDonationRow, error)
		ListingTrend(ctx context.Context, f domain.ReportFilter, granularity string) ([]*domain.TrendPointRow, error)
	}

	reportRepository struct {
		db *gorm.DB
	}
)

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// cityEq builds the case- and space-insensitive match used for all
// city/food-type filter predicates.
func cityEq(column string) string {
	return fmt.Sprintf("LOWER(TRIM(%s)) = LOWER(TRIM(?))", column)
}

func (r *reportRepository) ProvidersPerCity(ctx context.Context, f domain.ReportFilter) ([]*domain.CityProviderCountRow, error) {
	var rows []*domain.CityProviderCountRow

	query := r.db.WithContext(ctx).Model(&entities.Provider{}).
		Select("city, COUNT(*) AS num_providers")
	if f.City != "" {
		query = query.Where(cityEq("city"), f.City)
	}

	if err := query.Group("city").
		Order("num_providers DESC, city ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) ReceiversPerCity(ctx context.Context, f domain.ReportFilter) ([]*domain.CityReceiverCountRow, error) {
	var rows []*domain.CityReceiverCountRow

	query := r.db.WithContext(ctx).Model(&entities.Receiver{}).
		Select("city, COUNT(*) AS num_receivers")
	if f.City != "" {
		query = query.Where(cityEq("city"), f.City)
	}

	if err := query.Group("city").
		Order("num_receivers DESC, city ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// QuantityByProviderType ties on total quantity break by the earliest
// provider id seen within the type.
func (r *reportRepository) QuantityByProviderType(ctx context.Context, f domain.ReportFilter) ([]*domain.ProviderTypeQuantityRow, error) {
	var rows []*domain.ProviderTypeQuantityRow

	query := `
		SELECT p.type AS provider_type, SUM(f.quantity) AS total_quantity
		FROM food_listings f
		JOIN providers p ON f.provider_id = p.id
	`
	args := []interface{}{}
	if f.City != "" {
		query += " WHERE LOWER(TRIM(p.city)) = LOWER(TRIM(?))"
		args = append(args, f.City)
	}
	query += `
		GROUP BY p.type
		ORDER BY total_quantity DESC, MIN(p.id) ASC
	`

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) ProviderContactsByCity(ctx context.Context, f domain.ReportFilter) ([]*domain.ProviderContact, error) {
	var rows []*domain.ProviderContact

	query := r.db.WithContext(ctx).Model(&entities.Provider{}).
		Select("name, contact, address")
	if f.City != "" {
		query = query.Where(cityEq("city"), f.City)
	}

	if err := query.Order("name ASC, id ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) ReceiversByCompletedClaims(ctx context.Context, f domain.ReportFilter) ([]*domain.ReceiverClaimRankRow, error) {
	var rows []*domain.ReceiverClaimRankRow

	query := `
		SELECT r.id AS receiver_id, r.name, COUNT(c.id) AS completed_claims
		FROM claims c
		JOIN receivers r ON c.receiver_id = r.id
		WHERE c.status = ?
	`
	args := []interface{}{entities.ClaimStatusCompleted}
	if f.City != "" {
		query += " AND LOWER(TRIM(r.city)) = LOWER(TRIM(?))"
		args = append(args, f.City)
	}
	query += `
		GROUP BY r.id, r.name
		ORDER BY completed_claims DESC, r.id ASC
	`

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalAvailableQuantity sums listings whose expiry date falls on or after
// the start of today and that have no Completed claim.
func (r *reportRepository) TotalAvailableQuantity(ctx context.Context, f domain.ReportFilter, now time.Time) (int64, error) {
	var result struct {
		Total int64
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	query := `
		SELECT COALESCE(SUM(f.quantity), 0) AS total
		FROM food_listings f
		WHERE f.expiry_date >= ?
		  AND NOT EXISTS (
			SELECT 1 FROM claims c
			WHERE c.food_listing_id = f.id AND c.status = ?
		  )
	`
	args := []interface{}{startOfDay, entities.ClaimStatusCompleted}
	if f.City != "" {
		query += " AND LOWER(TRIM(f.location)) = LOWER(TRIM(?))"
		args = append(args, f.City)
	}
	if f.FoodType != "" {
		query += " AND LOWER(TRIM(f.food_type)) = LOWER(TRIM(?))"
		args = append(args, f.FoodType)
	}

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&result).Error; err != nil {
		return 0, err
	}
	return result.Total, nil
}

func (r *reportRepository) ListingsPerCity(ctx context.Context, f domain.ReportFilter) ([]*domain.CityListingCountRow, error) {
	var rows []*domain.CityListingCountRow

	query := r.db.WithContext(ctx).Model(&entities.FoodListing{}).
		Select("location AS city, COUNT(*) AS listings_count")
	if f.FoodType != "" {
		query = query.Where(cityEq("food_type"), f.FoodType)
	}

	if err := query.Group("location").
		Order("listings_count DESC, city ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) ListingsByFoodType(ctx context.Context, f domain.ReportFilter) ([]*domain.FoodTypeCountRow, error) {
	var rows []*domain.FoodTypeCountRow

	query := r.db.WithContext(ctx).Model(&entities.FoodListing{}).
		Select("food_type, COUNT(*) AS cnt")
	if f.City != "" {
		query = query.Where(cityEq("location"), f.City)
	}

	if err := query.Group("food_type").
		Order("cnt DESC, food_type ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) ClaimsPerListing(ctx context.Context, f domain.ReportFilter) ([]*domain.ListingClaimCountRow, error) {
	var rows []*domain.ListingClaimCountRow

	query := `
		SELECT f.id AS food_id, f.food_name, COUNT(c.id) AS claim_count
		FROM food_listings f
		LEFT JOIN claims c ON c.food_listing_id = f.id
	`
	args := []interface{}{}
	if f.ProviderID != 0 {
		query += " WHERE f.provider_id = ?"
		args = append(args, f.ProviderID)
	}
	query += `
		GROUP BY f.id, f.food_name
		ORDER BY claim_count DESC, f.id ASC
	`

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ClaimCountsByProvider returns raw completed/total claim counts per
// provider. The efficiency ratio and its ordering are computed by the
// service so rounding and tie-breaks stay in one place.
func (r *reportRepository) ClaimCountsByProvider(ctx context.Context, f domain.ReportFilter) ([]*domain.ProviderEfficiencyRow, error) {
	var rows []*domain.ProviderEfficiencyRow

	query := `
		SELECT p.id AS provider_id, p.name,
		       SUM(CASE WHEN c.status = ? THEN 1 ELSE 0 END) AS completed_claims,
		       COUNT(c.id) AS total_claims
		FROM claims c
		JOIN food_listings f ON c.food_listing_id = f.id
		JOIN providers p ON f.provider_id = p.id
	`
	args := []interface{}{entities.ClaimStatusCompleted}
	if f.City != "" {
		query += " WHERE LOWER(TRIM(p.city)) = LOWER(TRIM(?))"
		args = append(args, f.City)
	}
	query += " GROUP BY p.id, p.name"

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) ClaimCountsByStatus(ctx context.Context, f domain.ReportFilter) (map[string]int64, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}

	query := r.db.WithContext(ctx).Model(&entities.Claim{}).
		Select("status, COUNT(*) AS cnt")
	if !f.From.IsZero() {
		query = query.Where("timestamp >= ?", f.From)
	}
	if !f.To.IsZero() {
		query = query.Where("timestamp <= ?", f.To)
	}

	if err := query.Group("status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Cnt
	}
	return counts, nil
}

func (r *reportRepository) AvgQuantityPerReceiver(ctx context.Context, f domain.ReportFilter) ([]*domain.ReceiverAvgQuantityRow, error) {
	var rows []*domain.ReceiverAvgQuantityRow

	query := `
		SELECT r.id AS receiver_id, r.name, AVG(f.quantity) AS avg_quantity
		FROM claims c
		JOIN food_listings f ON c.food_listing_id = f.id
		JOIN receivers r ON c.receiver_id = r.id
		WHERE c.status = ?
	`
	args := []interface{}{entities.ClaimStatusCompleted}
	if f.City != "" {
		query += " AND LOWER(TRIM(r.city)) = LOWER(TRIM(?))"
		args = append(args, f.City)
	}
	query += `
		GROUP BY r.id, r.name
		ORDER BY avg_quantity DESC, r.id ASC
	`

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) ClaimsByMealType(ctx context.Context, f domain.ReportFilter) ([]*domain.MealTypeClaimRow, error) {
	var rows []*domain.MealTypeClaimRow

	query := `
		SELECT f.meal_type, COUNT(c.id) AS times_claimed
		FROM claims c
		JOIN food_listings f ON c.food_listing_id = f.id
	`
	args := []interface{}{}
	if f.City != "" {
		query += " WHERE LOWER(TRIM(f.location)) = LOWER(TRIM(?))"
		args = append(args, f.City)
	}
	query += `
		GROUP BY f.meal_type
		ORDER BY times_claimed DESC, f.meal_type ASC
	`

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) QuantityPerProvider(ctx context.Context, f domain.ReportFilter) ([]*domain.ProviderDonationRow, error) {
	var rows []*domain.ProviderDonationRow

	query := `
		SELECT p.id AS provider_id, p.name, SUM(f.quantity) AS total_donated
		FROM food_listings f
		JOIN providers p ON f.provider_id = p.id
		WHERE 1=1
	`
	args := []interface{}{}
	if f.ProviderID != 0 {
		query += " AND p.id = ?"
		args = append(args, f.ProviderID)
	}
	if f.City != "" {
		query += " AND LOWER(TRIM(p.city)) = LOWER(TRIM(?))"
		args = append(args, f.City)
	}
	query += `
		GROUP BY p.id, p.name
		ORDER BY total_donated DESC, p.id ASC
	`

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// periodExpr formats created_at into the grouping key for the requested
// granularity, per SQL dialect.
func (r *reportRepository) periodExpr(granularity string) (string, error) {
	sqlite := r.db.Dialector.Name() == "sqlite"

	switch granularity {
	case "", "day":
		if sqlite {
			return "strftime('%Y-%m-%d', created_at)", nil
		}
		return "to_char(created_at, 'YYYY-MM-DD')", nil
	case "week":
		if sqlite {
			return "strftime('%Y-W%W', created_at)", nil
		}
		return `to_char(created_at, 'IYYY-"W"IW')`, nil
	case "month":
		if sqlite {
			return "strftime('%Y-%m', created_at)", nil
		}
		return "to_char(created_at, 'YYYY-MM')", nil
	}
	return "", domain.ErrInvalidGranularity
}

func (r *reportRepository) ListingTrend(ctx context.Context, f domain.ReportFilter, granularity string) ([]*domain.TrendPointRow, error) {
	var rows []*domain.TrendPointRow

	expr, err := r.periodExpr(granularity)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT %s AS period, COUNT(*) AS listings, SUM(quantity) AS total_quantity
		FROM food_listings
		WHERE 1=1
	`, expr)
	args := []interface{}{}
	if !f.From.IsZero() {
		query += " AND created_at >= ?"
		args = append(args, f.From)
	}
	if !f.To.IsZero() {
		query += " AND created_at <= ?"
		args = append(args, f.To)
	}
	if f.City != "" {
		query += " AND LOWER(TRIM(location)) = LOWER(TRIM(?))"
		args = append(args, f.City)
	}
	query += " GROUP BY period ORDER BY period ASC"

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
