package report

import (
	"FoodBridge-Backend/domain"
	"FoodBridge-Backend/entities"
	"bytes"
	"context"
	"encoding/csv"
	"math"
	"sort"
	"strconv"
	"time"
)

type (
	ReportService interface {
		GetReport(ctx context.Context, id int, f domain.ReportFilter) (*domain.Report, error)
		ExportCSV(report *domain.Report) ([]byte, error)
	}

	reportService struct {
		reportRepository ReportRepository
	}
)

func NewReportService(reportRepository ReportRepository) ReportService {
	return &reportService{reportRepository: reportRepository}
}

var reportNames = [domain.ReportCount + 1]string{
	"",
	"Providers per city",
	"Receivers per city",
	"Food quantity by provider type",
	"Provider contacts by city",
	"Receivers by completed claims",
	"Total available food quantity",
	"Food listings per city",
	"Most common food types",
	"Claims per food listing",
	"Provider distribution efficiency",
	"Claim status breakdown",
	"Average completed claim quantity per receiver",
	"Most claimed meal types",
	"Total quantity donated per provider",
	"Food type distribution",
	"Listing trend over time",
}

// roundHalfUp1 rounds to one decimal, halves away from zero is not needed
// here since all inputs are non-negative.
func roundHalfUp1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatUint(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func formatPct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func (s *reportService) GetReport(ctx context.Context, id int, f domain.ReportFilter) (*domain.Report, error) {
	if id < 1 || id > domain.ReportCount {
		return nil, domain.ErrReportNotFound
	}

	report := &domain.Report{ID: id, Name: reportNames[id]}

	var err error
	switch id {
	case 1:
		err = s.providersPerCity(ctx, f, report)
	case 2:
		err = s.receiversPerCity(ctx, f, report)
	case 3:
		err = s.quantityByProviderType(ctx, f, report)
	case 4:
		err = s.providerContacts(ctx, f, report)
	case 5:
		err = s.receiversByCompletedClaims(ctx, f, report)
	case 6:
		err = s.totalAvailableQuantity(ctx, f, report)
	case 7:
		err = s.listingsPerCity(ctx, f, report)
	case 8:
		err = s.listingsByFoodType(ctx, f, report)
	case 9:
		err = s.claimsPerListing(ctx, f, report)
	case 10:
		err = s.providerEfficiency(ctx, f, report)
	case 11:
		err = s.claimStatusBreakdown(ctx, f, report)
	case 12:
		err = s.avgQuantityPerReceiver(ctx, f, report)
	case 13:
		err = s.claimsByMealType(ctx, f, report)
	case 14:
		err = s.quantityPerProvider(ctx, f, report)
	case 15:
		err = s.foodTypeDistribution(ctx, f, report)
	case 16:
		err = s.listingTrend(ctx, f, report)
	}
	if err != nil {
		return nil, err
	}

	return report, nil
}

// ExportCSV serializes the report's rows under its column header. It is a
// pure serialization of the returned sequence, not a separate query path.
func (s *reportService) ExportCSV(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(report.Columns); err != nil {
		return nil, err
	}
	for _, row := range report.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *reportService) providersPerCity(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ProvidersPerCity(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"city", "num_providers"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{row.City, formatInt(row.NumProviders)})
	}
	return nil
}

func (s *reportService) receiversPerCity(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ReceiversPerCity(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"city", "num_receivers"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{row.City, formatInt(row.NumReceivers)})
	}
	return nil
}

func (s *reportService) quantityByProviderType(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.QuantityByProviderType(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"provider_type", "total_quantity"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{row.ProviderType, formatInt(row.TotalQuantity)})
	}
	return nil
}

func (s *reportService) providerContacts(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ProviderContactsByCity(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"name", "contact", "address"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{row.Name, row.Contact, row.Address})
	}
	return nil
}

func (s *reportService) receiversByCompletedClaims(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ReceiversByCompletedClaims(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"receiver_id", "name", "completed_claims"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{formatUint(row.ReceiverID), row.Name, formatInt(row.CompletedClaims)})
	}
	return nil
}

func (s *reportService) totalAvailableQuantity(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	total, err := s.reportRepository.TotalAvailableQuantity(ctx, f, time.Now())
	if err != nil {
		return err
	}
	report.Columns = []string{"total_available_quantity"}
	report.Rows = append(report.Rows, []string{formatInt(total)})
	return nil
}

func (s *reportService) listingsPerCity(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ListingsPerCity(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"city", "listings_count"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{row.City, formatInt(row.ListingsCount)})
	}
	return nil
}

func (s *reportService) listingsByFoodType(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ListingsByFoodType(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"food_type", "cnt"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{row.FoodType, formatInt(row.Count)})
	}
	return nil
}

func (s *reportService) claimsPerListing(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ClaimsPerListing(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"food_id", "food_name", "claim_count"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{formatUint(row.FoodID), row.FoodName, formatInt(row.ClaimCount)})
	}
	return nil
}

// providerEfficiency ranks providers by the share of completed claims over
// all claims on their listings. Ratio descending, then absolute completed
// count descending, then provider id ascending.
func (s *reportService) providerEfficiency(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ClaimCountsByProvider(ctx, f)
	if err != nil {
		return err
	}

	for _, row := range rows {
		if row.TotalClaims > 0 {
			row.PctCompleted = roundHalfUp1(100 * float64(row.CompletedClaims) / float64(row.TotalClaims))
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].PctCompleted != rows[j].PctCompleted {
			return rows[i].PctCompleted > rows[j].PctCompleted
		}
		if rows[i].CompletedClaims != rows[j].CompletedClaims {
			return rows[i].CompletedClaims > rows[j].CompletedClaims
		}
		return rows[i].ProviderID < rows[j].ProviderID
	})

	report.Columns = []string{"provider_id", "name", "completed_claims", "total_claims", "pct_completed"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{
			formatUint(row.ProviderID),
			row.Name,
			formatInt(row.CompletedClaims),
			formatInt(row.TotalClaims),
			formatPct(row.PctCompleted),
		})
	}
	return nil
}

// claimStatusBreakdown emits the three statuses in their declaration order.
// Percentages round half-up to one decimal and the largest bucket absorbs
// the rounding residue so the column sums to exactly 100.0.
func (s *reportService) claimStatusBreakdown(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	counts, err := s.reportRepository.ClaimCountsByStatus(ctx, f)
	if err != nil {
		return err
	}

	report.Columns = []string{"status", "cnt", "pct"}

	statuses := []string{entities.ClaimStatusPending, entities.ClaimStatusCompleted, entities.ClaimStatusCancelled}
	var total int64
	for _, st := range statuses {
		total += counts[st]
	}
	if total == 0 {
		return nil
	}

	pcts := make([]float64, len(statuses))
	sum := 0.0
	largest := 0
	for i, st := range statuses {
		pcts[i] = roundHalfUp1(100 * float64(counts[st]) / float64(total))
		sum += pcts[i]
		if counts[st] > counts[statuses[largest]] {
			largest = i
		}
	}
	pcts[largest] = roundHalfUp1(pcts[largest] + (100.0 - sum))

	for i, st := range statuses {
		report.Rows = append(report.Rows, []string{st, formatInt(counts[st]), formatPct(pcts[i])})
	}
	return nil
}

func (s *reportService) avgQuantityPerReceiver(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.AvgQuantityPerReceiver(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"receiver_id", "name", "avg_quantity_per_claim"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{
			formatUint(row.ReceiverID),
			row.Name,
			formatPct(roundHalfUp1(row.AvgQuantity)),
		})
	}
	return nil
}

func (s *reportService) claimsByMealType(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ClaimsByMealType(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"meal_type", "times_claimed"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{row.MealType, formatInt(row.TimesClaimed)})
	}
	return nil
}

func (s *reportService) quantityPerProvider(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.QuantityPerProvider(ctx, f)
	if err != nil {
		return err
	}
	report.Columns = []string{"provider_id", "name", "total_donated"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{formatUint(row.ProviderID), row.Name, formatInt(row.TotalDonated)})
	}
	return nil
}

// foodTypeDistribution reuses report 8's counts and derives percentage
// shares with the same residue rule as report 11.
func (s *reportService) foodTypeDistribution(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ListingsByFoodType(ctx, f)
	if err != nil {
		return err
	}

	report.Columns = []string{"food_type", "cnt", "pct"}

	var total int64
	for _, row := range rows {
		total += row.Count
	}
	if total == 0 {
		return nil
	}

	pcts := make([]float64, len(rows))
	sum := 0.0
	for i, row := range rows {
		pcts[i] = roundHalfUp1(100 * float64(row.Count) / float64(total))
		sum += pcts[i]
	}
	// Rows arrive ordered by count descending, so index 0 is the largest.
	pcts[0] = roundHalfUp1(pcts[0] + (100.0 - sum))

	for i, row := range rows {
		report.Rows = append(report.Rows, []string{row.FoodType, formatInt(row.Count), formatPct(pcts[i])})
	}
	return nil
}

func (s *reportService) listingTrend(ctx context.Context, f domain.ReportFilter, report *domain.Report) error {
	rows, err := s.reportRepository.ListingTrend(ctx, f, f.Granularity)
	if err != nil {
		return err
	}
	report.Columns = []string{"period", "listings", "total_quantity"}
	for _, row := range rows {
		report.Rows = append(report.Rows, []string{row.Period, formatInt(row.Listings), formatInt(row.TotalQuantity)})
	}
	return nil
}
