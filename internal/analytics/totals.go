package analytics

import (
	"cmp"
	"slices"

	"hostel-management-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Totals summarizes the hostel portfolio.
type Totals struct {
	Hostels       int     `json:"hostels"`
	Capacity      int     `json:"capacity"`
	Occupied      int     `json:"occupied"`
	OccupancyRate int     `json:"occupancy_rate"`
	Revenue       float64 `json:"revenue"`
}

// HostelTotals adds up capacity, occupancy and recorded revenue over hostels.
func HostelTotals(hostels []models.Hostel) Totals {
	t := Totals{Hostels: len(hostels)}
	for _, h := range hostels {
		t.Capacity += h.Capacity
		t.Occupied += h.Occupied
	}
	t.OccupancyRate = OccupancyRate(t.Occupied, t.Capacity)
	t.Revenue = Sum(hostels, func(h *models.Hostel) float64 { return h.Revenue })
	return t
}

// TotalExpenses sums every expense that was not rejected.
func TotalExpenses(expenses []models.Expense) float64 {
	return SumIf(expenses, (*models.Expense).Counted, func(e *models.Expense) float64 { return e.Amount })
}

// RentRoll is the monthly rent owed by active tenants.
func RentRoll(tenants []models.Tenant) float64 {
	return SumIf(tenants,
		func(t *models.Tenant) bool { return t.Status == models.TenantActive },
		func(t *models.Tenant) float64 { return t.Rent })
}

// CategoryShare is one slice of the expense breakdown.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage int     `json:"percentage"`
}

// CategoryBreakdown groups non-rejected expenses by category, largest first.
// Ties are ordered by category name.
func CategoryBreakdown(expenses []models.Expense) []CategoryShare {
	byCategory := make(map[string][]models.Expense)
	for _, e := range expenses {
		if e.Counted() {
			byCategory[e.Category] = append(byCategory[e.Category], e)
		}
	}

	total := TotalExpenses(expenses)
	out := make([]CategoryShare, 0, len(byCategory))
	for category, items := range byCategory {
		amount := Sum(items, func(e *models.Expense) float64 { return e.Amount })
		out = append(out, CategoryShare{
			Category:   category,
			Amount:     amount,
			Percentage: Percentage(amount, total),
		})
	}
	slices.SortFunc(out, func(a, b CategoryShare) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}

// Performance labels used on the hostel performance table.
const (
	PerformanceExcellent      = "Excellent"
	PerformanceGood           = "Good"
	PerformanceNeedsAttention = "Needs Attention"
)

// PerformanceLabel grades an occupancy rate.
func PerformanceLabel(rate int) string {
	switch {
	case rate > 90:
		return PerformanceExcellent
	case rate > 80:
		return PerformanceGood
	default:
		return PerformanceNeedsAttention
	}
}

// HostelOccupancyRow is one bar of the occupancy-by-hostel chart.
type HostelOccupancyRow struct {
	HostelID    int64  `json:"hostel_id"`
	Name        string `json:"name"`
	Capacity    int    `json:"capacity"`
	Occupied    int    `json:"occupied"`
	Rate        int    `json:"rate"`
	Performance string `json:"performance"`
}

// HostelOccupancy returns one row per hostel in input order.
func HostelOccupancy(hostels []models.Hostel) []HostelOccupancyRow {
	rows := make([]HostelOccupancyRow, 0, len(hostels))
	for _, h := range hostels {
		rate := OccupancyRate(h.Occupied, h.Capacity)
		rows = append(rows, HostelOccupancyRow{
			HostelID:    h.ID,
			Name:        h.Name,
			Capacity:    h.Capacity,
			Occupied:    h.Occupied,
			Rate:        rate,
			Performance: PerformanceLabel(rate),
		})
	}
	return rows
}

// HostelRevenueRow is a hostel's revenue and its share of the portfolio.
type HostelRevenueRow struct {
	HostelID    int64   `json:"hostel_id"`
	Name        string  `json:"name"`
	Revenue     float64 `json:"revenue"`
	Share       int     `json:"share"`
	AverageRent int     `json:"average_rent"`
}

// RevenueByHostel returns one row per hostel in input order.
// AverageRent is revenue per occupied bed, 0 for an empty hostel.
func RevenueByHostel(hostels []models.Hostel) []HostelRevenueRow {
	total := Sum(hostels, func(h *models.Hostel) float64 { return h.Revenue })
	rows := make([]HostelRevenueRow, 0, len(hostels))
	for _, h := range hostels {
		row := HostelRevenueRow{
			HostelID: h.ID,
			Name:     h.Name,
			Revenue:  h.Revenue,
			Share:    Percentage(h.Revenue, total),
		}
		if h.Occupied > 0 {
			row.AverageRent = int(decimal.NewFromFloat(h.Revenue).Div(decimal.NewFromInt(int64(h.Occupied))).Round(0).IntPart())
		}
		rows = append(rows, row)
	}
	return rows
}
