package analytics

import (
	"testing"
	"time"

	"hostel-management-backend/internal/models"
)

func TestOccupancyRate(t *testing.T) {
	tests := []struct {
		occupied, capacity, want int
	}{
		{45, 50, 90},
		{70, 80, 88}, // 87.5 rounds up
		{1, 3, 33},
		{2, 3, 67},
		{0, 40, 0},
		{40, 40, 100},
		{5, 0, 0},
		{0, 0, 0},
		{3, -1, 0},
	}
	for _, tt := range tests {
		if got := OccupancyRate(tt.occupied, tt.capacity); got != tt.want {
			t.Errorf("OccupancyRate(%d, %d) = %d, want %d", tt.occupied, tt.capacity, got, tt.want)
		}
	}
}

func TestOccupancyRateBounds(t *testing.T) {
	for capacity := 1; capacity <= 120; capacity++ {
		for occupied := 0; occupied <= capacity; occupied++ {
			if r := OccupancyRate(occupied, capacity); r < 0 || r > 100 {
				t.Fatalf("OccupancyRate(%d, %d) = %d out of range", occupied, capacity, r)
			}
		}
	}
}

func TestPercentageAndRounding(t *testing.T) {
	if got := Percentage(11900, 34000); got != 35 {
		t.Errorf("Percentage = %d, want 35", got)
	}
	if got := Percentage(1, 8); got != 13 { // 12.5
		t.Errorf("Percentage(1, 8) = %d, want 13", got)
	}
	if got := Percentage(10, 0); got != 0 {
		t.Errorf("Percentage with zero total = %d", got)
	}
	if got := Round1(5.25); got != 5.3 {
		t.Errorf("Round1(5.25) = %v", got)
	}
	if got := Sum([]float64{0.1, 0.2}, func(f *float64) float64 { return *f }); got != 0.3 {
		t.Errorf("Sum drifted: %v", got)
	}
}

func sampleHostels() []models.Hostel {
	return []models.Hostel{
		{ID: 1, Name: "Downtown Hostel", Capacity: 50, Occupied: 45, Revenue: 15750},
		{ID: 2, Name: "University Campus", Capacity: 80, Occupied: 72, Revenue: 21000},
		{ID: 3, Name: "Riverside", Capacity: 40, Occupied: 0, Revenue: 0},
	}
}

func TestHostelTotals(t *testing.T) {
	got := HostelTotals(sampleHostels())
	want := Totals{Hostels: 3, Capacity: 170, Occupied: 117, OccupancyRate: 69, Revenue: 36750}
	if got != want {
		t.Fatalf("HostelTotals = %+v, want %+v", got, want)
	}
}

func TestHostelRows(t *testing.T) {
	occ := HostelOccupancy(sampleHostels())
	if len(occ) != 3 || occ[0].Rate != 90 || occ[1].Rate != 90 || occ[2].Rate != 0 {
		t.Fatalf("HostelOccupancy = %+v", occ)
	}
	if occ[0].Performance != PerformanceGood || occ[2].Performance != PerformanceNeedsAttention {
		t.Fatalf("unexpected labels: %+v", occ)
	}

	rev := RevenueByHostel(sampleHostels())
	if rev[0].Share != 43 || rev[1].Share != 57 || rev[2].Share != 0 {
		t.Fatalf("RevenueByHostel shares = %+v", rev)
	}
	if rev[0].AverageRent != 350 || rev[2].AverageRent != 0 {
		t.Fatalf("RevenueByHostel average rent = %+v", rev)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	expenses := []models.Expense{
		{Category: "Utilities", Amount: 1200, Status: models.ExpenseApproved},
		{Category: "Maintenance", Amount: 800, Status: models.ExpensePending},
		{Category: "Maintenance", Amount: 400, Status: models.ExpenseApproved},
		{Category: "Supplies", Amount: 400, Status: models.ExpenseApproved},
		{Category: "Marketing", Amount: 9999, Status: models.ExpenseRejected},
	}

	got := CategoryBreakdown(expenses)
	want := []CategoryShare{
		{Category: "Maintenance", Amount: 1200, Percentage: 43},
		{Category: "Utilities", Amount: 1200, Percentage: 43},
		{Category: "Supplies", Amount: 400, Percentage: 14},
	}
	if len(got) != len(want) {
		t.Fatalf("CategoryBreakdown = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	if TotalExpenses(expenses) != 2800 {
		t.Errorf("TotalExpenses = %v", TotalExpenses(expenses))
	}
}

func TestRentRoll(t *testing.T) {
	tenants := []models.Tenant{
		{Rent: 350, Status: models.TenantActive},
		{Rent: 450, Status: models.TenantActive},
		{Rent: 500, Status: models.TenantCheckout},
	}
	if got := RentRoll(tenants); got != 800 {
		t.Fatalf("RentRoll = %v", got)
	}
}

func TestMonthlySeries(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	invoices := []models.Invoice{
		{Amount: 350, Status: models.InvoicePaid, PaidDate: models.MustDate("2024-06-10").Ptr()},
		{Amount: 450, Status: models.InvoicePaid, PaidDate: models.MustDate("2024-05-02").Ptr()},
		{Amount: 500, Status: models.InvoicePending},
		{Amount: 999, Status: models.InvoicePaid, PaidDate: models.MustDate("2023-12-31").Ptr()},
	}
	expenses := []models.Expense{
		{Amount: 100, Date: models.MustDate("2024-06-01"), Status: models.ExpenseApproved},
		{Amount: 50, Date: models.MustDate("2024-06-20"), Status: models.ExpenseRejected},
		{Amount: 600, Date: models.MustDate("2024-01-05"), Status: models.ExpensePending},
	}

	got := MonthlySeries(invoices, expenses, 6, now)
	if len(got) != 6 {
		t.Fatalf("got %d points", len(got))
	}
	if got[0].Period != "2024-01" || got[0].Month != "Jan" || got[5].Period != "2024-06" {
		t.Fatalf("unexpected range: %s..%s", got[0].Period, got[5].Period)
	}
	if got[0].Expenses != 600 || got[0].Profit != -600 {
		t.Errorf("January = %+v", got[0])
	}
	if got[4].Income != 450 {
		t.Errorf("May = %+v", got[4])
	}
	if got[5].Income != 350 || got[5].Expenses != 100 || got[5].Profit != 250 {
		t.Errorf("June = %+v", got[5])
	}
	if len(MonthlySeries(nil, nil, 0, now)) != 0 {
		t.Error("expected empty series for zero months")
	}
}

func TestPeriodWindow(t *testing.T) {
	now := time.Date(2024, time.August, 14, 18, 30, 0, 0, time.UTC)
	tests := []struct {
		period Period
		from   string
	}{
		{PeriodWeek, "2024-08-08"},
		{PeriodMonth, "2024-08-01"},
		{PeriodQuarter, "2024-07-01"},
		{PeriodYear, "2024-01-01"},
	}
	for _, tt := range tests {
		w := tt.period.Window(now)
		if w.From.String() != tt.from || w.To.String() != "2024-08-14" {
			t.Errorf("%s window = %s..%s", tt.period, w.From, w.To)
		}
	}

	w := PeriodMonth.Window(now)
	if !w.Contains(models.MustDate("2024-08-01")) || !w.Contains(models.MustDate("2024-08-14")) {
		t.Error("window bounds should be inclusive")
	}
	if w.Contains(models.MustDate("2024-07-31")) || w.Contains(models.Date{}) {
		t.Error("window contains dates outside it")
	}
}

func TestParsePeriod(t *testing.T) {
	if p, err := ParsePeriod(""); err != nil || p != PeriodMonth {
		t.Errorf("ParsePeriod(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePeriod("Quarter"); err != nil || p != PeriodQuarter {
		t.Errorf("ParsePeriod(Quarter) = %q, %v", p, err)
	}
	if _, err := ParsePeriod("decade"); err == nil {
		t.Error("expected error for unknown period")
	}
}
