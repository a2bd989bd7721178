package service

import (
	"context"
	"fmt"
	"time"

	"hostel-management-backend/internal/analytics"
	"hostel-management-backend/internal/cache"
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

const (
	reportMonths     = 6
	reportYearMonths = 12
)

// FinanceSummary is the header of the finances screen
type FinanceSummary struct {
	TotalIncome   float64                `json:"total_income"`
	TotalExpenses float64                `json:"total_expenses"`
	NetProfit     float64                `json:"net_profit"`
	PendingAmount float64                `json:"pending_amount"`
	PendingCount  int                    `json:"pending_count"`
	OverdueAmount float64                `json:"overdue_amount"`
	OverdueCount  int                    `json:"overdue_count"`
	PaidCount     int                    `json:"paid_count"`
	Monthly       []analytics.MonthPoint `json:"monthly"`
}

// ReportFilter selects the period and hostel of a report; HostelID 0 means all hostels
type ReportFilter struct {
	Period   analytics.Period
	HostelID int64
}

// ReportKPIs are the key indicators of a report
type ReportKPIs struct {
	TotalRevenue     float64 `json:"total_revenue"`
	TotalExpenses    float64 `json:"total_expenses"`
	NetProfit        float64 `json:"net_profit"`
	ProfitMargin     int     `json:"profit_margin"`
	AverageOccupancy int     `json:"average_occupancy"`
	TotalTenants     int     `json:"total_tenants"`
	NewTenants       int     `json:"new_tenants"`
	ChurnRate        float64 `json:"churn_rate"`
}

// Report is the analytics screen for one period
type Report struct {
	Period            analytics.Period               `json:"period"`
	Window            analytics.Window               `json:"window"`
	HostelID          int64                          `json:"hostel_id"`
	KPIs              ReportKPIs                     `json:"kpis"`
	OccupancyByHostel []analytics.HostelOccupancyRow `json:"occupancy_by_hostel"`
	RevenueByHostel   []analytics.HostelRevenueRow   `json:"revenue_by_hostel"`
	ExpenseBreakdown  []analytics.CategoryShare      `json:"expense_breakdown"`
	Monthly           []analytics.MonthPoint         `json:"monthly"`
}

type ReportService struct {
	repos *repository.Repositories
	cache cache.Cache
	gen   *cache.Generation
	ttl   time.Duration
	now   Clock
}

func NewReportService(repos *repository.Repositories, c cache.Cache, gen *cache.Generation, ttl time.Duration, now Clock) *ReportService {
	return &ReportService{
		repos: repos,
		cache: c,
		gen:   gen,
		ttl:   ttl,
		now:   now.orDefault(),
	}
}

// FinanceSummary totals income, expenses and outstanding invoices over all time
func (s *ReportService) FinanceSummary(ctx context.Context) (*FinanceSummary, error) {
	return cache.Remember(ctx, s.cache, s.gen, cache.KeyFinance, s.ttl, func() (*FinanceSummary, error) {
		snap, err := loadSnapshot(ctx, s.repos)
		if err != nil {
			return nil, err
		}
		return buildFinanceSummary(snap, s.now()), nil
	})
}

func buildFinanceSummary(snap *snapshot, now time.Time) *FinanceSummary {
	amount := func(i *models.Invoice) float64 { return i.Amount }
	withStatus := func(status models.InvoiceStatus) func(*models.Invoice) bool {
		return func(i *models.Invoice) bool { return i.Status == status }
	}

	income := analytics.SumIf(snap.invoices, withStatus(models.InvoicePaid), amount)
	expenses := analytics.TotalExpenses(snap.expenses)
	return &FinanceSummary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetProfit:     analytics.Sub(income, expenses),
		PendingAmount: analytics.SumIf(snap.invoices, withStatus(models.InvoicePending), amount),
		PendingCount:  len(keep(snap.invoices, withStatus(models.InvoicePending))),
		OverdueAmount: analytics.SumIf(snap.invoices, withStatus(models.InvoiceOverdue), amount),
		OverdueCount:  len(keep(snap.invoices, withStatus(models.InvoiceOverdue))),
		PaidCount:     len(keep(snap.invoices, withStatus(models.InvoicePaid))),
		Monthly:       analytics.MonthlySeries(snap.invoices, snap.expenses, reportMonths, now),
	}
}

// Report builds the analytics for filter. An unknown hostel is an invalid reference.
func (s *ReportService) Report(ctx context.Context, filter ReportFilter) (*Report, error) {
	if filter.Period == "" {
		filter.Period = analytics.PeriodMonth
	}
	key := fmt.Sprintf("%s%s:%d", cache.KeyReports, filter.Period, filter.HostelID)
	return cache.Remember(ctx, s.cache, s.gen, key, s.ttl, func() (*Report, error) {
		snap, err := loadSnapshot(ctx, s.repos)
		if err != nil {
			return nil, err
		}
		scoped := snap.forHostel(filter.HostelID)
		if filter.HostelID != 0 && len(scoped.hostels) == 0 {
			return nil, fmt.Errorf("%w: hostel %d does not exist", ErrInvalidReference, filter.HostelID)
		}
		return buildReport(scoped, filter, s.now()), nil
	})
}

func buildReport(snap *snapshot, filter ReportFilter, now time.Time) *Report {
	window := filter.Period.Window(now)

	revenue := analytics.SumIf(snap.invoices,
		func(i *models.Invoice) bool {
			return i.Status == models.InvoicePaid && i.PaidDate != nil && window.Contains(*i.PaidDate)
		},
		func(i *models.Invoice) float64 { return i.Amount })
	periodExpenses := keep(snap.expenses, func(e *models.Expense) bool { return window.Contains(e.Date) })
	expenses := analytics.TotalExpenses(periodExpenses)
	net := analytics.Sub(revenue, expenses)

	active, joined, left := 0, 0, 0
	for _, t := range snap.tenants {
		if t.Status == models.TenantActive {
			active++
		}
		if window.Contains(t.JoinDate) {
			joined++
		}
		if t.Status == models.TenantCheckout && t.CheckoutDate != nil && window.Contains(*t.CheckoutDate) {
			left++
		}
	}
	churn := 0.0
	if base := active + left; base > 0 {
		churn = analytics.Round1(float64(left) / float64(base) * 100)
	}

	months := reportMonths
	if filter.Period == analytics.PeriodYear {
		months = reportYearMonths
	}

	return &Report{
		Period:   filter.Period,
		Window:   window,
		HostelID: filter.HostelID,
		KPIs: ReportKPIs{
			TotalRevenue:     revenue,
			TotalExpenses:    expenses,
			NetProfit:        net,
			ProfitMargin:     analytics.Percentage(net, revenue),
			AverageOccupancy: analytics.HostelTotals(snap.hostels).OccupancyRate,
			TotalTenants:     active,
			NewTenants:       joined,
			ChurnRate:        churn,
		},
		OccupancyByHostel: analytics.HostelOccupancy(snap.hostels),
		RevenueByHostel:   analytics.RevenueByHostel(snap.hostels),
		ExpenseBreakdown:  analytics.CategoryBreakdown(periodExpenses),
		Monthly:           analytics.MonthlySeries(snap.invoices, snap.expenses, months, now),
	}
}
