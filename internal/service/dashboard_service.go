package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"hostel-management-backend/internal/analytics"
	"hostel-management-backend/internal/cache"
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

const (
	dashboardMonths     = 6
	recentActivityLimit = 5
	upcomingLimit       = 5
)

// Upcoming payment labels
const (
	PaymentLabelOverdue  = "overdue"
	PaymentLabelDue      = "due"
	PaymentLabelUpcoming = "upcoming"
)

// DashboardStats are the headline cards
type DashboardStats struct {
	TotalRevenue  float64 `json:"total_revenue"`
	ActiveTenants int     `json:"active_tenants"`
	OccupancyRate int     `json:"occupancy_rate"`
	TotalHostels  int     `json:"total_hostels"`
	TotalRooms    int     `json:"total_rooms"`
	TotalCapacity int     `json:"total_capacity"`
	TotalOccupied int     `json:"total_occupied"`
	MonthlyRent   float64 `json:"monthly_rent"`
}

// UpcomingPayment is an outstanding invoice on the dashboard
type UpcomingPayment struct {
	InvoiceID    int64       `json:"invoice_id"`
	TenantName   string      `json:"tenant_name"`
	HostelName   string      `json:"hostel_name"`
	RoomNumber   string      `json:"room_number"`
	Amount       float64     `json:"amount"`
	DueDate      models.Date `json:"due_date"`
	DaysUntilDue int         `json:"days_until_due"`
	Label        string      `json:"label"`
}

// Dashboard is the overview screen
type Dashboard struct {
	Stats            DashboardStats                 `json:"stats"`
	RevenueSeries    []analytics.MonthPoint         `json:"revenue_series"`
	Occupancy        []analytics.HostelOccupancyRow `json:"occupancy"`
	ExpenseBreakdown []analytics.CategoryShare      `json:"expense_breakdown"`
	RecentActivities []models.Activity              `json:"recent_activities"`
	UpcomingPayments []UpcomingPayment              `json:"upcoming_payments"`
}

type DashboardService struct {
	repos      *repository.Repositories
	activities *ActivityService
	cache      cache.Cache
	ttl        time.Duration
	now        Clock
}

func NewDashboardService(
	repos *repository.Repositories,
	activities *ActivityService,
	c cache.Cache,
	ttl time.Duration,
	now Clock,
) *DashboardService {
	return &DashboardService{
		repos:      repos,
		activities: activities,
		cache:      c,
		ttl:        ttl,
		now:        now.orDefault(),
	}
}

// Get returns the dashboard, cached until the next mutation
func (s *DashboardService) Get(ctx context.Context) (*Dashboard, error) {
	return cache.Remember(ctx, s.cache, s.activities.Generation(), cache.KeyDashboard, s.ttl, func() (*Dashboard, error) {
		return s.build(ctx)
	})
}

func (s *DashboardService) build(ctx context.Context) (*Dashboard, error) {
	snap, err := loadSnapshot(ctx, s.repos)
	if err != nil {
		return nil, err
	}
	recent, err := s.activities.Recent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	totals := analytics.HostelTotals(snap.hostels)
	active := keep(snap.tenants, func(t *models.Tenant) bool { return t.Status == models.TenantActive })

	return &Dashboard{
		Stats: DashboardStats{
			TotalRevenue:  totals.Revenue,
			ActiveTenants: len(active),
			OccupancyRate: totals.OccupancyRate,
			TotalHostels:  totals.Hostels,
			TotalRooms:    len(snap.rooms),
			TotalCapacity: totals.Capacity,
			TotalOccupied: totals.Occupied,
			MonthlyRent:   analytics.RentRoll(snap.tenants),
		},
		RevenueSeries:    analytics.MonthlySeries(snap.invoices, snap.expenses, dashboardMonths, s.now()),
		Occupancy:        analytics.HostelOccupancy(snap.hostels),
		ExpenseBreakdown: analytics.CategoryBreakdown(snap.expenses),
		RecentActivities: recent,
		UpcomingPayments: upcomingPayments(snap.invoices, s.now.Today(), upcomingLimit),
	}, nil
}

// upcomingPayments lists outstanding invoices by due date, earliest first
func upcomingPayments(invoices []models.Invoice, today models.Date, limit int) []UpcomingPayment {
	outstanding := keep(invoices, (*models.Invoice).Outstanding)
	slices.SortStableFunc(outstanding, func(a, b models.Invoice) int {
		if c := a.DueDate.Compare(b.DueDate.Time); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(outstanding) > limit {
		outstanding = outstanding[:limit]
	}

	out := make([]UpcomingPayment, 0, len(outstanding))
	for _, inv := range outstanding {
		days := int(inv.DueDate.Sub(today.Time).Hours() / 24)
		label := PaymentLabelUpcoming
		switch {
		case inv.Status == models.InvoiceOverdue || days < 0:
			label = PaymentLabelOverdue
		case days == 0:
			label = PaymentLabelDue
		}
		out = append(out, UpcomingPayment{
			InvoiceID:    inv.ID,
			TenantName:   inv.TenantName,
			HostelName:   inv.HostelName,
			RoomNumber:   inv.RoomNumber,
			Amount:       inv.Amount,
			DueDate:      inv.DueDate,
			DaysUntilDue: days,
			Label:        label,
		})
	}
	return out
}
