package service

import (
	"log/slog"
	"time"

	"hostel-management-backend/internal/cache"
	"hostel-management-backend/internal/repository"
)

// Options configures New
type Options struct {
	Now            Clock
	CacheTTL       time.Duration
	InvoiceDueDays int
	Publisher      ActivityPublisher
	Logger         *slog.Logger
}

// Services bundles every domain service over one set of repositories
type Services struct {
	Activities *ActivityService
	Auth       *AuthService
	Hostels    *HostelService
	Rooms      *RoomService
	Tenants    *TenantService
	Expenses   *ExpenseService
	Invoices   *InvoiceService
	Dashboard  *DashboardService
	Reports    *ReportService
}

func New(repos *repository.Repositories, c cache.Cache, opts Options) *Services {
	now := opts.Now.orDefault()
	activities := NewActivityService(repos.Activities, c, opts.Publisher, now, opts.Logger)

	return &Services{
		Activities: activities,
		Auth:       NewAuthService(repos.Users, repos.RefreshTokens, activities, now),
		Hostels:    NewHostelService(repos.Hostels, activities),
		Rooms:      NewRoomService(repos.Rooms, repos.Hostels, activities),
		Tenants:    NewTenantService(repos.Tenants, repos.Rooms, repos.Hostels, activities, now),
		Expenses:   NewExpenseService(repos.Expenses, repos.Hostels, activities),
		Invoices:   NewInvoiceService(repos.Invoices, repos.Tenants, repos.Hostels, activities, now, opts.InvoiceDueDays),
		Dashboard:  NewDashboardService(repos, activities, c, opts.CacheTTL, now),
		Reports:    NewReportService(repos, c, activities.Generation(), opts.CacheTTL, now),
	}
}
