// Package seed loads the demo portfolio the dashboard screens were designed around.
package seed

import (
	"context"
	"fmt"
	"time"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

// Load inserts the demo records unless hostels already exist.
// It reports whether anything was inserted.
func Load(ctx context.Context, repos *repository.Repositories, now time.Time) (bool, error) {
	existing, err := repos.Hostels.List(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check existing data: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	for _, h := range Hostels() {
		if err := repos.Hostels.Create(ctx, &h); err != nil {
			return false, fmt.Errorf("failed to seed hostel %s: %w", h.Name, err)
		}
	}
	for _, r := range Rooms() {
		if err := repos.Rooms.Create(ctx, &r); err != nil {
			return false, fmt.Errorf("failed to seed room %s: %w", r.RoomNumber, err)
		}
	}
	for _, t := range Tenants() {
		if err := repos.Tenants.Create(ctx, &t); err != nil {
			return false, fmt.Errorf("failed to seed tenant %s: %w", t.Name, err)
		}
	}
	for _, e := range Expenses() {
		if err := repos.Expenses.Create(ctx, &e); err != nil {
			return false, fmt.Errorf("failed to seed expense %d: %w", e.ID, err)
		}
	}
	for _, i := range Invoices() {
		if err := repos.Invoices.Create(ctx, &i); err != nil {
			return false, fmt.Errorf("failed to seed invoice %d: %w", i.ID, err)
		}
	}
	for _, a := range Activities(now) {
		if err := repos.Activities.Create(ctx, &a); err != nil {
			return false, fmt.Errorf("failed to seed activity %d: %w", a.ID, err)
		}
	}
	return true, nil
}

func Hostels() []models.Hostel {
	return []models.Hostel{
		{ID: 1, Name: "Downtown Hostel", Address: "123 Main St, Downtown", Phone: "+1 (555) 123-4567", Email: "downtown@hostelhub.com",
			Description: "Modern hostel in the heart of downtown", Capacity: 50, Occupied: 47, Status: models.HostelActive, Revenue: 15750},
		{ID: 2, Name: "University Campus", Address: "456 College Ave, University District", Phone: "+1 (555) 234-5678", Email: "campus@hostelhub.com",
			Description: "Student-focused accommodation near campus", Capacity: 80, Occupied: 70, Status: models.HostelActive, Revenue: 21000},
		{ID: 3, Name: "City Center", Address: "789 Business Blvd, City Center", Phone: "+1 (555) 345-6789", Email: "center@hostelhub.com",
			Description: "Premium hostel for business travelers", Capacity: 60, Occupied: 55, Status: models.HostelActive, Revenue: 19800},
		{ID: 4, Name: "Riverside", Address: "321 River Rd, Riverside", Phone: "+1 (555) 456-7890", Email: "riverside@hostelhub.com",
			Description: "Scenic hostel with river views", Capacity: 40, Occupied: 30, Status: models.HostelMaintenance, Revenue: 9000},
		{ID: 5, Name: "Metro Station", Address: "654 Transit Way, Metro District", Phone: "+1 (555) 567-8901", Email: "metro@hostelhub.com",
			Description: "Convenient location near public transport", Capacity: 70, Occupied: 58, Status: models.HostelActive, Revenue: 17400},
	}
}

func Rooms() []models.Room {
	return []models.Room{
		{ID: 1, RoomNumber: "101", HostelID: 1, HostelName: "Downtown Hostel", Capacity: 2, Occupied: 2, Type: models.RoomAC, Rent: 750,
			Status: models.RoomOccupied, Amenities: []string{"AC", "WiFi", "Parking"}, Tenant: ptr("John Smith")},
		{ID: 2, RoomNumber: "102", HostelID: 1, HostelName: "Downtown Hostel", Capacity: 1, Occupied: 0, Type: models.RoomNonAC, Rent: 600,
			Status: models.RoomAvailable, Amenities: []string{"WiFi"}},
		{ID: 3, RoomNumber: "201", HostelID: 2, HostelName: "University Campus", Capacity: 4, Occupied: 3, Type: models.RoomAC, Rent: 900,
			Status: models.RoomOccupied, Amenities: []string{"AC", "WiFi", "Laundry"}, Tenant: ptr("Alice Johnson")},
		{ID: 4, RoomNumber: "202", HostelID: 2, HostelName: "University Campus", Capacity: 2, Occupied: 0, Type: models.RoomAC, Rent: 800,
			Status: models.RoomMaintenance, Amenities: []string{"AC", "WiFi"}},
		{ID: 5, RoomNumber: "301", HostelID: 3, HostelName: "City Center", Capacity: 1, Occupied: 1, Type: models.RoomAC, Rent: 950,
			Status: models.RoomOccupied, Amenities: []string{"AC", "WiFi", "Parking", "Laundry"}, Tenant: ptr("Bob Wilson")},
	}
}

func Tenants() []models.Tenant {
	return []models.Tenant{
		{ID: 1, Name: "John Smith", Email: "john.smith@email.com", Phone: "+1 (555) 123-4567", IDCard: "ID123456789",
			Address: "123 Main St, City", Company: "Tech Corp", CompanyAddress: "456 Business Ave",
			HostelID: 1, HostelName: "Downtown Hostel", RoomID: 1, RoomNumber: "101", JoinDate: models.MustDate("2024-01-15"),
			Rent: 750, SecurityDeposit: 1500, ContractTerms: "12 months", Status: models.TenantActive, PaymentStatus: models.PaymentPaid},
		{ID: 2, Name: "Alice Johnson", Email: "alice.johnson@email.com", Phone: "+1 (555) 234-5678", IDCard: "ID987654321",
			Address: "789 Oak St, City", Company: "Design Studio", CompanyAddress: "321 Creative Blvd",
			HostelID: 2, HostelName: "University Campus", RoomID: 3, RoomNumber: "201", JoinDate: models.MustDate("2024-02-01"),
			Rent: 900, SecurityDeposit: 1800, ContractTerms: "6 months", Status: models.TenantActive, PaymentStatus: models.PaymentPending},
		{ID: 3, Name: "Bob Wilson", Email: "bob.wilson@email.com", Phone: "+1 (555) 345-6789", IDCard: "ID456789123",
			Address: "456 Pine St, City", Company: "Marketing Inc", CompanyAddress: "789 Commerce St",
			HostelID: 3, HostelName: "City Center", RoomID: 5, RoomNumber: "301", JoinDate: models.MustDate("2024-01-20"),
			Rent: 950, SecurityDeposit: 1900, ContractTerms: "12 months", Status: models.TenantActive, PaymentStatus: models.PaymentPaid},
		{ID: 4, Name: "Carol Davis", Email: "carol.davis@email.com", Phone: "+1 (555) 456-7890", IDCard: "ID789123456",
			Address: "321 Elm St, City", Company: "Finance Group", CompanyAddress: "654 Money Ave",
			HostelID: 1, HostelName: "Downtown Hostel", RoomID: 2, RoomNumber: "102", JoinDate: models.MustDate("2024-03-01"),
			Rent: 600, SecurityDeposit: 1200, ContractTerms: "6 months", Status: models.TenantCheckout, PaymentStatus: models.PaymentPaid},
	}
}

func Expenses() []models.Expense {
	return []models.Expense{
		{ID: 1, HostelID: 1, HostelName: "Downtown Hostel", Category: "Maintenance", Amount: 336000, Date: models.MustDate("2024-06-15"),
			Description: "Plumbing repairs in Room 205", Receipt: ptr("receipt_001.pdf"), Status: models.ExpenseApproved},
		{ID: 2, HostelID: 2, HostelName: "University Campus", Category: "Utilities", Amount: 238000, Date: models.MustDate("2024-06-10"),
			Description: "Monthly electricity bill", Receipt: ptr("receipt_002.pdf"), Status: models.ExpenseApproved},
		{ID: 3, HostelID: 1, HostelName: "Downtown Hostel", Category: "Supplies", Amount: 126000, Date: models.MustDate("2024-06-08"),
			Description: "Cleaning supplies and toiletries", Status: models.ExpensePending},
		{ID: 4, HostelID: 3, HostelName: "City Center", Category: "Salaries", Amount: 700000, Date: models.MustDate("2024-06-01"),
			Description: "Monthly staff salaries", Receipt: ptr("receipt_004.pdf"), Status: models.ExpenseApproved},
	}
}

func Invoices() []models.Invoice {
	return []models.Invoice{
		{ID: 1, TenantID: 1, HostelID: 1, TenantName: "John Smith", HostelName: "Downtown Hostel", RoomNumber: "101", Amount: 210000,
			DueDate: models.MustDate("2024-07-01"), IssueDate: models.MustDate("2024-06-01"), Status: models.InvoicePaid,
			PaidDate: models.MustDate("2024-06-28").Ptr()},
		{ID: 2, TenantID: 2, HostelID: 2, TenantName: "Alice Johnson", HostelName: "University Campus", RoomNumber: "201", Amount: 252000,
			DueDate: models.MustDate("2024-07-01"), IssueDate: models.MustDate("2024-06-01"), Status: models.InvoicePending},
		{ID: 3, TenantID: 3, HostelID: 3, TenantName: "Bob Wilson", HostelName: "City Center", RoomNumber: "301", Amount: 266000,
			DueDate: models.MustDate("2024-07-01"), IssueDate: models.MustDate("2024-06-01"), Status: models.InvoiceOverdue},
	}
}

// Activities returns the recent-activity feed, timestamped relative to now
func Activities(now time.Time) []models.Activity {
	now = now.UTC()
	return []models.Activity{
		{ID: 1, Type: models.ActivityTenantCheckout, Message: "Tenant checked out from Room 150, University Campus", CreatedAt: now.Add(-24 * time.Hour)},
		{ID: 2, Type: models.ActivityMaintenance, Message: "Maintenance request submitted for Room 301", CreatedAt: now.Add(-6 * time.Hour)},
		{ID: 3, Type: models.ActivityPayment, Message: "Rent payment received from John Smith - PKR 238,000", CreatedAt: now.Add(-4 * time.Hour)},
		{ID: 4, Type: models.ActivityTenantCheckin, Message: "New tenant checked in to Room 205, Downtown Hostel", CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func ptr(s string) *string {
	return &s
}
