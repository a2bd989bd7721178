package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/internal/search"

	"github.com/shopspring/decimal"
)

// InvoiceInput is the body of an invoice create
type InvoiceInput struct {
	TenantID  int64   `json:"tenant_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"omitempty,gt=0"`
	IssueDate string  `json:"issue_date" binding:"omitempty,yyyymmdd"`
	DueDate   string  `json:"due_date" binding:"required,yyyymmdd"`
}

// InvoicePatch carries the fields of an invoice edit; nil fields are left unchanged.
// Payment goes through Pay.
type InvoicePatch struct {
	Amount    *float64              `json:"amount" binding:"omitempty,gt=0"`
	IssueDate *string               `json:"issue_date" binding:"omitempty,yyyymmdd"`
	DueDate   *string               `json:"due_date" binding:"omitempty,yyyymmdd"`
	Status    *models.InvoiceStatus `json:"status" binding:"omitempty,oneof=pending overdue"`
}

// InvoiceFilter narrows an invoice listing
type InvoiceFilter struct {
	Search   string
	Status   models.InvoiceStatus
	HostelID int64
	TenantID int64
}

// GenerateResult reports a monthly invoicing run
type GenerateResult struct {
	Period  string           `json:"period"`
	Created []models.Invoice `json:"created"`
	Skipped int              `json:"skipped"`
}

type InvoiceService struct {
	invoices   repository.Store[models.Invoice]
	tenants    repository.Store[models.Tenant]
	hostels    repository.Store[models.Hostel]
	activities *ActivityService
	now        Clock
	dueDays    int
}

func NewInvoiceService(
	invoices repository.Store[models.Invoice],
	tenants repository.Store[models.Tenant],
	hostels repository.Store[models.Hostel],
	activities *ActivityService,
	now Clock,
	dueDays int,
) *InvoiceService {
	return &InvoiceService{
		invoices:   invoices,
		tenants:    tenants,
		hostels:    hostels,
		activities: activities,
		now:        now.orDefault(),
		dueDays:    dueDays,
	}
}

// List returns the invoices matching filter in insertion order
func (s *InvoiceService) List(ctx context.Context, filter InvoiceFilter) ([]models.Invoice, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	invoices = search.Filter(invoices, filter.Search, search.InvoiceFields)
	return keep(invoices, func(i *models.Invoice) bool {
		return (filter.Status == "" || i.Status == filter.Status) &&
			(filter.HostelID == 0 || i.HostelID == filter.HostelID) &&
			(filter.TenantID == 0 || i.TenantID == filter.TenantID)
	}), nil
}

// Get retrieves an invoice by ID
func (s *InvoiceService) Get(ctx context.Context, id int64) (*models.Invoice, error) {
	return s.invoices.Get(ctx, id)
}

// Create bills a tenant. Amount defaults to the tenant's rent, issue date to today.
func (s *InvoiceService) Create(ctx context.Context, in InvoiceInput, actor int64) (*models.Invoice, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	tenant, err := resolve(ctx, s.tenants, in.TenantID, "tenant")
	if err != nil {
		return nil, err
	}
	dueDate, err := models.ParseDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	issueDate := s.now.Today()
	if in.IssueDate != "" {
		if issueDate, err = models.ParseDate(in.IssueDate); err != nil {
			return nil, err
		}
	}
	amount := in.Amount
	if amount == 0 {
		amount = tenant.Rent
	}

	invoice := newInvoice(tenant, amount, issueDate, dueDate)
	if err := s.invoices.Create(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	s.markTenant(ctx, tenant.ID, models.PaymentPending, models.PaymentPaid)

	s.activities.Record(ctx, actor, models.ActivityInvoice, "Invoice of %.2f issued to %s", invoice.Amount, invoice.TenantName)
	return invoice, nil
}

// Update applies patch to an unpaid invoice. Paid invoices are final.
func (s *InvoiceService) Update(ctx context.Context, id int64, patch InvoicePatch, actor int64) (*models.Invoice, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	invoice, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == models.InvoicePaid {
		return nil, ErrAlreadyPaid
	}

	if patch.IssueDate != nil {
		if invoice.IssueDate, err = models.ParseDate(*patch.IssueDate); err != nil {
			return nil, err
		}
	}
	if patch.DueDate != nil {
		if invoice.DueDate, err = models.ParseDate(*patch.DueDate); err != nil {
			return nil, err
		}
	}
	setIf(&invoice.Amount, patch.Amount)
	setIf(&invoice.Status, patch.Status)

	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	s.activities.Record(ctx, actor, models.ActivityInvoice, "Invoice for %s updated", invoice.TenantName)
	return invoice, nil
}

// Pay marks an invoice paid today, credits the hostel's revenue and
// marks the tenant as paid
func (s *InvoiceService) Pay(ctx context.Context, id int64, actor int64) (*models.Invoice, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	invoice, err := s.invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.Status == models.InvoicePaid {
		return nil, ErrAlreadyPaid
	}

	invoice.Status = models.InvoicePaid
	invoice.PaidDate = s.now.Today().Ptr()
	if err := s.invoices.Update(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to mark invoice as paid: %w", err)
	}

	hostel, err := s.hostels.Get(ctx, invoice.HostelID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		hostel.Revenue = decimal.NewFromFloat(hostel.Revenue).Add(decimal.NewFromFloat(invoice.Amount)).InexactFloat64()
		if err := s.hostels.Update(ctx, hostel); err != nil {
			return nil, fmt.Errorf("failed to credit hostel revenue: %w", err)
		}
	}
	s.markTenant(ctx, invoice.TenantID, models.PaymentPaid)

	s.activities.Record(ctx, actor, models.ActivityPayment, "Rent payment received from %s - %.2f", invoice.TenantName, invoice.Amount)
	return invoice, nil
}

// Delete removes an invoice. Revenue already credited stays on the hostel.
func (s *InvoiceService) Delete(ctx context.Context, id int64, actor int64) error {
	writeMu.Lock()
	defer writeMu.Unlock()

	invoice, err := s.invoices.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.invoices.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	s.activities.Record(ctx, actor, models.ActivityInvoice, "Invoice for %s removed", invoice.TenantName)
	return nil
}

// GenerateMonthly bills every active tenant their rent for the current month.
// Tenants already invoiced this month, or with no rent, are skipped.
func (s *InvoiceService) GenerateMonthly(ctx context.Context, actor int64) (*GenerateResult, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	today := s.now.Today()
	period := today.Format("2006-01")
	result := &GenerateResult{Period: period, Created: []models.Invoice{}}

	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	billed := make(map[int64]bool)
	for _, inv := range invoices {
		if inv.IssueDate.Format("2006-01") == period {
			billed[inv.TenantID] = true
		}
	}

	dueDate := models.NewDate(today.AddDate(0, 0, s.dueDays))
	for i := range tenants {
		tenant := &tenants[i]
		if tenant.Status != models.TenantActive {
			continue
		}
		if billed[tenant.ID] || tenant.Rent <= 0 {
			result.Skipped++
			continue
		}

		invoice := newInvoice(tenant, tenant.Rent, today, dueDate)
		if err := s.invoices.Create(ctx, invoice); err != nil {
			return nil, fmt.Errorf("failed to create invoice for %s: %w", tenant.Name, err)
		}
		s.markTenant(ctx, tenant.ID, models.PaymentPending, models.PaymentPaid)
		result.Created = append(result.Created, *invoice)
	}

	if len(result.Created) > 0 {
		s.activities.Record(ctx, actor, models.ActivityInvoice, "Generated %d rent invoices for %s", len(result.Created), today.Format("January 2006"))
	}
	return result, nil
}

// SweepOverdue marks pending invoices past their due date as overdue, together
// with their tenants, and returns how many changed
func (s *InvoiceService) SweepOverdue(ctx context.Context) (int, error) {
	writeMu.Lock()
	defer writeMu.Unlock()

	today := s.now.Today()
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list invoices: %w", err)
	}

	changed := 0
	for i := range invoices {
		invoice := &invoices[i]
		if invoice.Status != models.InvoicePending || invoice.DueDate.IsZero() || !invoice.DueDate.Before(today.Time) {
			continue
		}
		invoice.Status = models.InvoiceOverdue
		if err := s.invoices.Update(ctx, invoice); err != nil {
			return changed, fmt.Errorf("failed to mark invoice %d overdue: %w", invoice.ID, err)
		}
		s.markTenant(ctx, invoice.TenantID, models.PaymentOverdue)
		changed++
	}

	if changed > 0 {
		s.activities.Record(ctx, 0, models.ActivityPayment, "%d invoices are now overdue", changed)
	}
	return changed, nil
}

// markTenant sets the tenant's payment status. When from is given the
// status only changes if it currently is one of those values.
func (s *InvoiceService) markTenant(ctx context.Context, tenantID int64, to models.PaymentStatus, from ...models.PaymentStatus) {
	tenant, err := s.tenants.Get(ctx, tenantID)
	if err != nil {
		return
	}
	if len(from) > 0 && !slices.Contains(from, tenant.PaymentStatus) {
		return
	}
	tenant.PaymentStatus = to
	_ = s.tenants.Update(ctx, tenant)
}

func newInvoice(tenant *models.Tenant, amount float64, issueDate, dueDate models.Date) *models.Invoice {
	return &models.Invoice{
		TenantID:   tenant.ID,
		HostelID:   tenant.HostelID,
		TenantName: tenant.Name,
		HostelName: tenant.HostelName,
		RoomNumber: tenant.RoomNumber,
		Amount:     amount,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Status:     models.InvoicePending,
		PaidDate:   nil,
	}
}
