package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

// gatedStore holds the first call of one operation until release is closed
type gatedStore[T any] struct {
	repository.Store[T]
	op      string
	armed   atomic.Bool
	reached chan struct{}
	release chan struct{}
}

func gate[T any](store repository.Store[T], op string) *gatedStore[T] {
	g := &gatedStore[T]{
		Store:   store,
		op:      op,
		reached: make(chan struct{}),
		release: make(chan struct{}),
	}
	g.armed.Store(true)
	return g
}

func (g *gatedStore[T]) hold(op string) {
	if op == g.op && g.armed.CompareAndSwap(true, false) {
		close(g.reached)
		<-g.release
	}
}

func (g *gatedStore[T]) List(ctx context.Context) ([]T, error) {
	g.hold("list")
	return g.Store.List(ctx)
}

func (g *gatedStore[T]) Update(ctx context.Context, item *T) error {
	g.hold("update")
	return g.Store.Update(ctx, item)
}

func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

// assertBlocked fails when done closes before the gated call is released
func assertBlocked(t *testing.T, done <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-done:
		t.Fatalf("%s finished while another edit was in progress", what)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHostelEditKeepsConcurrentCheckIn(t *testing.T) {
	var hostels *gatedStore[models.Hostel]
	env := newTestEnvWith(t, true, func(r *repository.Repositories) {
		hostels = gate(r.Hostels, "update")
		r.Hostels = hostels
	})
	ctx := context.Background()
	before := mustGet(t, env.repos.Hostels, 1).Occupied

	editDone := make(chan error, 1)
	go func() {
		_, err := env.svc.Hostels.Update(ctx, 1, HostelPatch{Phone: ptrTo("+1 (555) 000-0000")}, 1)
		editDone <- err
	}()
	waitFor(t, hostels.reached, "hostel edit")

	checkInDone := make(chan struct{})
	go func() {
		defer close(checkInDone)
		_, _ = env.svc.Tenants.Create(ctx, TenantInput{Name: "Guest", Email: "guest@example.com", HostelID: 1, RoomID: 2}, 1)
	}()
	assertBlocked(t, checkInDone, "check-in")

	close(hostels.release)
	if err := <-editDone; err != nil {
		t.Fatal(err)
	}
	waitFor(t, checkInDone, "check-in")

	hostel := mustGet(t, env.repos.Hostels, 1)
	if hostel.Occupied != before+1 {
		t.Fatalf("hostel occupied = %d, want %d", hostel.Occupied, before+1)
	}
	if hostel.Phone != "+1 (555) 000-0000" {
		t.Fatalf("hostel edit lost: phone %q", hostel.Phone)
	}
}

func TestInvoiceEditCannotReopenConcurrentPayment(t *testing.T) {
	var invoices *gatedStore[models.Invoice]
	env := newTestEnvWith(t, true, func(r *repository.Repositories) {
		invoices = gate(r.Invoices, "update")
		r.Invoices = invoices
	})
	ctx := context.Background()
	revenue := mustGet(t, env.repos.Hostels, 2).Revenue

	editDone := make(chan error, 1)
	go func() {
		_, err := env.svc.Invoices.Update(ctx, 2, InvoicePatch{DueDate: ptrTo("2024-07-20")}, 1)
		editDone <- err
	}()
	waitFor(t, invoices.reached, "invoice edit")

	payDone := make(chan struct{})
	go func() {
		defer close(payDone)
		_, _ = env.svc.Invoices.Pay(ctx, 2, 1)
	}()
	assertBlocked(t, payDone, "payment")

	close(invoices.release)
	if err := <-editDone; err != nil {
		t.Fatal(err)
	}
	waitFor(t, payDone, "payment")

	invoice := mustGet(t, env.repos.Invoices, 2)
	if invoice.Status != models.InvoicePaid || invoice.PaidDate == nil {
		t.Fatalf("invoice after edit and payment: status %s paid_date %v", invoice.Status, invoice.PaidDate)
	}
	if _, err := env.svc.Invoices.Pay(ctx, 2, 1); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("second payment: %v", err)
	}
	if got := mustGet(t, env.repos.Hostels, 2).Revenue; got != revenue+invoice.Amount {
		t.Fatalf("hostel revenue = %.2f, want %.2f", got, revenue+invoice.Amount)
	}
}

func TestExpenseEditAndReviewDoNotOverwriteEachOther(t *testing.T) {
	var expenses *gatedStore[models.Expense]
	env := newTestEnvWith(t, true, func(r *repository.Repositories) {
		expenses = gate(r.Expenses, "update")
		r.Expenses = expenses
	})
	ctx := context.Background()

	editDone := make(chan error, 1)
	go func() {
		_, err := env.svc.Expenses.Update(ctx, 1, ExpensePatch{Description: ptrTo("Plumbing repairs")}, 1)
		editDone <- err
	}()
	waitFor(t, expenses.reached, "expense edit")

	reviewDone := make(chan struct{})
	go func() {
		defer close(reviewDone)
		_, _ = env.svc.Expenses.SetStatus(ctx, 1, models.ExpenseRejected, 1)
	}()
	assertBlocked(t, reviewDone, "review")

	close(expenses.release)
	if err := <-editDone; err != nil {
		t.Fatal(err)
	}
	waitFor(t, reviewDone, "review")

	expense := mustGet(t, env.repos.Expenses, 1)
	if expense.Description != "Plumbing repairs" || expense.Status != models.ExpenseRejected {
		t.Fatalf("expense = %q %s, want both changes", expense.Description, expense.Status)
	}
}

func TestDashboardNotCachedAcrossMutation(t *testing.T) {
	var hostels *gatedStore[models.Hostel]
	env := newTestEnvWith(t, true, func(r *repository.Repositories) {
		hostels = gate(r.Hostels, "list")
		r.Hostels = hostels
	})
	ctx := context.Background()

	buildDone := make(chan error, 1)
	go func() {
		_, err := env.svc.Dashboard.Get(ctx)
		buildDone <- err
	}()
	waitFor(t, hostels.reached, "dashboard build")

	if _, err := env.svc.Hostels.Create(ctx, HostelInput{Name: "Harbor View", Address: "1 Pier Rd", Capacity: 40}, 1); err != nil {
		t.Fatal(err)
	}
	close(hostels.release)
	if err := <-buildDone; err != nil {
		t.Fatal(err)
	}

	d, err := env.svc.Dashboard.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if d.Stats.TotalHostels != 6 {
		t.Fatalf("dashboard reports %d hostels after a create, want 6", d.Stats.TotalHostels)
	}
}
