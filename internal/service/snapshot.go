package service

import (
	"context"
	"fmt"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// snapshot is every collection the aggregates are computed from
type snapshot struct {
	hostels  []models.Hostel
	rooms    []models.Room
	tenants  []models.Tenant
	expenses []models.Expense
	invoices []models.Invoice
}

// loadSnapshot lists the collections concurrently
func loadSnapshot(ctx context.Context, repos *repository.Repositories) (*snapshot, error) {
	snap := &snapshot{}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.hostels, err = repos.Hostels.List(ctx)
		return wrapList("hostels", err)
	})
	g.Go(func() (err error) {
		snap.rooms, err = repos.Rooms.List(ctx)
		return wrapList("rooms", err)
	})
	g.Go(func() (err error) {
		snap.tenants, err = repos.Tenants.List(ctx)
		return wrapList("tenants", err)
	})
	g.Go(func() (err error) {
		snap.expenses, err = repos.Expenses.List(ctx)
		return wrapList("expenses", err)
	})
	g.Go(func() (err error) {
		snap.invoices, err = repos.Invoices.List(ctx)
		return wrapList("invoices", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// forHostel keeps only the records of one hostel
func (s *snapshot) forHostel(id int64) *snapshot {
	if id == 0 {
		return s
	}
	return &snapshot{
		hostels:  keep(s.hostels, func(h *models.Hostel) bool { return h.ID == id }),
		rooms:    keep(s.rooms, func(r *models.Room) bool { return r.HostelID == id }),
		tenants:  keep(s.tenants, func(t *models.Tenant) bool { return t.HostelID == id }),
		expenses: keep(s.expenses, func(e *models.Expense) bool { return e.HostelID == id }),
		invoices: keep(s.invoices, func(i *models.Invoice) bool { return i.HostelID == id }),
	}
}

func wrapList(what string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", what, err)
	}
	return nil
}
