package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrUnknownDataset is returned for an export name that is not offered
var ErrUnknownDataset = errors.New("unknown dataset")

// Exportable datasets
var ExportDatasets = []string{"hostels", "tenants", "expenses", "invoices"}

// Export writes dataset as CSV with a header row
func (s *ReportService) Export(ctx context.Context, dataset string, w io.Writer) error {
	var (
		header []string
		rows   [][]string
	)

	switch dataset {
	case "hostels":
		items, err := s.repos.Hostels.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list hostels: %w", err)
		}
		header = []string{"id", "name", "address", "phone", "email", "capacity", "occupied", "status", "revenue"}
		for _, h := range items {
			rows = append(rows, []string{
				formatID(h.ID), h.Name, h.Address, h.Phone, h.Email,
				strconv.Itoa(h.Capacity), strconv.Itoa(h.Occupied), string(h.Status), formatMoney(h.Revenue),
			})
		}
	case "tenants":
		items, err := s.repos.Tenants.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}
		header = []string{"id", "name", "email", "phone", "company", "hostel", "room", "join_date", "rent", "security_deposit", "status", "payment_status"}
		for _, t := range items {
			rows = append(rows, []string{
				formatID(t.ID), t.Name, t.Email, t.Phone, t.Company, t.HostelName, t.RoomNumber,
				t.JoinDate.String(), formatMoney(t.Rent), formatMoney(t.SecurityDeposit), string(t.Status), string(t.PaymentStatus),
			})
		}
	case "expenses":
		items, err := s.repos.Expenses.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list expenses: %w", err)
		}
		header = []string{"id", "date", "hostel", "category", "description", "amount", "status", "receipt"}
		for _, e := range items {
			receipt := ""
			if e.Receipt != nil {
				receipt = *e.Receipt
			}
			rows = append(rows, []string{
				formatID(e.ID), e.Date.String(), e.HostelName, e.Category, e.Description, formatMoney(e.Amount), string(e.Status), receipt,
			})
		}
	case "invoices":
		items, err := s.repos.Invoices.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list invoices: %w", err)
		}
		header = []string{"id", "tenant", "hostel", "room", "amount", "issue_date", "due_date", "status", "paid_date"}
		for _, i := range items {
			paid := ""
			if i.PaidDate != nil {
				paid = i.PaidDate.String()
			}
			rows = append(rows, []string{
				formatID(i.ID), i.TenantName, i.HostelName, i.RoomNumber, formatMoney(i.Amount),
				i.IssueDate.String(), i.DueDate.String(), string(i.Status), paid,
			})
		}
	default:
		return fmt.Errorf("%w %q: choose one of %s", ErrUnknownDataset, dataset, strings.Join(ExportDatasets, ", "))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func formatID(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
