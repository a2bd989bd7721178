package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"hostel-management-backend/internal/models"
)

// MonthPoint is one month of the revenue vs expenses chart.
type MonthPoint struct {
	Month    string  `json:"month"`
	Period   string  `json:"period"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

type monthKey struct {
	year  int
	month time.Month
}

func keyOf(t time.Time) monthKey {
	return monthKey{t.Year(), t.Month()}
}

// MonthlySeries returns the last months calendar months ending with the month of now,
// oldest first. Income counts paid invoices by paid date; expenses count non-rejected
// expenses by date.
func MonthlySeries(invoices []models.Invoice, expenses []models.Expense, months int, now time.Time) []MonthPoint {
	if months <= 0 {
		return []MonthPoint{}
	}

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	income := make(map[monthKey]decimal.Decimal, months)
	spent := make(map[monthKey]decimal.Decimal, months)

	for _, inv := range invoices {
		if inv.Status != models.InvoicePaid || inv.PaidDate == nil {
			continue
		}
		k := keyOf(inv.PaidDate.Time)
		income[k] = income[k].Add(decimal.NewFromFloat(inv.Amount))
	}
	for _, e := range expenses {
		if !e.Counted() {
			continue
		}
		k := keyOf(e.Date.Time)
		spent[k] = spent[k].Add(decimal.NewFromFloat(e.Amount))
	}

	points := make([]MonthPoint, 0, months)
	for i := 0; i < months; i++ {
		m := first.AddDate(0, i, 0)
		k := keyOf(m)
		points = append(points, MonthPoint{
			Month:    m.Month().String()[:3],
			Period:   fmt.Sprintf("%04d-%02d", m.Year(), int(m.Month())),
			Income:   income[k].InexactFloat64(),
			Expenses: spent[k].InexactFloat64(),
			Profit:   income[k].Sub(spent[k]).InexactFloat64(),
		})
	}
	return points
}

// Period selects the report window.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// ParsePeriod accepts week, month, quarter or year (any case); empty means month.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodMonth, nil
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Window is an inclusive range of calendar days.
type Window struct {
	From models.Date `json:"from"`
	To   models.Date `json:"to"`
}

// Contains reports whether d falls inside the window.
func (w Window) Contains(d models.Date) bool {
	if d.IsZero() {
		return false
	}
	return !d.Before(w.From.Time) && !d.After(w.To.Time)
}

// Window returns the days covered by p, ending today.
func (p Period) Window(now time.Time) Window {
	today := models.NewDate(now)
	var from time.Time
	switch p {
	case PeriodWeek:
		from = today.AddDate(0, 0, -6)
	case PeriodQuarter:
		qm := time.Month((int(today.Month())-1)/3*3 + 1)
		from = time.Date(today.Year(), qm, 1, 0, 0, 0, 0, time.UTC)
	case PeriodYear:
		from = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		from = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return Window{From: models.NewDate(from), To: today}
}
