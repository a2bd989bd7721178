package service

import (
	"context"
	"fmt"
	"log/slog"

	"hostel-management-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// BillingScheduler runs monthly rent invoicing on a cron schedule
type BillingScheduler struct {
	invoices *InvoiceService
	cron     *cron.Cron
	log      *slog.Logger
}

// NewBillingScheduler parses spec (standard five-field cron syntax)
func NewBillingScheduler(invoices *InvoiceService, spec string, log *slog.Logger) (*BillingScheduler, error) {
	s := &BillingScheduler{
		invoices: invoices,
		cron:     cron.New(),
		log:      logger.WithComponent(log, logger.ComponentBilling),
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, fmt.Errorf("invalid invoice schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the schedule until ctx is cancelled, then waits for a running job
func (s *BillingScheduler) Start(ctx context.Context) error {
	s.cron.Start()
	s.log.Info("billing scheduler started", "next_run", s.cron.Entries()[0].Next)

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Info("billing scheduler stopped")
	return nil
}

func (s *BillingScheduler) run() {
	result, err := s.invoices.GenerateMonthly(context.Background(), 0)
	if err != nil {
		s.log.Error("monthly invoicing failed", logger.FieldError, err)
		return
	}
	s.log.Info("monthly invoicing finished", "period", result.Period, "created", len(result.Created), "skipped", result.Skipped)
}
