package service

import (
	"context"
	"log/slog"
	"time"

	"hostel-management-backend/internal/logger"
)

// OverdueWorker periodically flags invoices that passed their due date
type OverdueWorker struct {
	invoices *InvoiceService
	interval time.Duration
	log      *slog.Logger
}

func NewOverdueWorker(invoices *InvoiceService, interval time.Duration, log *slog.Logger) *OverdueWorker {
	return &OverdueWorker{
		invoices: invoices,
		interval: interval,
		log:      logger.WithComponent(log, logger.ComponentWorker),
	}
}

// Start sweeps once immediately, then every interval until ctx is cancelled
func (w *OverdueWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("overdue worker started", "interval", w.interval.String())
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info("overdue worker stopped")
			return nil
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *OverdueWorker) sweep(ctx context.Context) {
	n, err := w.invoices.SweepOverdue(ctx)
	if err != nil {
		w.log.Error("overdue sweep failed", logger.FieldError, err)
		return
	}
	if n > 0 {
		w.log.Info("invoices marked overdue", "count", n)
	}
}
