package service

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"hostel-management-backend/internal/cache"
	"hostel-management-backend/internal/logger"
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

// ActivityPublisher receives every recorded activity (the websocket hub in production)
type ActivityPublisher interface {
	PublishActivity(a models.Activity)
}

type ActivityService struct {
	repo      repository.Store[models.Activity]
	cache     cache.Cache
	gen       cache.Generation
	publisher ActivityPublisher
	now       Clock
	log       *slog.Logger
}

func NewActivityService(
	repo repository.Store[models.Activity],
	c cache.Cache,
	publisher ActivityPublisher,
	now Clock,
	log *slog.Logger,
) *ActivityService {
	return &ActivityService{
		repo:      repo,
		cache:     c,
		publisher: publisher,
		now:       now.orDefault(),
		log:       logger.WithComponent(log, logger.ComponentApp),
	}
}

// Record stores an activity, drops cached aggregates and notifies listeners.
// actor 0 means the system. Failures are logged and never fail the caller.
func (s *ActivityService) Record(ctx context.Context, actor int64, typ models.ActivityType, format string, args ...any) {
	a := models.Activity{
		Type:      typ,
		Message:   fmt.Sprintf(format, args...),
		CreatedAt: s.now().UTC(),
	}
	if actor != 0 {
		a.UserID = &actor
	}

	err := s.repo.Create(ctx, &a)
	s.Invalidate(ctx)
	if err != nil {
		s.log.Warn("failed to record activity", "type", typ, logger.FieldError, err)
		return
	}
	if s.publisher != nil {
		s.publisher.PublishActivity(a)
	}
}

// Invalidate drops every cached aggregate, including ones still being built
func (s *ActivityService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	s.gen.Advance()
	if err := s.cache.DeletePrefix(ctx, cache.PrefixAggregates); err != nil {
		s.log.Warn("failed to invalidate aggregates", logger.FieldError, err)
	}
}

// Generation is advanced by every Invalidate
func (s *ActivityService) Generation() *cache.Generation {
	return &s.gen
}

// Recent returns up to limit activities, newest first
func (s *ActivityService) Recent(ctx context.Context, limit int) ([]models.Activity, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	slices.SortStableFunc(items, func(a, b models.Activity) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
