package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"hostel-management-backend/internal/cache"
	"hostel-management-backend/internal/logger"
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/internal/seed"
	"hostel-management-backend/pkg/utils"
)

var testNow = time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	utils.InitJWT("service-test-secret", 15*time.Minute, 24*time.Hour)
	utils.SetBcryptCost(4)
	os.Exit(m.Run())
}

type recordingPublisher struct {
	mu   sync.Mutex
	seen []models.Activity
}

func (p *recordingPublisher) PublishActivity(a models.Activity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seen = append(p.seen, a)
}

func (p *recordingPublisher) types() []models.ActivityType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.ActivityType, 0, len(p.seen))
	for _, a := range p.seen {
		out = append(out, a.Type)
	}
	return out
}

type testEnv struct {
	repos     *repository.Repositories
	svc       *Services
	cache     *cache.MemoryCache
	publisher *recordingPublisher
	now       *time.Time
}

func newTestEnv(t *testing.T, seeded bool) *testEnv {
	t.Helper()
	return newTestEnvWith(t, seeded, nil)
}

// newTestEnvWith lets wrap replace stores after seeding and before the services are built
func newTestEnvWith(t *testing.T, seeded bool, wrap func(*repository.Repositories)) *testEnv {
	t.Helper()

	now := testNow
	clock := func() time.Time { return now }
	repos := repository.NewMemoryRepositories(utils.NewIDGeneratorWithClock(clock))
	if seeded {
		if _, err := seed.Load(context.Background(), repos, now); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	if wrap != nil {
		wrap(repos)
	}

	c := cache.NewMemoryCache()
	pub := &recordingPublisher{}
	svc := New(repos, c, Options{
		Now:            clock,
		CacheTTL:       time.Minute,
		InvoiceDueDays: 10,
		Publisher:      pub,
		Logger:         logger.Discard(),
	})
	return &testEnv{repos: repos, svc: svc, cache: c, publisher: pub, now: &now}
}

func mustGet[T any](t *testing.T, store repository.Store[T], id int64) *T {
	t.Helper()
	item, err := store.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get(%d): %v", id, err)
	}
	return item
}

func ptrTo[T any](v T) *T {
	return &v
}
