package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "a", []byte("1"), time.Minute)
	_ = c.Set(ctx, "b", []byte("2"), 0)

	if v, ok, _ := c.Get(ctx, "a"); !ok || string(v) != "1" {
		t.Fatalf("Get(a) = %q, %v", v, ok)
	}

	now = now.Add(time.Minute)
	if _, ok, _ := c.Get(ctx, "a"); ok {
		t.Fatal("expected a to expire")
	}
	if _, ok, _ := c.Get(ctx, "b"); !ok {
		t.Fatal("entry without ttl should not expire")
	}
}

func TestMemoryCacheDeletePrefix(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	_ = c.Set(ctx, KeyDashboard, []byte("{}"), 0)
	_ = c.Set(ctx, KeyReports+"month:all", []byte("{}"), 0)
	_ = c.Set(ctx, "session:1", []byte("{}"), 0)

	if err := c.DeletePrefix(ctx, PrefixAggregates); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(ctx, KeyDashboard); ok {
		t.Error("dashboard entry survived invalidation")
	}
	if _, ok, _ := c.Get(ctx, KeyReports+"month:all"); ok {
		t.Error("report entry survived invalidation")
	}
	if _, ok, _ := c.Get(ctx, "session:1"); !ok {
		t.Error("unrelated entry was removed")
	}
}

func TestRemember(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	calls := 0
	compute := func() (map[string]int, error) {
		calls++
		return map[string]int{"hostels": calls}, nil
	}

	first, err := Remember(ctx, c, nil, KeyDashboard, time.Minute, compute)
	if err != nil {
		t.Fatal(err)
	}
	second, _ := Remember(ctx, c, nil, KeyDashboard, time.Minute, compute)
	if calls != 1 || first["hostels"] != 1 || second["hostels"] != 1 {
		t.Fatalf("expected cached value, calls=%d first=%v second=%v", calls, first, second)
	}

	_ = c.DeletePrefix(ctx, PrefixAggregates)
	third, _ := Remember(ctx, c, nil, KeyDashboard, time.Minute, compute)
	if calls != 2 || third["hostels"] != 2 {
		t.Fatalf("expected recompute after invalidation, calls=%d", calls)
	}

	boom := errors.New("boom")
	_, err = Remember(ctx, c, nil, "aggregates:failing", time.Minute, func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected compute error, got %v", err)
	}
	if _, ok, _ := c.Get(ctx, "aggregates:failing"); ok {
		t.Fatal("failed computation was cached")
	}
}

func TestRememberSkipsStoreAfterInvalidation(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	gen := &Generation{}

	stale, err := Remember(ctx, c, gen, KeyDashboard, time.Minute, func() (int, error) {
		// a mutation lands while the aggregate is being built
		gen.Advance()
		_ = c.DeletePrefix(ctx, PrefixAggregates)
		return 5, nil
	})
	if err != nil || stale != 5 {
		t.Fatalf("Remember = %d, %v", stale, err)
	}
	if _, ok, _ := c.Get(ctx, KeyDashboard); ok {
		t.Fatal("value computed across an invalidation was stored")
	}

	fresh, _ := Remember(ctx, c, gen, KeyDashboard, time.Minute, func() (int, error) { return 6, nil })
	if fresh != 6 {
		t.Fatalf("Remember = %d, want 6", fresh)
	}
	if _, ok, _ := c.Get(ctx, KeyDashboard); !ok {
		t.Fatal("value computed without invalidation was not stored")
	}
}
