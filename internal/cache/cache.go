// Package cache stores serialized aggregate responses between mutations.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Key prefixes
const (
	PrefixAggregates = "aggregates:"
	KeyDashboard     = PrefixAggregates + "dashboard"
	KeyFinance       = PrefixAggregates + "finance"
	KeyReports       = PrefixAggregates + "reports:"
)

// Cache is a byte store with expiry
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// Generation counts invalidations. A value computed while an invalidation
// happened is returned to its caller but not stored.
// The zero value is ready to use; a nil *Generation never blocks a store.
type Generation struct {
	mu sync.Mutex
	n  uint64
}

// Advance marks every value computed so far as stale. Call it before
// deleting the cached keys.
func (g *Generation) Advance() {
	if g == nil {
		return
	}
	g.mu.Lock()
	g.n++
	g.mu.Unlock()
}

func (g *Generation) current() uint64 {
	if g == nil {
		return 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.n
}

// storeIf runs store only while the generation is still n
func (g *Generation) storeIf(n uint64, store func()) {
	if g == nil {
		store()
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.n == n {
		store()
	}
}

// Remember returns the cached value for key, or computes, stores and returns it.
// The value is not stored when gen advanced during compute.
// Cache failures fall back to compute.
func Remember[T any](ctx context.Context, c Cache, gen *Generation, key string, ttl time.Duration, compute func() (T, error)) (T, error) {
	if c == nil {
		return compute()
	}
	seen := gen.current()
	if raw, ok, err := c.Get(ctx, key); err == nil && ok {
		var v T
		if err := json.Unmarshal(raw, &v); err == nil {
			return v, nil
		}
	}

	v, err := compute()
	if err != nil {
		return v, err
	}
	if raw, err := json.Marshal(v); err == nil {
		gen.storeIf(seen, func() { _ = c.Set(ctx, key, raw, ttl) })
	}
	return v, nil
}
