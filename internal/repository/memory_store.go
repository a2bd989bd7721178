package repository

import (
	"context"
	"slices"
	"sync"

	"hostel-management-backend/pkg/utils"
)

// MemoryStore keeps records in a slice guarded by a mutex. Records are
// copied in and out, so callers never alias the stored values.
type MemoryStore[T any, P entity[T]] struct {
	mu    sync.RWMutex
	items []T
	ids   *utils.IDGenerator
}

func NewMemoryStore[T any, P entity[T]](ids *utils.IDGenerator) *MemoryStore[T, P] {
	return &MemoryStore[T, P]{ids: ids}
}

// List returns a copy of all records
func (s *MemoryStore[T, P]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items), nil
}

// Get returns a copy of the record with the given id
func (s *MemoryStore[T, P]) Get(_ context.Context, id int64) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrNotFound
	}
	item := s.items[idx]
	return &item, nil
}

// Create appends the record, assigning an id when it has none
func (s *MemoryStore[T, P]) Create(_ context.Context, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := P(item)
	if p.GetID() == 0 {
		p.SetID(s.ids.Next())
	} else if s.indexOf(p.GetID()) >= 0 {
		return ErrDuplicateID
	}
	s.items = append(s.items, *item)
	return nil
}

// Update replaces the record that has the same id
func (s *MemoryStore[T, P]) Update(_ context.Context, item *T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(P(item).GetID())
	if idx < 0 {
		return ErrNotFound
	}
	s.items[idx] = *item
	return nil
}

// Delete removes the record with the given id
func (s *MemoryStore[T, P]) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNotFound
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	return nil
}

// indexOf must be called with the lock held.
func (s *MemoryStore[T, P]) indexOf(id int64) int {
	for i := range s.items {
		if P(&s.items[i]).GetID() == id {
			return i
		}
	}
	return -1
}
