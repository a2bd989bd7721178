package repository

import (
	"context"
	"errors"

	"hostel-management-backend/internal/models"
)

var (
	// ErrNotFound is returned when no record carries the requested id
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when creating a record whose id is already taken
	ErrDuplicateID = errors.New("duplicate id")
)

// Store is an ordered collection of one entity type.
// List returns records in insertion order; Update replaces a record in place.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id int64) error
}

// entity ties a model value type to its pointer, which implements models.Entity.
type entity[T any] interface {
	*T
	models.Entity
}

// FindFirst returns the first record accepted by match.
func FindFirst[T any](ctx context.Context, store Store[T], match func(*T) bool) (*T, error) {
	items, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if match(&items[i]) {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// Filter returns every record accepted by match, preserving order.
func Filter[T any](ctx context.Context, store Store[T], match func(*T) bool) ([]T, error) {
	items, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for i := range items {
		if match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out, nil
}
