package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"hostel-management-backend/internal/repository"
)

// setIf copies *src into dst when src is set
func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func keep[T any](items []T, match func(*T) bool) []T {
	out := make([]T, 0, len(items))
	for i := range items {
		if match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}

// resolve loads a referenced record, turning a missing one into ErrInvalidReference
func resolve[T any](ctx context.Context, store repository.Store[T], id int64, what string) (*T, error) {
	item, err := store.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s %d does not exist", ErrInvalidReference, what, id)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// uniqueStrings drops repeated values, keeping first occurrences in order
func uniqueStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
