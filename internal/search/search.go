// Package search implements the free-text filter used by every list screen.
package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matches reports whether term is empty or occurs, ignoring case, in any of fields.
// Spaces in term are matched literally.
func Matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	fold := cases.Fold()
	needle := fold.String(term)
	for _, f := range fields {
		if strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}

// Filter keeps the items whose fields match term, preserving order.
func Filter[T any](items []T, term string, fields func(*T) []string) []T {
	if term == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for i := range items {
		if Matches(term, fields(&items[i])...) {
			out = append(out, items[i])
		}
	}
	return out
}
