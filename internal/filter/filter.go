// Package filter composes pure predicates over record sequences.
package filter

import "strings"

// Predicate reports whether a record should be kept.
type Predicate[T any] func(T) bool

// All combines predicates with logical AND. Nil predicates are ignored and an
// empty list matches everything.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}

		return true
	}
}

// Apply returns the records matching pred, preserving order. The input is not
// modified and the result is never nil.
func Apply[T any](items []T, pred Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if pred == nil || pred(item) {
			out = append(out, item)
		}
	}

	return out
}

// ContainsFold reports whether any field contains term, ignoring case. An
// empty term matches everything.
func ContainsFold(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}
