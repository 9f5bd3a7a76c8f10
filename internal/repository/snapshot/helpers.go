package snapshot

import (
	"errors"

	"github.com/google/uuid"
)

// errUnchanged aborts a transaction without saving and without failing it.
var errUnchanged = errors.New("snapshot unchanged")

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, item := range items {
		if match(item) {
			return i
		}
	}
	return -1
}

// filter returns the matching items in a new, never nil, slice.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// remove drops the matching items in place and reports whether any matched.
func remove[T any](items *[]T, match func(T) bool) bool {
	kept := (*items)[:0]
	for _, item := range *items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	removed := len(kept) != len(*items)
	*items = kept
	return removed
}
