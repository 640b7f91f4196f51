package simpleblog

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// The helpers below never write into their input; each returns a fresh slice
// so a snapshot that is still current is never modified.

func appendItem[T any](items []T, item T) []T {
	out := make([]T, len(items), len(items)+1)
	copy(out, items)
	return append(out, item)
}

func replaceAt[T any](items []T, i int, item T) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("%w: replace at %d of %d", ErrInternal, i, len(items))
	}
	out := slices.Clone(items)
	out[i] = item
	return out, nil
}

func removeAt[T any](items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("%w: remove at %d of %d", ErrInternal, i, len(items))
	}
	out := slices.Clone(items)
	return slices.Delete(out, i, i+1), nil
}

// rejectItems returns items without the elements matching drop, and how many
// were dropped. The result is never nil.
func rejectItems[T any](items []T, drop func(T) bool) ([]T, int) {
	out := slices.DeleteFunc(slices.Clone(items), drop)
	if out == nil {
		out = []T{}
	}
	return out, len(items) - len(out)
}
