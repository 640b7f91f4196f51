package simpleblog

import "strings"

// Identified is implemented by entities addressed by id.
type Identified interface {
	GetID() string
}

// Authored is implemented by entities that reference an author.
type Authored interface {
	AuthorID() string
}

// FindByID returns the element of items whose id equals id.
func FindByID[T Identified](id string, items []T) (T, bool) {
	if i, ok := FindIndexByID(id, items); ok {
		return items[i], true
	}
	var zero T
	return zero, false
}

// FindIndexByID returns the position of the element whose id equals id.
func FindIndexByID[T Identified](id string, items []T) (int, bool) {
	for i, item := range items {
		if item.GetID() == id {
			return i, true
		}
	}
	return -1, false
}

// DerivePostID returns the slug of a post title: lowercased, with every space
// replaced by a hyphen. Other characters are kept as-is.
func DerivePostID(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "-")
}

// MatchID returns a predicate selecting entities with the given id.
func MatchID[T Identified](id string) func(T) bool {
	return func(item T) bool { return item.GetID() == id }
}

// MatchAuthor returns a predicate selecting entities written by the given author.
func MatchAuthor[T Authored](authorID string) func(T) bool {
	return func(item T) bool { return item.AuthorID() == authorID }
}

// Filter returns the elements of items satisfying keep, in order. The result
// is never nil.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
