package simpleblog

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrMissingPayload indicates the required top-level payload key is absent
	ErrMissingPayload = errors.New("missing payload")

	// ErrInvalidShape indicates a payload field is missing or has the wrong type
	ErrInvalidShape = errors.New("invalid payload shape")

	// ErrConflict indicates a create targets an id that already exists
	ErrConflict = errors.New("already exists")

	// ErrNotFound indicates the addressed author, post or comment does not exist
	ErrNotFound = errors.New("not found")

	// ErrUnknownAuthor indicates a referenced author id does not exist
	ErrUnknownAuthor = errors.New("unknown author")

	// ErrInternal indicates a store invariant was violated
	ErrInternal = errors.New("internal inconsistency")
)

// Kind classifies an error returned by the service.
type Kind string

const (
	KindMissingPayload Kind = "missing_payload"
	KindInvalidShape   Kind = "invalid_shape"
	KindConflict       Kind = "conflict"
	KindNotFound       Kind = "not_found"
	KindUnknownAuthor  Kind = "unknown_author"
	KindInternal       Kind = "internal"
)

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrMissingPayload, KindMissingPayload},
	{ErrInvalidShape, KindInvalidShape},
	{ErrConflict, KindConflict},
	{ErrNotFound, KindNotFound},
	{ErrUnknownAuthor, KindUnknownAuthor},
	{ErrInternal, KindInternal},
}

// KindOf returns the Kind of err. Errors that wrap none of the sentinels above
// are reported as KindInternal.
func KindOf(err error) Kind {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// BlogError carries the operation and entity an error occurred on.
type BlogError struct {
	Op     string
	Entity string
	ID     string
	Err    error
}

func (e *BlogError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s %s %q: %v", e.Op, e.Entity, e.ID, e.Err)
}

func (e *BlogError) Unwrap() error {
	return e.Err
}

// Kind returns the classification of the wrapped error.
func (e *BlogError) Kind() Kind {
	return KindOf(e.Err)
}

func shapeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidShape, fmt.Sprintf(format, args...))
}
