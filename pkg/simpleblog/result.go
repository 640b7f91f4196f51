package simpleblog

// Result is either a value or the error that prevented producing it.
// The zero Result holds the zero value of T and no error.
type Result[T any] struct {
	val T
	err error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Fail wraps a failure. A nil err is treated as ErrInternal so a failed
// Result can never be mistaken for success.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrInternal
	}
	return Result[T]{err: err}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// Err returns the failure, or nil.
func (r Result[T]) Err() error { return r.err }

// Unwrap returns the value and error pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.val, r.err
}

// Then runs checks in order against the held value and stops at the first
// one that fails. A failed r is returned unchanged.
func (r Result[T]) Then(checks ...func(T) error) Result[T] {
	if r.err != nil {
		return r
	}
	for _, check := range checks {
		if err := check(r.val); err != nil {
			return Fail[T](err)
		}
	}
	return r
}

// Map transforms the held value. Failures pass through untouched.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Ok(fn(r.val))
}

// Chain feeds the held value into a step that may itself fail.
func Chain[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return fn(r.val)
}

// Try lifts a (value, error) pair into a Result.
func Try[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}
