// Package result implements the fallible-construction convention: a value that
// is either a successful T or an *Error carrying a diagnostic message.
//
// A Result is inspected by checking its tag with IsOk before using the value.
// There are no combinators; callers branch on the tag directly.
package result

import "fmt"

// Error is the failure variant of a Result. The message is human-readable and
// informational only; it is not meant to be matched on.
type Error struct {
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Result is either Ok(value) or Err(*Error), never both. The zero Result is
// Ok with the zero value of T.
type Result[T any] struct {
	value T
	err   *Error
}

// Outcome is satisfied by every Result, regardless of its type parameter.
type Outcome interface {
	IsOk() bool
}

var _ Outcome = Result[int]{}

// Ok returns a successful Result wrapping v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result with the given message.
func Err[T any](msg string) Result[T] {
	return Result[T]{err: &Error{msg}}
}

// Errf is like Err, but formats the message.
func Errf[T any](format string, args ...any) Result[T] {
	return Err[T](fmt.Sprintf(format, args...))
}

// IsOk reports whether the Result is the Ok variant.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsOk reports whether the given Result is the Ok variant.
func IsOk[T any](r Result[T]) bool { return r.IsOk() }

// Value returns the wrapped value and true for an Ok Result, or the zero value
// and false for an Err Result.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Err returns the *Error of an Err Result, or nil for an Ok Result.
func (r Result[T]) Err() *Error { return r.err }

// Unwrap converts the Result to the usual Go (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// String returns "Ok(value)" or "Err(message)".
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%s)", r.err.Message)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}
