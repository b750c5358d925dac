// Package must contains simple functions that panic on errors.
//
// It should only be used in tests and rare places where errors are provably
// impossible.
package must

import "github.com/tenkai-lang/prelude/pkg/result"

// OK panics if the error value is not nil. It is intended for use with
// functions that return just an error.
func OK(err error) {
	if err != nil {
		panic(err)
	}
}

// OK1 panics if the error value is not nil. It is intended for use with
// functions that return one value and an error.
func OK1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns the value of an Ok Result, and panics with the *result.Error of
// an Err Result.
func Get[T any](r result.Result[T]) T {
	return OK1(r.Unwrap())
}
