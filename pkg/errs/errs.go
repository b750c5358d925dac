// Package errs contains reusable error types.
package errs

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is matched by every NotImplemented error under
// errors.Is.
var ErrNotImplemented = errors.New("not implemented")

// NotImplemented encodes an error where an operation exists as a capability
// slot but has no working implementation. It is distinct from a validation
// failure.
type NotImplemented struct {
	What string
}

// Error implements the error interface.
func (e NotImplemented) Error() string {
	return "not implemented: " + e.What
}

// Is reports whether target is ErrNotImplemented.
func (e NotImplemented) Is(target error) bool {
	return target == ErrNotImplemented
}

// BadValue encodes an error where the value does not meet a requirement.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e BadValue) Error() string {
	return fmt.Sprintf(
		"bad value: %v must be %v, but is %v", e.What, e.Valid, e.Actual)
}
