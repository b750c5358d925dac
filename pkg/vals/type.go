package vals

import "github.com/tenkai-lang/prelude/pkg/result"

// Type describes a type that can be used as the right-hand side of a
// membership test. Refinement types are the main implementations: a value
// belongs to the type if it already is an instance, or if the type's
// validating constructor accepts it.
type Type interface {
	// Name returns the name of the type.
	Name() string
	// IsInstance reports whether v is already a value of the type.
	IsInstance(v any) bool
	// TryNew attempts to construct a value of the type from v.
	TryNew(v any) result.Outcome
}

// NewType returns a Type whose instances are the Go values of type T and whose
// validating constructor is tryNew.
func NewType[T any](name string, tryNew func(any) result.Result[T]) Type {
	return &typeDesc[T]{name, tryNew}
}

type typeDesc[T any] struct {
	name   string
	tryNew func(any) result.Result[T]
}

func (d *typeDesc[T]) Name() string { return d.name }

func (d *typeDesc[T]) Kind() string { return "type" }

func (d *typeDesc[T]) String() string { return d.name }

func (d *typeDesc[T]) IsInstance(v any) bool {
	_, ok := v.(T)
	return ok
}

func (d *typeDesc[T]) TryNew(v any) result.Outcome { return d.tryNew(v) }

func isType(v any) bool {
	_, ok := v.(Type)
	return ok
}
