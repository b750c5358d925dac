package vals

import "reflect"

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value.
	Equal(other any) bool
}

// Equal returns whether two values are equal. Integers compare by value
// regardless of their Go type. Types satisfying the Equaler interface decide
// for themselves. For other types, it uses reflect.DeepEqual.
func Equal(x, y any) bool {
	if x, ok := x.(Equaler); ok {
		return x.Equal(y)
	}
	if xi, ok := ScanInt(x); ok {
		yi, ok := ScanInt(y)
		return ok && xi == yi
	}
	return reflect.DeepEqual(x, y)
}
