package vals

import "reflect"

// Lener wraps the Len method.
type Lener interface {
	// Len computes the length of the receiver.
	Len() int
}

// Len returns the length of the value, or -1 if the value does not have a
// well-defined length. It is implemented for the builtin type string, slices,
// arrays and maps, and types satisfying the Lener interface. For other types,
// it returns -1.
func Len(v any) int {
	switch v := v.(type) {
	case nil:
		return -1
	case string:
		return len(v)
	case Lener:
		return v.Len()
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len()
	}
	return -1
}
