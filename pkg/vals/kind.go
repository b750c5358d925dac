package vals

import (
	"fmt"
	"reflect"
)

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the "kind" of the value, a concept similar to type but coarser.
// It is implemented for the builtin nil, bool and string, Go integers and
// floats, slices, arrays and maps, and types satisfying the Kinder interface.
// For other types, it returns the Go type name of the argument preceded by
// "!!".
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case string:
		return "string"
	case Kinder:
		return v.Kind()
	}
	if _, ok := ScanInt(v); ok {
		return "int"
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Map:
		return "map"
	}
	return fmt.Sprintf("!!%T", v)
}
