package vals

import "math"

// Inter wraps the Int method. It is implemented by integer-backed values
// outside the predeclared integer types, such as refinements of int.
type Inter interface {
	Int() int
}

// ScanInt converts a Go integer of any predeclared integer type, or an Inter,
// to an int. It returns false for other values and for unsigned values that do
// not fit in an int.
func ScanInt(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return fromUint64(uint64(v))
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return fromUint64(uint64(v))
	case uint64:
		return fromUint64(v)
	case Inter:
		return v.Int(), true
	}
	return 0, false
}

func fromUint64(u uint64) (int, bool) {
	if u > math.MaxInt {
		return 0, false
	}
	return int(u), true
}
