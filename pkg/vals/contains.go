// Package vals contains basic facilities for inspecting values, and the
// membership operator built on them.
package vals

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tenkai-lang/prelude/pkg/errs"
	"github.com/tenkai-lang/prelude/pkg/logutil"
)

var logger = logutil.GetLogger("[vals] ")

// Container wraps the ContainsValue method. Ranges implement it.
type Container interface {
	// ContainsValue reports whether v is an element of the receiver.
	ContainsValue(v any) bool
}

// Strategy identifies how a membership test is carried out.
type Strategy uint8

// Possible Strategy values.
const (
	// NativeContainment tests whether x is an element of a container.
	NativeContainment Strategy = iota
	// TypeCheck tests whether x is, or can be validated as, a value of a Type.
	TypeCheck
	// PositionalCheck tests a sequence against a sequence of Types. Only the
	// first position is checked, together with the lengths.
	PositionalCheck
	// MappedCheck tests against a map keyed by Types. It is not implemented.
	MappedCheck
)

var strategyNames = [...]string{
	NativeContainment: "native containment",
	TypeCheck:         "type check",
	PositionalCheck:   "positional check",
	MappedCheck:       "mapped check",
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", s)
}

// Classify determines the Strategy of a membership test against y.
func Classify(y any) Strategy {
	if isType(y) {
		return TypeCheck
	}
	switch rv := reflect.ValueOf(y); rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() > 0 && isType(rv.Index(0).Interface()) {
			return PositionalCheck
		}
	case reflect.Map:
		// Maps have no first key; any Type key selects the mapped check.
		iter := rv.MapRange()
		for iter.Next() {
			if isType(iter.Key().Interface()) {
				return MappedCheck
			}
		}
	}
	return NativeContainment
}

type cannotContain struct {
	elemKind      string
	containerKind string
}

func (err cannotContain) Error() string {
	return fmt.Sprintf("cannot test membership of %s in %s", err.elemKind, err.containerKind)
}

// Contains implements the membership operator "x in y". A non-nil error
// means the test could not be carried out; it is either
// errs.NotImplemented or an error about the kind of y.
func Contains(x, y any) (bool, error) {
	switch Classify(y) {
	case TypeCheck:
		return checkType(x, y.(Type)), nil
	case PositionalCheck:
		return checkPositional(x, y), nil
	case MappedCheck:
		logger.Printf("membership of %s in a map of types requested", Kind(x))
		return false, errs.NotImplemented{What: "membership in a map of types"}
	default:
		return containsNative(x, y)
	}
}

func checkType(x any, t Type) bool {
	if t.IsInstance(x) {
		return true
	}
	// TODO: Check trait implementations once types can declare them.
	return t.TryNew(x).IsOk()
}

// FIXME: Only position 0 is checked against its Type; the remaining
// positions only contribute to the length comparison.
func checkPositional(x, y any) bool {
	xv := reflect.ValueOf(x)
	if k := xv.Kind(); k != reflect.Slice && k != reflect.Array {
		logger.Printf("positional check against %s value", Kind(x))
		return false
	}
	if Len(x) == 0 {
		return false
	}
	first := reflect.ValueOf(y).Index(0).Interface().(Type)
	return checkType(xv.Index(0).Interface(), first) && Len(x) == Len(y)
}

func containsNative(x, y any) (bool, error) {
	switch y := y.(type) {
	case string:
		xs, ok := x.(string)
		if !ok {
			return false, cannotContain{Kind(x), "string"}
		}
		return strings.Contains(y, xs), nil
	case Container:
		return y.ContainsValue(x), nil
	}
	switch yv := reflect.ValueOf(y); yv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < yv.Len(); i++ {
			if Equal(yv.Index(i).Interface(), x) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		if x != nil {
			xv := reflect.ValueOf(x)
			if xv.Comparable() && xv.Type().AssignableTo(yv.Type().Key()) {
				return yv.MapIndex(xv).IsValid(), nil
			}
		}
		iter := yv.MapRange()
		for iter.Next() {
			if Equal(iter.Key().Interface(), x) {
				return true, nil
			}
		}
		return false, nil
	}
	return false, cannotContain{Kind(x), Kind(y)}
}
