// Package rng implements intervals over ordered values with a successor, and
// lazy iteration over them.
//
// A Range has a start, an end and a Variant that says which endpoints belong
// to it:
//
//	Variant         Notation  Definition
//	ClosedRange     a..b      {x | a <= x <= b}
//	OpenRange       a<..<b    {x | a < x < b}
//	LeftOpenRange   a<..b     {x | a < x <= b}
//	RightOpenRange  a..<b     {x | a <= x < b}
//
// A Range whose start is greater than its end is empty.
package rng

import (
	"fmt"
	"unicode/utf8"

	"github.com/tenkai-lang/prelude/pkg/errs"
	"github.com/tenkai-lang/prelude/pkg/vals"
)

// Variant determines which endpoints of a Range are inclusive.
type Variant uint8

// Possible Variant values.
const (
	ClosedRange Variant = iota
	OpenRange
	LeftOpenRange
	RightOpenRange
)

var variantInfos = [...]struct {
	name, key, sep string
	startIn, endIn bool
}{
	ClosedRange:    {"ClosedRange", "closed", "..", true, true},
	OpenRange:      {"OpenRange", "open", "<..<", false, false},
	LeftOpenRange:  {"LeftOpenRange", "left-open", "<..", false, true},
	RightOpenRange: {"RightOpenRange", "right-open", "..<", true, false},
}

func (v Variant) String() string {
	if v.valid() {
		return variantInfos[v].name
	}
	return fmt.Sprintf("Variant(%d)", v)
}

// StartInclusive reports whether the start of a Range of this variant belongs
// to it.
func (v Variant) StartInclusive() bool { return v.valid() && variantInfos[v].startIn }

// EndInclusive reports whether the end of a Range of this variant belongs to
// it.
func (v Variant) EndInclusive() bool { return v.valid() && variantInfos[v].endIn }

func (v Variant) valid() bool { return int(v) < len(variantInfos) }

// Range is an immutable interval. It is safe for concurrent use; every
// traversal should use its own Iterator.
type Range[T Endpoint[T]] struct {
	start, end T
	variant    Variant
}

// New returns a Range of the given variant. A Range with a Variant other than
// the four defined ones is empty.
func New[T Endpoint[T]](v Variant, start, end T) Range[T] {
	return Range[T]{start, end, v}
}

// Closed returns the range start..end.
func Closed[T Endpoint[T]](start, end T) Range[T] {
	return New(ClosedRange, start, end)
}

// Open returns the range start<..<end.
func Open[T Endpoint[T]](start, end T) Range[T] {
	return New(OpenRange, start, end)
}

// LeftOpen returns the range start<..end.
func LeftOpen[T Endpoint[T]](start, end T) Range[T] {
	return New(LeftOpenRange, start, end)
}

// RightOpen returns the range start..<end.
func RightOpen[T Endpoint[T]](start, end T) Range[T] {
	return New(RightOpenRange, start, end)
}

func (r Range[T]) Start() T { return r.start }

func (r Range[T]) End() T { return r.end }

func (r Range[T]) Variant() Variant { return r.variant }

// Contains reports whether v lies in the range.
func (r Range[T]) Contains(v T) bool {
	if !r.variant.valid() {
		return false
	}
	if c := r.start.Compare(v); c > 0 || c == 0 && !r.variant.StartInclusive() {
		return false
	}
	if c := v.Compare(r.end); c > 0 || c == 0 && !r.variant.EndInclusive() {
		return false
	}
	return true
}

// Index is not implemented; it always returns an error matching
// errs.ErrNotImplemented.
func (r Range[T]) Index(i int) (T, error) {
	var zero T
	return zero, errs.NotImplemented{What: "index of " + r.variant.String()}
}

// Len is not implemented; it always returns an error matching
// errs.ErrNotImplemented.
func (r Range[T]) Len() (int, error) {
	return 0, errs.NotImplemented{What: "length of " + r.variant.String()}
}

func (r Range[T]) Kind() string { return "range" }

// String returns the range in its literal notation, like 0..<5.
func (r Range[T]) String() string {
	sep := " " + r.variant.String() + " "
	if r.variant.valid() {
		sep = variantInfos[r.variant].sep
	}
	return fmt.Sprintf("%v%s%v", r.start, sep, r.end)
}

// Coercer is implemented by endpoint types that accept values of other types
// in membership tests. The receiver is ignored.
type Coercer[T any] interface {
	Coerce(v any) (T, bool)
}

// ContainsValue implements vals.Container. Besides values of type T, it
// accepts Go integers for Int ranges, runes and single-character strings for
// Char and Str ranges, and whatever T accepts if it implements Coercer.
func (r Range[T]) ContainsValue(v any) bool {
	t, ok := endpointOf[T](v)
	return ok && r.Contains(t)
}

var _ vals.Container = Range[Int]{}

func endpointOf[T Endpoint[T]](v any) (T, bool) {
	var zero T
	// Coercers validate values of their own type too.
	if c, ok := any(zero).(Coercer[T]); ok {
		return c.Coerce(v)
	}
	if t, ok := v.(T); ok {
		return t, true
	}
	var conv any
	switch any(zero).(type) {
	case Int:
		if i, ok := vals.ScanInt(v); ok {
			conv = Int(i)
		}
	case Char:
		if r, ok := singleRune(v); ok {
			conv = Char(r)
		}
	case Str:
		if r, ok := singleRune(v); ok {
			conv = Str(string(r))
		}
	}
	t, ok := conv.(T)
	return t, ok
}

func singleRune(v any) (rune, bool) {
	switch v := v.(type) {
	case rune:
		return v, true
	case Char:
		return rune(v), true
	case string:
		return onlyRune(v)
	case Str:
		return onlyRune(string(v))
	}
	return 0, false
}

func onlyRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, false
	}
	return r, true
}
