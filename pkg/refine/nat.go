// Package refine implements refinement types over integers: Nat, the
// non-negative integers, and Bool, the naturals restricted to 0 and 1.
//
// Values of these types can only be obtained through validating constructors,
// which report violations with the result convention instead of panicking.
package refine

import (
	"cmp"
	"math"
	"strconv"

	"github.com/tenkai-lang/prelude/pkg/result"
)

// Nat is a non-negative integer. The zero Nat is 0.
type Nat struct {
	n int
}

// TryNewNat validates raw as a Nat.
func TryNewNat(raw int) result.Result[Nat] {
	if raw < 0 {
		return result.Err[Nat]("Nat can't be negative")
	}
	return result.Ok(Nat{raw})
}

// Int returns the wrapped integer.
func (n Nat) Int() int { return n.n }

// Times calls f exactly n times, sequentially.
func (n Nat) Times(f func()) {
	for i := 0; i < n.n; i++ {
		f()
	}
}

// Compare returns -1, 0 or 1 as n is less than, equal to or greater than m.
func (n Nat) Compare(m Nat) int { return cmp.Compare(n.n, m.n) }

// Incremented returns the successor of n. The largest Nat is its own
// successor.
func (n Nat) Incremented() Nat {
	if n.n == math.MaxInt {
		return n
	}
	return Nat{n.n + 1}
}

func (n Nat) Kind() string { return "Nat" }

func (n Nat) String() string { return strconv.Itoa(n.n) }

// Coerce validates v as a Nat, as NatFrom does. It lets Nat ranges test raw
// integers for membership.
func (Nat) Coerce(v any) (Nat, bool) { return NatFrom(v).Value() }
