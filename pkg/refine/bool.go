package refine

import "github.com/tenkai-lang/prelude/pkg/result"

// Bool is a Nat restricted to 0 (False) and 1 (True). It shares the
// representation of Nat but has its own validity predicate and rendering.
type Bool Nat

// The two Bool values.
var (
	False = Bool{0}
	True  = Bool{1}
)

// TryNewBool validates raw as a Bool.
func TryNewBool(raw int) result.Result[Bool] {
	if raw != 0 && raw != 1 {
		return result.Err[Bool]("Bool can't be other than True or False")
	}
	return result.Ok(Bool{raw})
}

// BoolOf converts a Go bool.
func BoolOf(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Truth returns whether b is True.
func (b Bool) Truth() bool { return b.n != 0 }

// Nat returns b as a Nat.
func (b Bool) Nat() Nat { return Nat(b) }

// Int returns 0 or 1.
func (b Bool) Int() int { return b.n }

func (b Bool) Kind() string { return "Bool" }

// String returns "True" or "False".
func (b Bool) String() string {
	if b.Truth() {
		return "True"
	}
	return "False"
}
