package refine

import (
	"github.com/tenkai-lang/prelude/pkg/result"
	"github.com/tenkai-lang/prelude/pkg/vals"
)

// Descriptors of the refinement types, for use with vals.Contains.
var (
	NatType  vals.Type = natType{}
	BoolType vals.Type = boolType{}
)

type natType struct{}

func (natType) Name() string { return "Nat" }

func (natType) String() string { return "Nat" }

func (natType) Kind() string { return "type" }

// A Bool is also a Nat.
func (natType) IsInstance(v any) bool {
	switch v.(type) {
	case Nat, Bool:
		return true
	}
	return false
}

func (natType) TryNew(v any) result.Outcome { return NatFrom(v) }

type boolType struct{}

func (boolType) Name() string { return "Bool" }

func (boolType) String() string { return "Bool" }

func (boolType) Kind() string { return "type" }

func (boolType) IsInstance(v any) bool {
	_, ok := v.(Bool)
	return ok
}

func (boolType) TryNew(v any) result.Outcome { return BoolFrom(v) }

// NatFrom validates an arbitrary Go value as a Nat. It accepts Go integers of
// any type, Go bools (as 0 and 1), and values implementing vals.Inter.
func NatFrom(v any) result.Result[Nat] {
	if b, ok := v.(bool); ok {
		return result.Ok(BoolOf(b).Nat())
	}
	i, ok := vals.ScanInt(v)
	if !ok {
		return result.Errf[Nat]("Nat can't be constructed from %s", vals.Kind(v))
	}
	return TryNewNat(i)
}

// BoolFrom validates an arbitrary Go value as a Bool. It accepts Go bools and
// the integers 0 and 1 of any type.
func BoolFrom(v any) result.Result[Bool] {
	if b, ok := v.(bool); ok {
		return result.Ok(BoolOf(b))
	}
	i, ok := vals.ScanInt(v)
	if !ok {
		return result.Err[Bool]("Bool can't be other than True or False")
	}
	return TryNewBool(i)
}
