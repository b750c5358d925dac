package rng

import (
	"cmp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Endpoint is the capability every Range endpoint type must have: a total
// order and a successor. Int, Char and Str are the built-in implementations;
// other types become usable as endpoints by implementing it.
type Endpoint[T any] interface {
	// Compare returns a negative number, zero or a positive number as the
	// receiver is less than, equal to or greater than the argument.
	Compare(T) int
	// Incremented returns the next value in the order.
	Incremented() T
}

var (
	_ Endpoint[Int]  = Int(0)
	_ Endpoint[Char] = Char(0)
	_ Endpoint[Str]  = Str("")
)

// Int is an integer endpoint. It steps by 1.
type Int int

func (i Int) Compare(j Int) int { return cmp.Compare(i, j) }

// Incremented returns i+1. The successor of the largest Int wraps around; an
// Iterator stops there since the order does not increase.
func (i Int) Incremented() Int { return i + 1 }

// Int returns i as an int.
func (i Int) Int() int { return int(i) }

func (i Int) String() string { return strconv.Itoa(int(i)) }

// Char is a character endpoint. It steps to the next code point.
type Char rune

func (c Char) Compare(d Char) int { return cmp.Compare(c, d) }

func (c Char) Incremented() Char { return c + 1 }

func (c Char) String() string { return string(rune(c)) }

// Str is a character endpoint in textual form: a string holding a single
// character. It steps to the string holding the next code point, skipping the
// surrogate block, which has no UTF-8 encoding. Only the first character of a
// longer string takes part in stepping.
type Str string

func (s Str) Compare(t Str) int { return strings.Compare(string(s), string(t)) }

func (s Str) Incremented() Str {
	r, _ := utf8.DecodeRuneInString(string(s))
	if s == "" {
		r = -1
	}
	r++
	if r >= surrogateMin && r <= surrogateMax {
		r = surrogateMax + 1
	}
	return Str(string(r))
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)
