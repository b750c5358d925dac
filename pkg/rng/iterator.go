package rng

import "iter"

// Iterator walks the elements of a Range in increasing order. It is either
// positioned at a candidate value or exhausted; once exhausted it stays so.
// An Iterator cannot be restarted; request a new one from the Range instead.
type Iterator[T Endpoint[T]] struct {
	rng    Range[T]
	needle T
	done   bool
}

// Iterator returns a new Iterator positioned at the first element of r.
func (r Range[T]) Iterator() *Iterator[T] {
	it := &Iterator[T]{rng: r, needle: r.start}
	if !r.Contains(it.needle) {
		it.advance()
	}
	return it
}

// Next returns the next element and true, or the zero value and false if the
// iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.done || !it.rng.Contains(it.needle) {
		it.done = true
		var zero T
		return zero, false
	}
	v := it.needle
	it.advance()
	return v, true
}

// Moves the needle one step. A step that does not increase the needle, such
// as an overflowing Int or a saturated value, exhausts the iterator.
func (it *Iterator[T]) advance() {
	next := it.needle.Incremented()
	if next.Compare(it.needle) <= 0 {
		it.done = true
		return
	}
	it.needle = next
}

// All returns a sequence of the elements of r. Each use of the sequence walks
// a fresh Iterator.
func (r Range[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := r.Iterator()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
