// Package uord: the UOrd type, its accessors, and re-normalizing transforms.

package uord

import (
	"cmp"
	"encoding/json"
	"fmt"
	"iter"
)

// UOrd is an unordered pair: two values of type T whose slot order carries no
// meaning. The representation is normalized to (min, max) at construction, so
// equality, map hashing and encoding are all order-insensitive.
//
// The zero value is the pair of two zero T values. Build non-trivial pairs
// with New or NewBy so the normalization invariant holds.
type UOrd[T comparable] struct {
	min, max T
}

// New returns the unordered pair of a and b, normalized under T's natural
// ordering. New(a, b) and New(b, a) are indistinguishable.
// Complexity: O(1)
func New[T cmp.Ordered](a, b T) UOrd[T] {
	if b < a {
		a, b = b, a
	}

	return UOrd[T]{min: a, max: b}
}

// NewBy returns the unordered pair of a and b, normalized by the given
// strict comparison. less must be a total strict order on T; equal elements
// may land in either slot (both slots then compare equal anyway).
// Complexity: O(1)
func NewBy[T comparable](less func(a, b T) bool, a, b T) UOrd[T] {
	if less(b, a) {
		a, b = b, a
	}

	return UOrd[T]{min: a, max: b}
}

// Min returns the smaller element under the ordering used at construction.
func (u UOrd[T]) Min() T { return u.min }

// Max returns the larger element under the ordering used at construction.
func (u UOrd[T]) Max() T { return u.max }

// Tuple returns both elements as (min, max).
func (u UOrd[T]) Tuple() (T, T) { return u.min, u.max }

// Array returns both elements as a [min, max] array.
func (u UOrd[T]) Array() [2]T { return [2]T{u.min, u.max} }

// Contains reports whether either slot equals x.
func (u UOrd[T]) Contains(x T) bool {
	return u.min == x || u.max == x
}

// Other returns the element opposite to x, comma-ok. When both slots equal
// x, that same value is returned. This is the lookup used to find a link
// endpoint's partner.
func (u UOrd[T]) Other(x T) (T, bool) {
	switch x {
	case u.min:
		return u.max, true
	case u.max:
		return u.min, true
	default:
		var zero T
		return zero, false
	}
}

// IsDistinct reports whether the two elements differ.
func (u UOrd[T]) IsDistinct() bool {
	return u.min != u.max
}

// All yields both elements, min first.
func (u UOrd[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if !yield(u.min) {
			return
		}
		yield(u.max)
	}
}

// String renders the pair as "(min, max)".
func (u UOrd[T]) String() string {
	return fmt.Sprintf("(%v, %v)", u.min, u.max)
}

// Replace returns a pair with every slot equal to from substituted by to,
// re-normalized under T's natural ordering.
// Complexity: O(1)
func Replace[T cmp.Ordered](u UOrd[T], from, to T) UOrd[T] {
	return Map(u, func(v T) T {
		if v == from {
			return to
		}
		return v
	})
}

// ReplaceBy is Replace for element types ordered by an explicit comparison.
func ReplaceBy[T comparable](less func(a, b T) bool, u UOrd[T], from, to T) UOrd[T] {
	return MapBy(less, u, func(v T) T {
		if v == from {
			return to
		}
		return v
	})
}

// Map applies f to both elements and re-normalizes the result under U's
// natural ordering.
func Map[T comparable, U cmp.Ordered](u UOrd[T], f func(T) U) UOrd[U] {
	return New(f(u.min), f(u.max))
}

// MapBy is Map for result types ordered by an explicit comparison.
func MapBy[T, U comparable](less func(a, b U) bool, u UOrd[T], f func(T) U) UOrd[U] {
	return NewBy(less, f(u.min), f(u.max))
}

// MarshalJSON encodes the pair as the two-element array [min, max], so
// symmetric pairs produce byte-identical encodings. Decoding is left to the
// consumer: unmarshal the two elements and rebuild with New or NewBy, since
// re-normalizing requires the ordering.
func (u UOrd[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Array())
}
