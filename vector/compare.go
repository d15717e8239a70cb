// File: vector/compare.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Relational operators over vectors of matching element type: element-wise
// equality and lexicographic ordering, as free functions in the manner of
// the slices package.

package vector

import "cmp"

// Equal reports element-wise equality: same length, equal elements in order.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if *a.block.At(i) != *b.block.At(i) {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Compare orders a and b lexicographically: the first unequal element pair
// decides; otherwise the shorter vector orders first. Returns -1, 0, or +1.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := a.size
	if b.size < n {
		n = b.size
	}
	for i := 0; i < n; i++ {
		if c := cmp.Compare(*a.block.At(i), *b.block.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports a < b in lexicographic order.
func Less[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessEqual reports a <= b in lexicographic order.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// Greater reports a > b in lexicographic order.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// GreaterEqual reports a >= b in lexicographic order.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }
