// File: vector/iter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range-over-func traversal views. All views are lazy, restartable, and
// finite over [0, Len()); they follow the same invalidation rules as
// positional mutation, so do not Insert or Erase while ranging.

package vector

import "iter"

// All yields (index, element) pairs over the live range.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.block.At(i)) {
				return
			}
		}
	}
}

// Values yields elements in order. The explicitly read-only view.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.block.At(i)) {
				return
			}
		}
	}
}

// Mut yields (index, pointer) pairs for in-place mutation of the live range.
// Pointers are valid only until the next operation that may reallocate.
func (v *Vector[T]) Mut() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.block.At(i)) {
				return
			}
		}
	}
}
