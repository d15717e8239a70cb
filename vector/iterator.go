// File: vector/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Positions and positional mutation. A position is an owner-relative index,
// not a raw pointer, so it survives the reallocation Insert may trigger;
// positions at or after a mutation point are still invalidated in the
// container sense (they name different elements afterwards).

package vector

// Iterator names a slot of a specific vector by index. The zero value is
// invalid.
type Iterator[T any] struct {
	vec *Vector[T]
	idx int
}

// Begin returns the position of the first element (equal to End on an empty
// vector).
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{vec: v, idx: 0} }

// End returns the past-the-end position, a valid insertion point meaning
// append.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{vec: v, idx: v.size} }

// Pos returns the position of index i. i may equal Len() (the end position).
func (v *Vector[T]) Pos(i int) Iterator[T] {
	if i < 0 || i > v.size {
		panic("vector: position out of range")
	}
	return Iterator[T]{vec: v, idx: i}
}

// Index returns the owner-relative index the position names.
func (it Iterator[T]) Index() int { return it.idx }

// Valid reports whether the position names a live element of its vector.
// The end position is not Valid: it can be inserted at but not read.
func (it Iterator[T]) Valid() bool {
	return it.vec != nil && it.idx >= 0 && it.idx < it.vec.size
}

// Value returns the element at the position. Panics when not Valid.
func (it Iterator[T]) Value() T {
	if !it.Valid() {
		panic("vector: dereference of invalid position")
	}
	return *it.vec.block.At(it.idx)
}

// Set assigns the element at the position. Panics when not Valid.
func (it Iterator[T]) Set(val T) {
	if !it.Valid() {
		panic("vector: assignment through invalid position")
	}
	*it.vec.block.At(it.idx) = val
}

// Next returns the position one slot further.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{vec: it.vec, idx: it.idx + 1} }

// Prev returns the position one slot back.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{vec: it.vec, idx: it.idx - 1} }

// Insert places value at pos, shifting the tail right by one. pos must lie
// within [Begin(), End()]; End() means append. Growth may reallocate, which
// invalidates previously held positions; the returned position is valid and
// names the inserted element.
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	if pos.vec != v || pos.idx < 0 || pos.idx > v.size {
		panic("vector: Insert position out of range")
	}
	if v.size == 0 {
		v.Resize(1)
		*v.block.At(0) = value
		return Iterator[T]{vec: v, idx: 0}
	}

	// Stash the tail [pos, end), grow by one, then place value at the slot
	// recomputed from the tail length: the growth may have reallocated.
	d := v.size - pos.idx
	stash := v.allocFn()(d)
	for i := 0; i < d; i++ {
		*stash.At(i) = *v.block.At(pos.idx + i)
	}
	v.Resize(v.size + 1)
	target := v.size - d - 1
	*v.block.At(target) = value
	for i := 0; i < d; i++ {
		*v.block.At(target + 1 + i) = *stash.At(i)
	}
	stash.Release()
	return Iterator[T]{vec: v, idx: target}
}

// Erase removes the element at pos, shifting the tail left by one. Erasing
// from an empty vector or through an out-of-range position is a programmer
// error and panics. The returned position names whatever followed the erased
// element, or the new end when the last element was erased. Erase never
// reallocates.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	if v.size == 0 {
		panic("vector: Erase on empty vector")
	}
	if pos.vec != v || pos.idx < 0 || pos.idx >= v.size {
		panic("vector: Erase position out of range")
	}
	for i := pos.idx; i < v.size-1; i++ {
		*v.block.At(i) = *v.block.At(i + 1)
	}
	v.size--
	return Iterator[T]{vec: v, idx: pos.idx}
}
