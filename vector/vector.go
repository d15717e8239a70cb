// File: vector/vector.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Core container: construction, capacity control, geometric growth, element
// access, and ownership transfer. Positional insert/erase live in
// iterator.go, traversal views in iter.go, relational operators in
// compare.go.

package vector

import (
	"github.com/momentics/growvec/api"
	"github.com/momentics/growvec/internal/normalize"
	"github.com/momentics/growvec/storage"
)

// Vector is a growable contiguous sequence of T. The zero value is an empty
// vector ready for use.
//
// Invariants: every index in [0, Len()) holds a valid element; every index in
// [Len(), Cap()) holds a valid default value, never garbage; Cap() always
// equals the owned block's slot count.
type Vector[T any] struct {
	block    storage.Block[T]
	size     int
	capacity int
	alloc    storage.Alloc[T]
}

// Compile-time check: Vector satisfies the sequence contract.
var _ api.Sequence[int] = (*Vector[int])(nil)

// Option configures a vector at construction time.
type Option[T any] func(*Vector[T])

// WithAllocator selects the storage backend used for every allocation the
// vector performs, including reallocation on growth. Default is
// storage.NewHeap.
func WithAllocator[T any](alloc storage.Alloc[T]) Option[T] {
	return func(v *Vector[T]) { v.alloc = alloc }
}

// ReserveHint is a pure value object carrying a requested capacity. It exists
// only to select the capacity-reserving constructor.
type ReserveHint struct {
	capacity int
}

// Reserve builds a ReserveHint for NewReserve. Negative requests clamp to 0.
func Reserve(n int) ReserveHint {
	return ReserveHint{capacity: normalize.Clamp(n)}
}

// Cap returns the requested capacity.
func (h ReserveHint) Cap() int { return h.capacity }

// New returns an empty vector: size 0, capacity 0, no storage.
func New[T any](opts ...Option[T]) *Vector[T] {
	v := &Vector[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewSize returns a vector of n default-valued elements; capacity equals n.
func NewSize[T any](n int, opts ...Option[T]) *Vector[T] {
	var zero T
	return NewFill(n, zero, opts...)
}

// NewFill returns a vector of n copies of fill; capacity equals n.
func NewFill[T any](n int, fill T, opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	n = normalize.Clamp(n)
	if n > 0 {
		fresh := v.allocFn()(n)
		for i := 0; i < n; i++ {
			*fresh.At(i) = fill
		}
		v.block = fresh
	}
	v.size = n
	v.capacity = n
	return v
}

// Of returns a vector holding vals in order; capacity equals len(vals).
func Of[T any](vals ...T) *Vector[T] {
	v := New[T]()
	if len(vals) > 0 {
		fresh := v.allocFn()(len(vals))
		for i, val := range vals {
			*fresh.At(i) = val
		}
		v.block = fresh
	}
	v.size = len(vals)
	v.capacity = len(vals)
	return v
}

// NewReserve returns an empty vector with capacity at least h.Cap(). The
// hint is applied to the returned vector itself.
func NewReserve[T any](h ReserveHint, opts ...Option[T]) *Vector[T] {
	v := New(opts...)
	v.Reserve(h.Cap())
	return v
}

// allocFn returns the configured allocator, defaulting to heap storage so
// the zero-value Vector works without construction.
func (v *Vector[T]) allocFn() storage.Alloc[T] {
	if v.alloc != nil {
		return v.alloc
	}
	return storage.NewHeap[T]
}

// replaceBlock swaps fresh in as the owned block and releases the old one.
func (v *Vector[T]) replaceBlock(fresh storage.Block[T]) {
	storage.Swap(&v.block, &fresh)
	if fresh != nil {
		fresh.Release()
	}
}

// Len returns the number of logically present elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots backing the vector.
func (v *Vector[T]) Cap() int { return v.capacity }

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Get returns the element at index i. Unchecked access: i must be within
// [0, Len()); violations are programmer errors and panic.
func (v *Vector[T]) Get(i int) T {
	if i < 0 || i >= v.size {
		panic("vector: index out of range")
	}
	return *v.block.At(i)
}

// Set assigns the element at index i. Same contract as Get.
func (v *Vector[T]) Set(i int, val T) {
	if i < 0 || i >= v.size {
		panic("vector: index out of range")
	}
	*v.block.At(i) = val
}

// At is the checked access path: it returns api.ErrIndexOutOfRange when i is
// not within [0, Len()), and behaves like Get otherwise.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, api.ErrIndexOutOfRange
	}
	return *v.block.At(i), nil
}

// AtPtr is the checked mutable access path.
func (v *Vector[T]) AtPtr(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, api.ErrIndexOutOfRange
	}
	return v.block.At(i), nil
}

// Reserve grows capacity to exactly newCap when newCap exceeds the current
// capacity; otherwise it is a no-op. All currently allocated slots
// [0, Cap()) move to the new block, unused tail included: those slots
// already hold valid default values and keep them across the reallocation.
func (v *Vector[T]) Reserve(newCap int) {
	newCap = normalize.Clamp(newCap)
	if newCap <= v.capacity {
		return
	}
	fresh := v.allocFn()(newCap)
	for i := 0; i < v.capacity; i++ {
		*fresh.At(i) = *v.block.At(i)
	}
	// [v.capacity, newCap) is zero-valued by allocation.
	v.replaceBlock(fresh)
	v.capacity = newCap
}

// Resize sets the length to newSize. Growing past capacity doubles the
// capacity (from 1 when zero) until newSize fits, then reallocates; growing
// within capacity fills [Len(), newSize) with the default value in place.
// Shrinking only moves the size marker; capacity never decreases.
func (v *Vector[T]) Resize(newSize int) {
	newSize = normalize.Clamp(newSize)
	if newSize > v.size {
		if newSize > v.capacity {
			newCap := normalize.GrowCapacity(v.capacity, newSize)
			fresh := v.allocFn()(newCap)
			for i := 0; i < v.size; i++ {
				*fresh.At(i) = *v.block.At(i)
			}
			v.replaceBlock(fresh)
			v.capacity = newCap
		}
		// Slots past a previous shrink hold stale values; restore defaults.
		var zero T
		for i := v.size; i < newSize; i++ {
			*v.block.At(i) = zero
		}
	}
	v.size = newSize
}

// PushBack appends item, growing geometrically as needed.
func (v *Vector[T]) PushBack(item T) {
	v.Resize(v.size + 1)
	*v.block.At(v.size - 1) = item
}

// PopBack removes the last element. Popping an empty vector is a programmer
// error and panics.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
}

// Clear sets the length to zero. Capacity and block contents are untouched;
// slots beyond the new size keep their stale values until overwritten.
func (v *Vector[T]) Clear() { v.size = 0 }

// Swap exchanges contents with other in O(1): blocks, counters, and
// allocators trade places, no element moves.
func (v *Vector[T]) Swap(other *Vector[T]) {
	storage.Swap(&v.block, &other.block)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.alloc, other.alloc = other.alloc, v.alloc
}

// Clone deep-copies the vector: fresh storage sized to the source capacity,
// the source's Len() elements copied over. Mutating the clone never affects
// the source.
func (v *Vector[T]) Clone() *Vector[T] {
	out := &Vector[T]{alloc: v.alloc}
	if v.capacity > 0 {
		fresh := out.allocFn()(v.capacity)
		for i := 0; i < v.size; i++ {
			*fresh.At(i) = *v.block.At(i)
		}
		out.block = fresh
	}
	out.size = v.size
	out.capacity = v.capacity
	return out
}

// Move transfers ownership of the block and counters to a new vector and
// leaves the receiver empty: size 0, capacity 0, no storage.
func (v *Vector[T]) Move() *Vector[T] {
	out := &Vector[T]{
		block:    v.block,
		size:     v.size,
		capacity: v.capacity,
		alloc:    v.alloc,
	}
	v.block = nil
	v.size = 0
	v.capacity = 0
	return out
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// Self-assignment is a programmer error and panics. Strong safety: the copy
// is built in full before the exchange, so a failed copy leaves the receiver
// unchanged.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if v == src {
		panic("vector: self-assignment")
	}
	tmp := src.Clone()
	v.Swap(tmp)
	tmp.Release()
}

// MoveFrom steals src's block and counters, releasing the receiver's prior
// storage, and leaves src empty. Self-assignment is a programmer error and
// panics.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		panic("vector: self-assignment")
	}
	v.Release()
	v.block = src.block
	v.size = src.size
	v.capacity = src.capacity
	v.alloc = src.alloc
	src.block = nil
	src.size = 0
	src.capacity = 0
}

// Release frees the owned block and resets the vector to empty. Needed when
// the backing store lives outside the GC heap (storage.NewMmapBytes);
// heap-backed vectors may simply be dropped.
func (v *Vector[T]) Release() {
	if v.block != nil {
		v.block.Release()
		v.block = nil
	}
	v.size = 0
	v.capacity = 0
}
