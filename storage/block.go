// File: storage/block.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Heap-backed fixed-capacity storage block. This is the default backing
// store for vector.Vector; every slot holds a valid zero value from the
// moment of allocation, never garbage.

package storage

// Block is a fixed number of owned element slots. It has no growth logic;
// the owner replaces the whole block to grow.
type Block[T any] interface {
	// Len returns the number of slots the block owns. Zero means the
	// block owns nothing, a recognized empty state.
	Len() int

	// At returns a pointer to slot i. Unchecked: the owner is solely
	// responsible for 0 <= i < Len(); violations terminate the program.
	At(i int) *T

	// Release frees the owned storage. Exactly-once: a second Release
	// is a no-op. The block must not be used after Release.
	Release()
}

// Alloc produces a block of exactly n zero-valued slots. Containers take an
// Alloc to select a backing store.
type Alloc[T any] func(n int) Block[T]

// heapBlock owns a GC-managed slice of slots.
type heapBlock[T any] struct {
	items []T
}

// NewHeap allocates a heap-backed block of exactly n zero-valued slots.
// n == 0 yields a block that owns nothing. Negative n panics.
func NewHeap[T any](n int) Block[T] {
	if n < 0 {
		panic("storage: negative block size")
	}
	if n == 0 {
		return &heapBlock[T]{}
	}
	return &heapBlock[T]{items: make([]T, n)}
}

func (b *heapBlock[T]) Len() int { return len(b.items) }

func (b *heapBlock[T]) At(i int) *T { return &b.items[i] }

func (b *heapBlock[T]) Release() { b.items = nil }

// Swap exchanges two owners' blocks in O(1). No element moves.
func Swap[T any](a, b *Block[T]) {
	*a, *b = *b, *a
}
