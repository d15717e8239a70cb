// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract for contiguous, dynamically-resizable sequence containers.
//
// A Sequence owns its backing storage exclusively; no sharing, no reference
// counting. Transfer of ownership is always an exclusive hand-off.

package api

// Sequence describes the operations a growable contiguous container exposes.
type Sequence[T any] interface {
	// Len returns the number of logically present elements.
	Len() int

	// Cap returns the number of slots currently backing the sequence.
	// Always Cap() >= Len().
	Cap() int

	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool

	// Get returns the element at index i. Unchecked: callers are solely
	// responsible for i < Len(); violating that is a programmer error
	// and terminates the program.
	Get(i int) T

	// Set assigns the element at index i. Same contract as Get.
	Set(i int, v T)

	// At returns the element at index i, or ErrIndexOutOfRange when
	// i >= Len(). The only recoverable failure in the library.
	At(i int) (T, error)

	// PushBack appends v, growing capacity geometrically as needed.
	PushBack(v T)

	// PopBack removes the last element. Panics on an empty sequence.
	PopBack()

	// Clear sets the length to zero. Capacity is untouched.
	Clear()
}
