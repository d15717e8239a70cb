// Package vector
// Author: momentics <momentics@gmail.com>
//
// Generic, contiguous, dynamically-resizable sequence container with value
// semantics, random access, amortized-constant append, and explicit capacity
// control. Built on a single exclusively-owned storage.Block; all growth
// policy, size/capacity bookkeeping, and positional mutation algorithms live
// here. Single-threaded: callers provide their own synchronization for
// concurrent use (single-writer/multiple-reader discipline).
//
// Failure model: programmer errors (popping an empty vector, self-assignment,
// out-of-range positions) panic; the only recoverable error is the checked
// access path At, which reports api.ErrIndexOutOfRange.
package vector
