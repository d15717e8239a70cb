// File: internal/normalize/normalize.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unified size and capacity normalization routines for sequence containers.
// Ensures all growth decisions go through one doubling policy so that a run
// of single-element appends reaches size n with at most ceil(log2(n))
// reallocations. Should be used by ALL call sites computing new capacities.

package normalize

// Clamp normalizes a size or capacity request to a non-negative value.
// Negative requests are treated as zero.
func Clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// GrowCapacity returns the capacity a container must reallocate to so that
// need elements fit, doubling from current (starting at 1 when current is 0)
// until the result is >= need. Returns current unchanged when need already
// fits.
func GrowCapacity(current, need int) int {
	need = Clamp(need)
	if need <= current {
		return current
	}
	next := current
	if next == 0 {
		next = 1
	}
	for next < need {
		next *= 2
	}
	return next
}
