// Package pool
// Author: momentics <momentics@gmail.com>
//
// Vector reuse pooling for allocation-sensitive call sites. A VectorPool
// retains cleared vectors on a bounded free list so their capacity survives
// between uses. See vectorpool.go for implementation details.
package pool
