//go:build !linux
// +build !linux

// File: storage/mmap_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub mmap allocator for platforms without anonymous-mapping support.
// Falls back to the heap block so callers keep working unchanged.

package storage

import "github.com/momentics/growvec/api"

// NewMmapBytes falls back to heap allocation on this platform.
func NewMmapBytes(n int) (Block[byte], error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative block size").
			WithContext("size", n)
	}
	return NewHeap[byte](n), nil
}
