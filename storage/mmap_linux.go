//go:build linux
// +build linux

// File: storage/mmap_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux mmap-backed byte block. Maps an anonymous private region outside
// the Go heap; Release munmaps it. Byte elements only: values containing
// pointers must stay on the GC heap.

package storage

import (
	"sync"

	"golang.org/x/sys/unix"

	"github.com/momentics/growvec/api"
)

// mmapBlock owns an anonymous mapping. Release is guarded so the region is
// unmapped exactly once.
type mmapBlock struct {
	data     []byte
	mu       sync.Mutex
	released bool
}

// NewMmapBytes maps n zero-filled bytes of anonymous private memory.
// n == 0 yields a heap block that owns nothing (no mapping to manage).
func NewMmapBytes(n int) (Block[byte], error) {
	if n < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative block size").
			WithContext("size", n)
	}
	if n == 0 {
		return NewHeap[byte](0), nil
	}
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, api.NewError(api.ErrCodeAllocFailed, api.ErrMmapFailed.Error()).
			WithContext("size", n).
			WithContext("errno", err.Error())
	}
	return &mmapBlock{data: data}, nil
}

func (b *mmapBlock) Len() int { return len(b.data) }

func (b *mmapBlock) At(i int) *byte { return &b.data[i] }

func (b *mmapBlock) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.released {
		return
	}
	_ = unix.Munmap(b.data)
	b.data = nil
	b.released = true
}
