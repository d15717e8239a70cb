// File: pool/vectorpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded free-list pool of vectors. Get prefers a pooled vector (capacity
// intact, length zero) over a fresh allocation; Put clears and retains up to
// the pool bound, releasing overflow.

package pool

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/growvec/vector"
)

const defaultPoolCapacity = 1024

// VectorPool retains cleared vectors for reuse.
type VectorPool[T any] struct {
	mu   sync.Mutex
	free *queue.Queue // of *vector.Vector[T]
	cap  int

	totalAlloc atomic.Uint64
	totalReuse atomic.Uint64
	totalDrop  atomic.Uint64
}

// Stats aggregates pool allocation/reuse counters.
type Stats struct {
	TotalAlloc uint64
	TotalReuse uint64
	TotalDrop  uint64
	Idle       int
}

// NewVectorPool creates a pool retaining at most capacity vectors.
// capacity <= 0 selects the default bound.
func NewVectorPool[T any](capacity int) *VectorPool[T] {
	if capacity <= 0 {
		capacity = defaultPoolCapacity
	}
	return &VectorPool[T]{
		free: queue.New(),
		cap:  capacity,
	}
}

// Get returns a pooled vector, or a fresh empty one when the pool is dry.
// Pooled vectors come back with length zero and their prior capacity intact.
func (p *VectorPool[T]) Get() *vector.Vector[T] {
	p.mu.Lock()
	if p.free.Length() > 0 {
		v := p.free.Remove().(*vector.Vector[T])
		p.mu.Unlock()
		p.totalReuse.Add(1)
		return v
	}
	p.mu.Unlock()
	p.totalAlloc.Add(1)
	return vector.New[T]()
}

// Put clears v and retains it for reuse. When the pool is at its bound the
// vector is released instead. v must not be used after Put.
func (p *VectorPool[T]) Put(v *vector.Vector[T]) {
	if v == nil {
		return
	}
	v.Clear()
	p.mu.Lock()
	if p.free.Length() < p.cap {
		p.free.Add(v)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	p.totalDrop.Add(1)
	v.Release()
}

// Stats reports pool counters.
func (p *VectorPool[T]) Stats() Stats {
	p.mu.Lock()
	idle := p.free.Length()
	p.mu.Unlock()
	return Stats{
		TotalAlloc: p.totalAlloc.Load(),
		TotalReuse: p.totalReuse.Load(),
		TotalDrop:  p.totalDrop.Load(),
		Idle:       idle,
	}
}
