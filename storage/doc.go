// Package storage
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity owned storage blocks for sequence containers.
// A Block allocates once and never grows; all growth policy lives in the
// container that owns it. Blocks are exchanged between owners in O(1) with
// no element-level work. See block.go and mmap_linux.go for implementations.
package storage
