// File: storage/mmap.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package storage

// MustMmapBytes is NewMmapBytes panicking on allocation failure. Its
// signature matches Alloc[byte], so it can back a container directly.
func MustMmapBytes(n int) Block[byte] {
	b, err := NewMmapBytes(n)
	if err != nil {
		panic(err)
	}
	return b
}
