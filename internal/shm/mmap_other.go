//go:build !unix

// File: internal/shm/mmap_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shm

import "os"

// PageSize returns the virtual memory page size.
func PageSize() int {
	return os.Getpagesize()
}

// NewAnonymous falls back to heap memory, which the Go allocator aligns to at
// least 8 bytes for allocations of this size.
func NewAnonymous(size int) (*Region, error) {
	return &Region{mem: make([]byte, size)}, nil
}
