//go:build unix

// File: internal/shm/mmap_unix.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package shm

import (
	"github.com/momentics/spinreact/api"
	"golang.org/x/sys/unix"
)

// PageSize returns the virtual memory page size.
func PageSize() int {
	return unix.Getpagesize()
}

// NewAnonymous maps size bytes of zeroed, page-aligned shared anonymous
// memory. It has the same alignment and atomicity properties as a named
// segment and is used where both sides live in one process.
func NewAnonymous(size int) (*Region, error) {
	mem, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANON)
	if err != nil {
		return nil, api.NewError(api.ErrCodeMappingFailed, "anonymous mmap failed").
			WithContext("size", size).Wrap(err)
	}
	return &Region{mem: mem, unmap: unix.Munmap}, nil
}
