// Package fake
// Author: momentics <momentics@gmail.com>
//
// In-process stand-ins for the shared region, the signal and CPU affinity,
// for tests and dry runs.

package fake

import "unsafe"

// Region is a heap-backed region. The backing array is []uint64 so the first
// byte is always 8-byte aligned.
type Region struct {
	words []uint64
	mem   []byte
}

// NewRegion allocates a zeroed region of at least size bytes.
func NewRegion(size int) *Region {
	if size <= 0 {
		return &Region{}
	}
	words := make([]uint64, (size+7)/8)
	mem := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
	return &Region{words: words, mem: mem}
}

// Bytes returns the region memory.
func (r *Region) Bytes() []byte { return r.mem }

// Name is always empty for fake regions.
func (r *Region) Name() string { return "" }
