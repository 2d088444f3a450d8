// File: signal/layout.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package signal

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/spinreact/api"
	"golang.org/x/sys/cpu"
)

const (
	// WriterSlotOffset is the byte offset of the producer's counter.
	WriterSlotOffset = 0
	// ReactorSlotOffset is the byte offset of the reactor's counter.
	ReactorSlotOffset = 2048
	// SlotSize is the width of a slot in bytes.
	SlotSize = 8
	// MinRegionSize is the smallest region that holds both slots.
	MinRegionSize = ReactorSlotOffset + SlotSize
)

// CacheLineSize is the platform cache line size as padded by x/sys/cpu.
var CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// SlotDistance returns the byte distance between the two slots.
func SlotDistance() int {
	return ReactorSlotOffset - WriterSlotOffset
}

// LayoutValid reports whether both slots fit in a region of pageSize bytes
// and are at least one cache line apart.
func LayoutValid(pageSize int) bool {
	return pageSize >= MinRegionSize && SlotDistance() >= CacheLineSize
}

// bindSlot returns a typed atomic view of the 8 bytes at off. It rejects any
// offset that is misaligned or not fully inside mem.
func bindSlot(mem []byte, off int) (*atomic.Uint64, error) {
	if off < 0 || off+SlotSize > len(mem) {
		return nil, api.NewError(api.ErrCodeRegionSizeMismatch, "slot outside region").
			WithContext("offset", off).
			WithContext("size", len(mem))
	}
	p := unsafe.Pointer(&mem[off])
	if uintptr(p)%SlotSize != 0 {
		return nil, api.NewError(api.ErrCodeRegionSizeMismatch, "slot not 8-byte aligned").
			WithContext("offset", off)
	}
	return (*atomic.Uint64)(p), nil
}
