// File: api/signal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Contract for the shared two-slot signal consumed by every dispatcher.

package api

// Signal is the reactor's view of the shared region: it observes the writer
// slot and publishes into the reactor slot. Implementations must be safe for
// one reactor goroutine running against one external writer.
type Signal interface {
	// ReadWriterSlot atomically loads the writer slot.
	ReadWriterSlot() uint64

	// WriteReactorSlot atomically stores value into the reactor slot.
	WriteReactorSlot(value uint64)

	// WaitForWriterChange busy-polls the writer slot until it differs from
	// last and returns the first differing value. It never returns if the
	// writer stops changing the slot.
	WaitForWriterChange(last uint64) uint64
}
