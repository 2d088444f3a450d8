// Package api
// Author: momentics@gmail.com
//
// CPU affinity and thread pinning definitions.

package api

// Affinity controls execution on a particular CPU.
type Affinity interface {
	// Pin locks the current goroutine to its OS thread and binds that thread
	// to cpuID.
	Pin(cpuID int) error
	// Unpin removes affinity and releases the OS thread lock.
	Unpin() error
	// Get returns the currently pinned CPU, or -1.
	Get() (cpuID int, err error)
}
