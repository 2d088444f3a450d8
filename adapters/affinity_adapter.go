// File: adapters/affinity_adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
// Description:
//   Adapter implementing the api.Affinity interface, delegating to
//   the affinity package for CPU pinning of the calling thread.
//
// Package adapters provides glue code between the core API contracts
// and the internal implementation.

package adapters

import (
	"github.com/momentics/spinreact/affinity"
	"github.com/momentics/spinreact/api"
)

// AffinityAdapter implements api.Affinity on top of affinity.SetAffinity.
// Pin binds the calling goroutine's OS thread, so the adapter is meant to be
// used from the goroutine that will run the dispatcher.
type AffinityAdapter struct {
	currentCPU int
	pinned     bool
}

// NewAffinityAdapter creates an unpinned adapter. The current CPU is -1.
func NewAffinityAdapter() api.Affinity {
	return &AffinityAdapter{currentCPU: -1}
}

// Pin locks the calling goroutine to its thread and binds it to cpuID.
func (a *AffinityAdapter) Pin(cpuID int) error {
	if err := affinity.SetAffinity(cpuID); err != nil {
		return err
	}
	a.currentCPU = cpuID
	a.pinned = true
	return nil
}

// Unpin restores the start-up affinity mask and releases the thread lock.
// Unpinning an unpinned adapter is a no-op.
func (a *AffinityAdapter) Unpin() error {
	if !a.pinned {
		return nil
	}
	if err := affinity.ClearAffinity(); err != nil {
		return err
	}
	a.pinned = false
	a.currentCPU = -1
	return nil
}

// Get returns the pinned CPU, or -1.
func (a *AffinityAdapter) Get() (int, error) {
	return a.currentCPU, nil
}
