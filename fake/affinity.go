// Package fake
// Author: momentics <momentics@gmail.com>

package fake

import (
	"sync"

	"github.com/momentics/spinreact/api"
)

// Affinity records pin requests without touching the OS scheduler. Set Fail
// to make Pin return it.
type Affinity struct {
	mu   sync.Mutex
	cpu  int
	pins []int
	Fail error
}

var _ api.Affinity = (*Affinity)(nil)

// NewAffinity returns an unpinned fake.
func NewAffinity() *Affinity {
	return &Affinity{cpu: -1}
}

// Pin records cpuID.
func (a *Affinity) Pin(cpuID int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Fail != nil {
		return a.Fail
	}
	a.cpu = cpuID
	a.pins = append(a.pins, cpuID)
	return nil
}

// Unpin resets the recorded CPU.
func (a *Affinity) Unpin() error {
	a.mu.Lock()
	a.cpu = -1
	a.mu.Unlock()
	return nil
}

// Get returns the recorded CPU, or -1.
func (a *Affinity) Get() (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cpu, nil
}

// Pins returns every successful Pin argument in order.
func (a *Affinity) Pins() []int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]int(nil), a.pins...)
}
