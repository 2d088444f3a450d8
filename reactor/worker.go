// File: reactor/worker.go
// Author: momentics <momentics@gmail.com>

package reactor

import "github.com/momentics/spinreact/api"

// Worker is the reference handler: it echoes each value into the reactor
// slot and keeps its own copy of the last value handled.
type Worker struct {
	sig   api.Signal
	state uint64
}

var _ api.Handler = (*Worker)(nil)

// NewWorker returns a Worker writing to sig's reactor slot.
func NewWorker(sig api.Signal) *Worker {
	return &Worker{sig: sig}
}

// Handle echoes value.
func (w *Worker) Handle(value uint64) {
	w.sig.WriteReactorSlot(value)
	w.state = value
}

// State returns the last value handled.
func (w *Worker) State() uint64 { return w.state }
