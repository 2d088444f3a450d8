// File: reactor/spin.go
// Author: momentics <momentics@gmail.com>

package reactor

import "github.com/momentics/spinreact/api"

// SpinDispatcher is the minimal-latency reactor: every Step waits for the
// writer slot to change and echoes the new value straight away.
type SpinDispatcher struct {
	sig  api.Signal
	last uint64
}

// NewSpinDispatcher returns a dispatcher whose last observed value is 0.
func NewSpinDispatcher(sig api.Signal) *SpinDispatcher {
	return &SpinDispatcher{sig: sig}
}

// Step performs one detect and one react. It blocks until the writer slot
// differs from the last observed value.
func (d *SpinDispatcher) Step() {
	d.last = d.sig.WaitForWriterChange(d.last)
	d.sig.WriteReactorSlot(d.last)
}

// Last returns the most recently observed writer value.
func (d *SpinDispatcher) Last() uint64 {
	return d.last
}
