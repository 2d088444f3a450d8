// File: reactor/eventloop.go
// Author: momentics <momentics@gmail.com>
//
// Callback-style reactor: detect, then delegate to the installed handler.

package reactor

import "github.com/momentics/spinreact/api"

// EventLoop waits on the signal and hands each detected value to the
// installed handler. With no handler installed a detected change is dropped;
// nothing is queued or replayed.
//
// EventLoop is single-threaded: SetHandler must not race with Run.
type EventLoop struct {
	sig     api.Signal
	handler api.Handler
	last    uint64
	missed  uint64
}

// NewEventLoop returns a loop with no handler and a last observed value of 0.
func NewEventLoop(sig api.Signal) *EventLoop {
	return &EventLoop{sig: sig}
}

// SetHandler replaces the installed handler. Passing nil removes it. The new
// handler sees the next detected change.
func (l *EventLoop) SetHandler(h api.Handler) {
	l.handler = h
}

// Handler returns the installed handler, or nil.
func (l *EventLoop) Handler() api.Handler {
	return l.handler
}

// RunOnce waits for one writer change and dispatches it synchronously.
func (l *EventLoop) RunOnce() {
	l.last = l.sig.WaitForWriterChange(l.last)
	if l.handler != nil {
		l.handler.Handle(l.last)
		return
	}
	l.missed++
}

// Step implements api.Stepper.
func (l *EventLoop) Step() { l.RunOnce() }

// Run loops forever. It never returns.
func (l *EventLoop) Run() {
	for {
		l.RunOnce()
	}
}

// Last returns the most recently observed writer value.
func (l *EventLoop) Last() uint64 { return l.last }

// Missed counts changes detected while no handler was installed.
func (l *EventLoop) Missed() uint64 { return l.missed }
