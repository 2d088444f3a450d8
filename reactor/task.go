// File: reactor/task.go
// Author: momentics <momentics@gmail.com>
//
// Cooperative suspend/resume task driven in lockstep by an external loop.

package reactor

import "github.com/momentics/spinreact/api"

// Ordering selects on which side of the suspension point the echo happens.
type Ordering int

const (
	// ReactThenSuspend waits, echoes, then suspends. Resume latency covers
	// both detection and reaction.
	ReactThenSuspend Ordering = iota
	// SuspendThenReact echoes the value captured before the previous
	// suspension, then waits for the next value and suspends holding it.
	// The first Resume echoes the initial 0.
	SuspendThenReact
)

func (o Ordering) String() string {
	switch o {
	case ReactThenSuspend:
		return "react-then-suspend"
	case SuspendThenReact:
		return "suspend-then-react"
	default:
		return "unknown"
	}
}

// TaskState is the task's position at its suspension point.
type TaskState int

const (
	// AwaitingChange: the next Resume starts by waiting for the writer.
	AwaitingChange TaskState = iota
	// ReadyToReact: a detected value is pending and the next Resume echoes it.
	ReadyToReact
)

func (s TaskState) String() string {
	switch s {
	case AwaitingChange:
		return "awaiting-change"
	case ReadyToReact:
		return "ready-to-react"
	default:
		return "unknown"
	}
}

// Task is a detect/react cycle split across an explicit suspension point.
// Suspending means returning from Resume; the next Resume continues from the
// recorded state. Nothing here schedules or spawns goroutines.
//
// Resume must be called from a single driver loop. A nested or concurrent
// call panics.
type Task struct {
	sig     api.Signal
	order   Ordering
	state   TaskState
	last    uint64
	pending uint64
	active  bool
	resumes uint64
}

// NewTask returns a task in AwaitingChange with a last observed value of 0.
func NewTask(sig api.Signal, order Ordering) *Task {
	return &Task{sig: sig, order: order}
}

// Resume runs the task to its next suspension point.
func (t *Task) Resume() {
	if t.active {
		panic("reactor: Task.Resume called while the task is already running")
	}
	t.active = true
	defer func() { t.active = false }()

	t.resumes++
	switch t.order {
	case ReactThenSuspend:
		t.last = t.sig.WaitForWriterChange(t.last)
		t.state = ReadyToReact
		t.sig.WriteReactorSlot(t.last)
		t.state = AwaitingChange
	case SuspendThenReact:
		t.sig.WriteReactorSlot(t.pending)
		t.state = AwaitingChange
		t.last = t.sig.WaitForWriterChange(t.last)
		t.pending = t.last
		t.state = ReadyToReact
	}
}

// Step implements api.Stepper.
func (t *Task) Step() { t.Resume() }

// State returns the state the task is suspended in.
func (t *Task) State() TaskState { return t.state }

// Ordering returns the configured ordering.
func (t *Task) Ordering() Ordering { return t.order }

// Last returns the most recently observed writer value.
func (t *Task) Last() uint64 { return t.last }

// Pending returns the value the next suspend-then-react Resume will echo.
func (t *Task) Pending() uint64 { return t.pending }

// Resumes counts Resume calls, including one that is still blocked.
func (t *Task) Resumes() uint64 { return t.resumes }
