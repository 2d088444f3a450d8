// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Dispatcher kinds and the factory used by the executables.

package reactor

import (
	"fmt"

	"github.com/momentics/spinreact/api"
)

// Kind names a dispatch strategy.
type Kind string

const (
	KindSpin     Kind = "spin"
	KindResume   Kind = "resume"
	KindSuspend  Kind = "suspend"
	KindCallback Kind = "callback"
)

// Kinds lists every supported strategy.
func Kinds() []Kind {
	return []Kind{KindSpin, KindResume, KindSuspend, KindCallback}
}

// New builds the dispatcher for kind over sig. KindResume is a
// react-then-suspend Task, KindSuspend a suspend-then-react Task, and
// KindCallback an EventLoop with a Worker installed.
func New(kind Kind, sig api.Signal) (api.Stepper, error) {
	switch kind {
	case KindSpin:
		return NewSpinDispatcher(sig), nil
	case KindResume:
		return NewTask(sig, ReactThenSuspend), nil
	case KindSuspend:
		return NewTask(sig, SuspendThenReact), nil
	case KindCallback:
		loop := NewEventLoop(sig)
		loop.SetHandler(NewWorker(sig))
		return loop, nil
	default:
		return nil, fmt.Errorf("reactor: unknown kind %q: %w", kind, api.ErrInvalidArgument)
	}
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("reactor: unknown kind %q: %w", s, api.ErrInvalidArgument)
}
