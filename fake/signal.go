// Package fake
// Author: momentics <momentics@gmail.com>

package fake

import (
	"errors"
	"fmt"

	"github.com/momentics/spinreact/api"
)

// ErrScriptExhausted is the panic value raised when a scripted wait would
// block forever because the script has no more writer values.
var ErrScriptExhausted = errors.New("fake: writer script exhausted, wait would block")

// ScriptedSignal replays a fixed sequence of writer values. Each poll inside
// WaitForWriterChange consumes the next value, so duplicates are seen as
// polls that observed no change. Reactor writes are recorded in order.
//
// ScriptedSignal is single-goroutine, like the dispatchers it drives.
type ScriptedSignal struct {
	script  []uint64
	pos     int
	current uint64
	polls   int
	writes  []uint64
}

var _ api.Signal = (*ScriptedSignal)(nil)

// NewScriptedSignal returns a signal whose writer slot starts at 0 and then
// takes the given values, one per poll.
func NewScriptedSignal(script ...uint64) *ScriptedSignal {
	return &ScriptedSignal{script: append([]uint64(nil), script...)}
}

// ReadWriterSlot returns the most recently polled writer value.
func (s *ScriptedSignal) ReadWriterSlot() uint64 { return s.current }

// WriteReactorSlot records value.
func (s *ScriptedSignal) WriteReactorSlot(value uint64) {
	s.writes = append(s.writes, value)
}

// WaitForWriterChange consumes script values until one differs from last.
// It panics with ErrScriptExhausted instead of blocking.
func (s *ScriptedSignal) WaitForWriterChange(last uint64) uint64 {
	for {
		if s.pos >= len(s.script) {
			panic(fmt.Errorf("%w (last observed %d after %d polls)", ErrScriptExhausted, last, s.polls))
		}
		s.current = s.script[s.pos]
		s.pos++
		s.polls++
		if s.current != last {
			return s.current
		}
	}
}

// Writes returns a copy of every reactor write so far.
func (s *ScriptedSignal) Writes() []uint64 {
	return append([]uint64(nil), s.writes...)
}

// ReactorSlot returns the last reactor write, or 0 when there was none.
func (s *ScriptedSignal) ReactorSlot() uint64 {
	if len(s.writes) == 0 {
		return 0
	}
	return s.writes[len(s.writes)-1]
}

// Polls counts writer reads made by WaitForWriterChange.
func (s *ScriptedSignal) Polls() int { return s.polls }

// Remaining counts unconsumed script values.
func (s *ScriptedSignal) Remaining() int { return len(s.script) - s.pos }

// Exhausted reports whether recovered is the ScriptedSignal exhaustion panic.
func Exhausted(recovered any) bool {
	err, ok := recovered.(error)
	return ok && errors.Is(err, ErrScriptExhausted)
}
