// File: signal/signal.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package signal

import (
	"sync/atomic"

	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/internal/concurrency"
	"github.com/momentics/spinreact/internal/shm"
	"github.com/rs/zerolog"
)

// Region is a mapped block of memory the signal layout is bound to.
// *shm.Region satisfies it.
type Region interface {
	Bytes() []byte
}

// Signal is the two-slot view over a shared region. The reactor side uses
// ReadWriterSlot, WriteReactorSlot and WaitForWriterChange; the producer side
// uses WriteWriterSlot and ReadReactorSlot.
type Signal struct {
	writer  *atomic.Uint64
	reactor *atomic.Uint64
	region  Region
	name    string
}

var _ api.Signal = (*Signal)(nil)

// New binds the slot layout to region. The region must be at least
// MinRegionSize bytes and 8-byte aligned.
func New(region Region) (*Signal, error) {
	mem := region.Bytes()
	if len(mem) < MinRegionSize {
		return nil, api.NewError(api.ErrCodeRegionSizeMismatch, "region too small for slot layout").
			WithContext("size", len(mem)).
			WithContext("min", MinRegionSize)
	}
	writer, err := bindSlot(mem, WriterSlotOffset)
	if err != nil {
		return nil, err
	}
	reactor, err := bindSlot(mem, ReactorSlotOffset)
	if err != nil {
		return nil, err
	}
	s := &Signal{writer: writer, reactor: reactor, region: region}
	if named, ok := region.(interface{ Name() string }); ok {
		s.name = named.Name()
	}
	return s, nil
}

// Attach opens the existing named segment read-write, establishes that it is
// exactly one page and maps it. The segment must have been created by the
// producer; Attach never creates it.
//
// Errors wrap api.ErrSignalUnavailable (segment missing or access denied),
// api.ErrRegionSizeMismatch or api.ErrMappingFailed. All are fatal; Attach
// leaves reporting them to the caller.
func Attach(opts ...Option) (*Signal, error) {
	o := buildOptions(opts)
	region, err := shm.Open(o.name, o.pageSize)
	if err != nil {
		return nil, err
	}
	s, err := New(region)
	if err != nil {
		_ = region.Close()
		return nil, err
	}
	o.log.Info().
		Str("name", o.name).
		Str("path", region.Path()).
		Int("size", region.Size()).
		Msg("signal attached")
	return s, nil
}

// Create is the producer-side constructor: it creates (or reopens) the named
// segment, sizes it to one page and zeroes both slots.
func Create(opts ...Option) (*Signal, error) {
	o := buildOptions(opts)
	region, err := shm.Create(o.name, o.pageSize, o.mode)
	if err != nil {
		return nil, err
	}
	s, err := New(region)
	if err != nil {
		_ = region.Close()
		return nil, err
	}
	s.writer.Store(0)
	s.reactor.Store(0)
	o.log.Info().
		Str("name", o.name).
		Str("path", region.Path()).
		Int("size", region.Size()).
		Msg("signal created")
	return s, nil
}

// Unlink removes the named segment.
func Unlink(opts ...Option) error {
	return shm.Unlink(buildOptions(opts).name)
}

func buildOptions(opts []Option) options {
	o := options{
		name:     DefaultName,
		pageSize: shm.PageSize(),
		mode:     DefaultMode,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Name returns the segment name, or "" for anonymous regions.
func (s *Signal) Name() string { return s.name }

// Size returns the size of the underlying region.
func (s *Signal) Size() int { return len(s.region.Bytes()) }

// ReadWriterSlot atomically loads the writer slot.
func (s *Signal) ReadWriterSlot() uint64 {
	return s.writer.Load()
}

// WriteReactorSlot atomically stores value into the reactor slot.
func (s *Signal) WriteReactorSlot(value uint64) {
	s.reactor.Store(value)
}

// WaitForWriterChange spins on the writer slot, issuing a spin-wait hint per
// iteration, until it reads a value different from last, and returns it.
//
// This blocks forever if the writer never changes the slot again. The signal
// is level-triggered: only the latest value is visible, and values written
// between two reads are skipped.
func (s *Signal) WaitForWriterChange(last uint64) uint64 {
	next := last
	for next == last {
		concurrency.Pause()
		next = s.writer.Load()
	}
	return next
}

// WriteWriterSlot atomically stores value into the writer slot. Producer side.
func (s *Signal) WriteWriterSlot(value uint64) {
	s.writer.Store(value)
}

// ReadReactorSlot atomically loads the reactor slot. Producer side.
func (s *Signal) ReadReactorSlot() uint64 {
	return s.reactor.Load()
}

// WaitForReactorEcho publishes value into the writer slot and spins until the
// reactor slot holds it. Producer side; blocks forever without a reactor.
func (s *Signal) WaitForReactorEcho(value uint64) {
	s.writer.Store(value)
	for s.reactor.Load() != value {
		concurrency.Pause()
	}
}

// Close releases the mapping when the region supports it. Reactors do not
// call Close; the mapping is released at process exit.
func (s *Signal) Close() error {
	if c, ok := s.region.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
