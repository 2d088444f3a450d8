// File: facade/spinreact.go
// Unified facade layer for the spinreact reactors.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpinReact attaches the shared signal, builds the configured dispatcher,
// optionally pins the calling thread and drives the dispatcher forever. The
// reactor executables are thin wrappers around Main.

package facade

import (
	"fmt"

	"github.com/momentics/spinreact/adapters"
	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/reactor"
	"github.com/momentics/spinreact/signal"
	"github.com/rs/zerolog"
)

// Config holds parameters immutable per run.
type Config struct {
	Name    string       // Shared segment name
	Kind    reactor.Kind // Dispatch strategy
	CPU     int          // CPU to pin to; -1 disables pinning
	Trace   bool       // Wrap the callback handler with logging and metrics
	Recover bool       // Recover and log callback handler panics
	Log     zerolog.Logger
}

// DefaultConfig returns the spin reactor on the default segment, unpinned.
func DefaultConfig() *Config {
	return &Config{
		Name: signal.DefaultName,
		Kind: reactor.KindSpin,
		CPU:  -1,
		Log:  zerolog.Nop(),
	}
}

// Option overrides a collaborator, mainly for tests.
type Option func(*SpinReact)

// WithSignal uses sig instead of attaching the named segment.
func WithSignal(sig api.Signal) Option {
	return func(s *SpinReact) { s.sig = sig }
}

// WithAffinity replaces the thread pinning implementation.
func WithAffinity(a api.Affinity) Option {
	return func(s *SpinReact) { s.affinity = a }
}

// WithHandler installs h instead of the echoing Worker. Callback kind only.
func WithHandler(h api.Handler) Option {
	return func(s *SpinReact) { s.handler = h }
}

// SpinReact is the main facade type.
type SpinReact struct {
	cfg      Config
	sig      api.Signal
	stepper  api.Stepper
	affinity api.Affinity
	handler  api.Handler
	control  api.Control
	log      zerolog.Logger
}

// New attaches the signal and builds the dispatcher. Attach failures carry
// api.ErrSignalUnavailable, api.ErrRegionSizeMismatch or api.ErrMappingFailed.
func New(cfg *Config, opts ...Option) (*SpinReact, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &SpinReact{cfg: *cfg, log: cfg.Log}
	for _, opt := range opts {
		opt(s)
	}
	if s.affinity == nil {
		s.affinity = adapters.NewAffinityAdapter()
	}
	s.control = adapters.NewControlAdapter()

	if s.sig == nil {
		sig, err := signal.Attach(signal.WithName(cfg.Name), signal.WithLogger(cfg.Log))
		if err != nil {
			return nil, fmt.Errorf("attach %s: %w", cfg.Name, err)
		}
		s.sig = sig
	}

	stepper, err := reactor.New(cfg.Kind, s.sig)
	if err != nil {
		return nil, err
	}
	loop, isLoop := stepper.(*reactor.EventLoop)
	if s.handler != nil {
		if !isLoop {
			return nil, fmt.Errorf("custom handler needs the %s kind, got %s: %w",
				reactor.KindCallback, cfg.Kind, api.ErrInvalidArgument)
		}
		loop.SetHandler(s.handler)
	}
	if isLoop && (cfg.Trace || cfg.Recover) {
		chain := adapters.NewMiddlewareHandler(loop.Handler())
		if cfg.Recover {
			chain.Use(adapters.RecoveryMiddleware(s.log))
		}
		if cfg.Trace {
			chain.Use(adapters.LoggingMiddleware(s.log)).
				Use(adapters.MetricsMiddleware(s.control))
		}
		loop.SetHandler(chain.Build())
	}
	s.stepper = stepper

	// Expose run configuration via Control for observability.
	if err := s.control.SetConfig(map[string]any{
		"signal.name":  cfg.Name,
		"reactor.kind": string(cfg.Kind),
		"reactor.cpu":  cfg.CPU,
		"trace":        cfg.Trace,
		"recover":      cfg.Recover,
	}); err != nil {
		return nil, err
	}
	s.control.RegisterDebugProbe("signal.writer", func() any { return s.sig.ReadWriterSlot() })
	return s, nil
}

// Pin binds the calling goroutine to the configured CPU. It is a no-op when
// CPU is negative. The dispatcher must run on the same goroutine.
func (s *SpinReact) Pin() error {
	if s.cfg.CPU < 0 {
		return nil
	}
	if err := s.affinity.Pin(s.cfg.CPU); err != nil {
		return fmt.Errorf("pin cpu %d: %w", s.cfg.CPU, err)
	}
	s.log.Info().Int("cpu", s.cfg.CPU).Msg("reactor thread pinned")
	return nil
}

// Run pins, then drives the dispatcher forever. It only returns on a pin
// failure.
func (s *SpinReact) Run() error {
	if err := s.Pin(); err != nil {
		return err
	}
	s.LogStats()
	s.log.Info().Str("kind", string(s.cfg.Kind)).Str("name", s.cfg.Name).Msg("reactor running")
	reactor.Drive(s.stepper)
	return nil
}

// RunN pins, drives n steps and unpins again.
func (s *SpinReact) RunN(n int) error {
	if err := s.Pin(); err != nil {
		return err
	}
	s.LogStats()
	reactor.DriveN(s.stepper, n)
	if s.cfg.CPU >= 0 {
		return s.affinity.Unpin()
	}
	return nil
}

// LogStats logs the run configuration and the current Control stats, which
// include the platform probes, in one line.
func (s *SpinReact) LogStats() {
	s.log.Info().
		Fields(s.control.GetConfig()).
		Dict("stats", zerolog.Dict().Fields(s.control.Stats())).
		Msg("reactor stats")
}

// GetControl returns the Control interface for config, metrics and probes.
func (s *SpinReact) GetControl() api.Control { return s.control }

// Stepper returns the dispatcher.
func (s *SpinReact) Stepper() api.Stepper { return s.stepper }

// Signal returns the attached signal.
func (s *SpinReact) Signal() api.Signal { return s.sig }

// Config returns a copy of the run configuration.
func (s *SpinReact) Config() Config { return s.cfg }
