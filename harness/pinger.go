// File: harness/pinger.go
// Author: momentics <momentics@gmail.com>
//
// Writer-side round-trip measurement against a running reactor.

package harness

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/internal/concurrency"
	"github.com/rs/zerolog"
)

// ErrEchoTimeout is returned when the reactor slot does not reach the
// expected value before the plan's deadline.
var ErrEchoTimeout = errors.New("harness: echo timeout")

// clockEvery is how many spins pass between two deadline checks.
const clockEvery = 1 << 10

// Producer is the writer side of a signal. *signal.Signal satisfies it.
type Producer interface {
	WriteWriterSlot(value uint64)
	ReadReactorSlot() uint64
	ReadWriterSlot() uint64
}

// Pinger publishes values and waits for their echo. One Pinger per signal;
// it is not safe for concurrent use.
type Pinger struct {
	sig     Producer
	rng     *rand.Rand
	log     zerolog.Logger
	ctrl    api.Control
	last    uint64
	timeout time.Duration
}

// PingerOption configures a Pinger.
type PingerOption func(*Pinger)

// WithSeed makes the payload sequence reproducible.
func WithSeed(seed uint64) PingerOption {
	return func(p *Pinger) { p.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithPingerLogger sets the logger used for run progress.
func WithPingerLogger(log zerolog.Logger) PingerOption {
	return func(p *Pinger) { p.log = log }
}

// WithTimeout sets the Ping deadline used outside Run.
func WithTimeout(d time.Duration) PingerOption {
	return func(p *Pinger) { p.timeout = d }
}

// WithControl publishes live run statistics as metrics.
func WithControl(ctrl api.Control) PingerOption {
	return func(p *Pinger) { p.ctrl = ctrl }
}

// NewPinger starts from the current writer slot value so the first payload
// is always a change.
func NewPinger(sig Producer, opts ...PingerOption) *Pinger {
	p := &Pinger{
		sig:     sig,
		rng:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		log:     zerolog.Nop(),
		timeout: DefaultPlan().Timeout(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.last = sig.ReadWriterSlot()
	return p
}

// NextValue returns a random payload that differs from the last published
// value and from zero.
func (p *Pinger) NextValue() uint64 {
	for {
		v := p.rng.Uint64()
		if v != 0 && v != p.last {
			return v
		}
	}
}

// Ping publishes value and spins until the reactor slot holds it.
func (p *Pinger) Ping(value uint64) (time.Duration, error) {
	if value == p.last {
		return 0, fmt.Errorf("harness: value %d equals the current writer slot: %w", value, api.ErrInvalidArgument)
	}
	start := time.Now()
	deadline := start.Add(p.timeout)
	p.sig.WriteWriterSlot(value)
	p.last = value
	for spins := 1; p.sig.ReadReactorSlot() != value; spins++ {
		concurrency.Pause()
		if spins%clockEvery == 0 && time.Now().After(deadline) {
			return 0, fmt.Errorf("%w: published %d, reactor slot %d after %s",
				ErrEchoTimeout, value, p.sig.ReadReactorSlot(), p.timeout)
		}
	}
	return time.Since(start), nil
}

// Await pings until the first echo arrives, ctx ends or wait elapses. Each
// attempt uses the Pinger's timeout. It returns the first round trip.
func (p *Pinger) Await(ctx context.Context, wait time.Duration) (time.Duration, error) {
	deadline := time.Now().Add(wait)
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		rtt, err := p.Ping(p.NextValue())
		if err == nil {
			p.log.Info().Int("attempts", attempt).Dur("rtt", rtt).Msg("reactor answered")
			return rtt, nil
		}
		if !errors.Is(err, ErrEchoTimeout) {
			return 0, err
		}
		if time.Now().After(deadline) {
			return 0, fmt.Errorf("%w: no answer within %s", err, wait)
		}
		p.log.Debug().Int("attempt", attempt).Msg("waiting for reactor")
	}
}

// Run executes plan: Warmup unrecorded pings, then Samples recorded ones.
// A timed-out ping is counted and the run continues; cancelling ctx stops
// the run between pings and returns the partial report with ctx's error.
func (p *Pinger) Run(ctx context.Context, plan Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	p.timeout = plan.Timeout()

	rec := NewRecorder(plan.Window)
	started := time.Now()
	p.log.Info().Str("label", plan.Label).Int("warmup", plan.Warmup).Int("samples", plan.Samples).Msg("run started")

	var runErr error
	for i := 0; i < plan.Warmup+plan.Samples; i++ {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}
		d, err := p.Ping(p.NextValue())
		if i < plan.Warmup {
			continue
		}
		if err != nil {
			rec.RecordTimeout()
			p.log.Warn().Err(err).Int("sample", i-plan.Warmup).Msg("ping failed")
			continue
		}
		rec.Record(d)
		if plan.PublishEvery > 0 && rec.Count()%plan.PublishEvery == 0 {
			p.publish(rec)
		}
	}

	report := NewReport(plan.Label, rec, started, time.Since(started))
	p.publish(rec)
	if p.ctrl != nil {
		report.Control = p.ctrl.Stats()
	}
	p.log.Info().
		Int("count", report.Stats.Count).
		Int("timeouts", report.Timeouts).
		Dur("p50", report.Stats.P50).
		Dur("p99", report.Stats.P99).
		Msg("run finished")
	return report, runErr
}

func (p *Pinger) publish(rec *Recorder) {
	if p.ctrl == nil {
		return
	}
	total := rec.Summary()
	window := rec.WindowSummary()
	p.ctrl.SetMetric("harness.samples", total.Count)
	p.ctrl.SetMetric("harness.timeouts", rec.Timeouts())
	p.ctrl.SetMetric("harness.p50_ns", int64(total.P50))
	p.ctrl.SetMetric("harness.p99_ns", int64(total.P99))
	p.ctrl.SetMetric("harness.window.p50_ns", int64(window.P50))
	p.ctrl.SetMetric("harness.window.max_ns", int64(window.Max))
}

// Last returns the last published value.
func (p *Pinger) Last() uint64 { return p.last }
