// File: harness/suite.go
// Author: momentics <momentics@gmail.com>
//
// Suite runs one measurement per reactor executable: it starts the reactor
// as a child process on the server CPU, waits for it to answer, measures,
// stores the report and kills the child before moving on.

package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"time"

	"github.com/momentics/spinreact/adapters"
	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/signal"
	"github.com/rs/zerolog"
)

// SuiteEntry is one reactor executable to measure.
type SuiteEntry struct {
	Kind string   // recorded as Report.Kind
	Path string   // executable
	Args []string // extra arguments placed before -name and the cpu
	Env  []string // extra environment, appended to os.Environ()
}

// Suite measures every entry against the same segment with the same plan.
type Suite struct {
	Name      string        // segment name passed to every reactor with -name
	Group     string        // recorded as Report.Label; defaults to Plan.Label
	ServerCPU int           // cpu argument for the reactors; -1 leaves them unpinned
	Plan      Plan          // measurement plan per entry
	Wait      time.Duration // how long a reactor may take to answer
	Timeout   time.Duration // per-ping deadline while waiting for the reactor
	Store     *Store        // optional; reports are saved when set
	Stderr    io.Writer     // child stderr; discarded when nil
	Log       zerolog.Logger
}

// Run measures entries in order. It stops at the first entry that cannot be
// started or does not answer, and returns the reports gathered so far.
func (s *Suite) Run(ctx context.Context, sig *signal.Signal, entries []SuiteEntry) ([]*Report, error) {
	if err := s.Plan.Validate(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("harness: empty suite: %w", api.ErrInvalidArgument)
	}
	reports := make([]*Report, 0, len(entries))
	for _, e := range entries {
		r, err := s.runOne(ctx, sig, e)
		if err != nil {
			return reports, fmt.Errorf("harness: suite entry %s: %w", e.Kind, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func (s *Suite) command(e SuiteEntry) *exec.Cmd {
	args := append([]string(nil), e.Args...)
	args = append(args, "-name", s.Name)
	if s.ServerCPU >= 0 {
		args = append(args, strconv.Itoa(s.ServerCPU))
	}
	cmd := exec.Command(e.Path, args...)
	cmd.Env = append(os.Environ(), e.Env...)
	cmd.Stdout = s.Stderr
	cmd.Stderr = s.Stderr
	return cmd
}

func (s *Suite) runOne(ctx context.Context, sig *signal.Signal, e SuiteEntry) (*Report, error) {
	log := s.Log.With().Str("kind", e.Kind).Logger()

	// A fresh reactor starts from 0, so both slots are reset first.
	sig.WriteWriterSlot(0)
	sig.WriteReactorSlot(0)

	cmd := s.command(e)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", e.Path, err)
	}
	log.Info().Int("pid", cmd.Process.Pid).Str("path", e.Path).Msg("reactor started")
	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()
	defer func() {
		select {
		case err := <-exited:
			log.Warn().Err(err).Msg("reactor exited on its own")
		default:
			_ = cmd.Process.Kill()
			<-exited
			log.Info().Msg("reactor stopped")
		}
	}()

	ctrl := adapters.NewControlAdapter()
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 250 * time.Millisecond
	}
	pinger := NewPinger(sig, WithPingerLogger(log), WithControl(ctrl), WithTimeout(timeout))

	awaitCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case err := <-exited:
			// Hand the result back for the deferred reaper.
			exited <- err
			cancel()
		case <-awaitCtx.Done():
		}
	}()
	if _, err := pinger.Await(awaitCtx, s.Wait); err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() == nil {
			return nil, errors.New("reactor exited before answering")
		}
		return nil, err
	}

	report, err := pinger.Run(ctx, s.Plan)
	if err != nil {
		return nil, err
	}
	report.Kind = e.Kind
	if s.Group != "" {
		report.Label = s.Group
	}
	report.CPU = s.ServerCPU
	if s.Store != nil {
		if _, err := s.Store.Save(ctx, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}
