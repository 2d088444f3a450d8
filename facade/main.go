// File: facade/main.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Command-line entry shared by the reactor executables.

package facade

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/reactor"
	"github.com/momentics/spinreact/signal"
	"github.com/rs/zerolog"
)

// ParseArgs reads "[flags] [cpu]" for a reactor of the given kind. A missing
// cpu argument disables pinning.
func ParseArgs(kind reactor.Kind, args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet(string(kind)+"_reactor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	name := fs.String("name", signal.DefaultName, "shared memory segment name")
	level := fs.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	jsonLog := fs.Bool("log-json", false, "emit JSON log lines instead of console output")
	trace := fs.Bool("trace", false, "log and count every handled value (callback only)")
	recoverPanics := fs.Bool("recover", false, "recover and log handler panics (callback only)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [flags] [cpu]\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.Kind = kind
	cfg.Name = *name
	cfg.Trace = *trace
	cfg.Recover = *recoverPanics

	log, err := NewLogger(stderr, *level, *jsonLog)
	if err != nil {
		return nil, err
	}
	cfg.Log = log.With().Str("reactor", string(kind)).Logger()

	switch fs.NArg() {
	case 0:
	case 1:
		cpu, err := strconv.Atoi(fs.Arg(0))
		if err != nil || cpu < 0 {
			return nil, api.NewError(api.ErrCodeInvalidArgument, "cpu must be a non-negative integer").
				WithContext("arg", fs.Arg(0))
		}
		cfg.CPU = cpu
	default:
		return nil, api.NewError(api.ErrCodeInvalidArgument, "too many arguments").
			WithContext("args", fs.Args())
	}
	return cfg, nil
}

// NewLogger builds the process logger.
func NewLogger(w io.Writer, level string, jsonOut bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, api.ErrInvalidArgument)
	}
	if !jsonOut {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// Main runs a reactor executable and returns its exit status. It returns
// only on a startup failure or bad usage.
func Main(kind reactor.Kind, args []string) int {
	cfg, err := ParseArgs(kind, args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	s, err := New(cfg)
	if err != nil {
		cfg.Log.Error().Err(err).Str("code", codeName(err)).Msg("startup failed")
		return 1
	}
	if err := s.Run(); err != nil {
		cfg.Log.Error().Err(err).Str("code", codeName(err)).Msg("startup failed")
		return 1
	}
	return 0
}

func codeName(err error) string {
	switch {
	case errors.Is(err, api.ErrSignalUnavailable):
		return "signal_unavailable"
	case errors.Is(err, api.ErrRegionSizeMismatch):
		return "region_size_mismatch"
	case errors.Is(err, api.ErrMappingFailed):
		return "mapping_failed"
	case errors.Is(err, api.ErrAffinityAssignmentFailed):
		return "affinity_assignment_failed"
	default:
		return "internal"
	}
}
