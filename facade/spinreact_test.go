package facade_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/facade"
	"github.com/momentics/spinreact/fake"
	"github.com/momentics/spinreact/reactor"
	"github.com/momentics/spinreact/signal"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	var stderr bytes.Buffer
	cfg, err := facade.ParseArgs(reactor.KindResume, []string{"-name", "/bench", "3"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "/bench", cfg.Name)
	assert.Equal(t, reactor.KindResume, cfg.Kind)
	assert.Equal(t, 3, cfg.CPU)

	cfg, err = facade.ParseArgs(reactor.KindSpin, nil, &stderr)
	require.NoError(t, err)
	assert.Equal(t, signal.DefaultName, cfg.Name)
	assert.Equal(t, -1, cfg.CPU)
}

func TestParseArgs_Invalid(t *testing.T) {
	var stderr bytes.Buffer
	_, err := facade.ParseArgs(reactor.KindSpin, []string{"x"}, &stderr)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	_, err = facade.ParseArgs(reactor.KindSpin, []string{"1", "2"}, &stderr)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	_, err = facade.ParseArgs(reactor.KindSpin, []string{"-log-level", "loud"}, &stderr)
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestNew_AttachFailure(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.Name = "/spinreact-facade-test-missing"
	_, err := facade.New(cfg)
	assert.ErrorIs(t, err, api.ErrSignalUnavailable)
}

func TestRunN_Pinned(t *testing.T) {
	sig := fake.NewScriptedSignal(1, 2, 3)
	aff := fake.NewAffinity()
	cfg := facade.DefaultConfig()
	cfg.CPU = 2

	s, err := facade.New(cfg, facade.WithSignal(sig), facade.WithAffinity(aff))
	require.NoError(t, err)
	require.NoError(t, s.RunN(3))

	assert.Equal(t, []int{2}, aff.Pins())
	assert.Equal(t, []uint64{1, 2, 3}, sig.Writes())
	assert.Equal(t, 2, s.GetControl().GetConfig()["reactor.cpu"])
	assert.Equal(t, uint64(3), s.GetControl().Stats()["debug.signal.writer"])
}

func TestRun_PinFailureIsFatal(t *testing.T) {
	sig := fake.NewScriptedSignal()
	aff := fake.NewAffinity()
	aff.Fail = api.NewError(api.ErrCodeAffinityAssignmentFailed, "cpu offline")
	cfg := facade.DefaultConfig()
	cfg.CPU = 9

	s, err := facade.New(cfg, facade.WithSignal(sig), facade.WithAffinity(aff))
	require.NoError(t, err)
	err = s.Run()
	assert.ErrorIs(t, err, api.ErrAffinityAssignmentFailed)
	assert.Empty(t, sig.Writes(), "dispatcher must not run unpinned")
}

func TestNew_TraceCallback(t *testing.T) {
	sig := fake.NewScriptedSignal(4, 5)
	cfg := facade.DefaultConfig()
	cfg.Kind = reactor.KindCallback
	cfg.Trace = true

	s, err := facade.New(cfg, facade.WithSignal(sig))
	require.NoError(t, err)
	require.NoError(t, s.RunN(2))
	assert.Equal(t, []uint64{4, 5}, sig.Writes())
	assert.Equal(t, uint64(2), s.GetControl().Stats()["handler.processed"])
}

func TestNew_UnknownKind(t *testing.T) {
	cfg := facade.DefaultConfig()
	cfg.Kind = "bogus"
	_, err := facade.New(cfg, facade.WithSignal(fake.NewScriptedSignal()))
	assert.True(t, errors.Is(err, api.ErrInvalidArgument))
}

func TestNew_RecoverCallbackPanics(t *testing.T) {
	var logs bytes.Buffer
	sig := fake.NewScriptedSignal(1, 2)
	cfg := facade.DefaultConfig()
	cfg.Kind = reactor.KindCallback
	cfg.Recover = true
	cfg.Log = zerolog.New(&logs)

	s, err := facade.New(cfg, facade.WithSignal(sig),
		facade.WithHandler(api.HandlerFunc(func(v uint64) { panic(fmt.Sprintf("bad value %d", v)) })))
	require.NoError(t, err)
	assert.NotPanics(t, func() { require.NoError(t, s.RunN(2)) })
	assert.Equal(t, 2, strings.Count(logs.String(), "handler panic recovered"))
	assert.Equal(t, true, s.GetControl().GetConfig()["recover"])
}

func TestNew_HandlerNeedsCallbackKind(t *testing.T) {
	_, err := facade.New(facade.DefaultConfig(), facade.WithSignal(fake.NewScriptedSignal()),
		facade.WithHandler(api.HandlerFunc(func(uint64) {})))
	assert.ErrorIs(t, err, api.ErrInvalidArgument)
}

func TestParseArgs_Recover(t *testing.T) {
	cfg, err := facade.ParseArgs(reactor.KindCallback, []string{"-recover", "-trace"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, cfg.Recover)
	assert.True(t, cfg.Trace)
}

func TestRunN_LogsControlStats(t *testing.T) {
	var logs bytes.Buffer
	sig := fake.NewScriptedSignal(7)
	cfg := facade.DefaultConfig()
	cfg.Name = "/stats"
	cfg.Log = zerolog.New(&logs)

	s, err := facade.New(cfg, facade.WithSignal(sig))
	require.NoError(t, err)
	require.NoError(t, s.RunN(1))

	line := logs.String()
	assert.Contains(t, line, `"message":"reactor stats"`)
	assert.Contains(t, line, `"signal.name":"/stats"`)
	assert.Contains(t, line, `"reactor.kind":"spin"`)
	assert.Contains(t, line, `"debug.platform.cpus":`)
	assert.Contains(t, line, `"debug.signal.writer":0`, "stats are taken before the first step")
}
