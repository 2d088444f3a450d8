package harness_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlan_KeepsDefaults(t *testing.T) {
	p, err := harness.ParsePlan([]byte(`{"label":"spin-cpu3","samples":50}`))
	require.NoError(t, err)
	assert.Equal(t, "spin-cpu3", p.Label)
	assert.Equal(t, 50, p.Samples)
	assert.Equal(t, harness.DefaultPlan().Warmup, p.Warmup)
	assert.Equal(t, time.Second, p.Timeout())
}

func TestParsePlan_Invalid(t *testing.T) {
	_, err := harness.ParsePlan([]byte(`{"samples":0}`))
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	_, err = harness.ParsePlan([]byte(`{"samples":`))
	assert.Error(t, err)
}

func TestLoadPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"window":8,"timeout_ms":5}`), 0o600))
	p, err := harness.LoadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, 8, p.Window)
	assert.Equal(t, 5*time.Millisecond, p.Timeout())

	_, err = harness.LoadPlan(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestPlan_TimeoutIsCapped(t *testing.T) {
	_, err := harness.ParsePlan([]byte(`{"timeout_ms":9223372036854775807}`))
	assert.ErrorIs(t, err, api.ErrInvalidArgument)

	p, err := harness.ParsePlan([]byte(`{"timeout_ms":3600000}`))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, p.Timeout())

	p.TimeoutMs = 1 << 62
	assert.Equal(t, time.Hour, p.Timeout())
}
