package affinity_test

import (
	"runtime"
	"testing"

	"github.com/momentics/spinreact/affinity"
	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/internal/concurrency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAffinity_Negative(t *testing.T) {
	err := affinity.SetAffinity(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrAffinityAssignmentFailed)
}

func TestSetAffinity_OutOfRange(t *testing.T) {
	if !affinity.Supported() {
		t.Skip("affinity not supported")
	}
	err := affinity.SetAffinity(100000)
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrAffinityAssignmentFailed)
	assert.Equal(t, api.ErrCodeAffinityAssignmentFailed, api.CodeOf(err))
}

func TestSetAffinity_AllowedCPU(t *testing.T) {
	if !affinity.Supported() {
		t.Skip("affinity not supported")
	}
	cpus := concurrency.AllowedCPUs()
	if len(cpus) == 0 {
		t.Skip("no cpu mask available")
	}
	done := make(chan error, 1)
	go func() {
		if err := affinity.SetAffinity(cpus[0]); err != nil {
			done <- err
			return
		}
		runtime.Gosched()
		done <- affinity.ClearAffinity()
	}()
	assert.NoError(t, <-done)
}

func TestSetAffinity_Unsupported(t *testing.T) {
	if affinity.Supported() {
		t.Skip("affinity supported")
	}
	assert.ErrorIs(t, affinity.SetAffinity(0), api.ErrNotSupported)
}
