//go:build linux

package signal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/internal/shm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempShmDir(t *testing.T) {
	t.Helper()
	prev := shm.Dir
	shm.Dir = t.TempDir()
	t.Cleanup(func() { shm.Dir = prev })
}

func TestAttach_ProducerNotRunning(t *testing.T) {
	useTempShmDir(t)

	var logs bytes.Buffer
	_, err := Attach(WithName("/spinnmem"), WithLogger(zerolog.New(&logs)))
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrSignalUnavailable)
	assert.Empty(t, logs.String(), "failures are reported by the caller")
}

func TestCreate_FailureNotLogged(t *testing.T) {
	useTempShmDir(t)
	shm.Dir = filepath.Join(shm.Dir, "missing-dir")

	var logs bytes.Buffer
	_, err := Create(WithName("/x"), WithLogger(zerolog.New(&logs)))
	require.Error(t, err)
	assert.Empty(t, logs.String())
}

func TestCreateThenAttach(t *testing.T) {
	useTempShmDir(t)

	producer, err := Create(WithName("/pair"))
	require.NoError(t, err)
	defer producer.Close()
	assert.Equal(t, "/pair", producer.Name())
	assert.Equal(t, os.Getpagesize(), producer.Size())
	assert.Zero(t, producer.ReadWriterSlot())
	assert.Zero(t, producer.ReadReactorSlot())

	reactor, err := Attach(WithName("/pair"))
	require.NoError(t, err)
	defer reactor.Close()

	producer.WriteWriterSlot(9)
	assert.Equal(t, uint64(9), reactor.WaitForWriterChange(0))
	reactor.WriteReactorSlot(9)
	assert.Equal(t, uint64(9), producer.ReadReactorSlot())

	require.NoError(t, Unlink(WithName("/pair")))
}

func TestCreate_ZeroesExistingSlots(t *testing.T) {
	useTempShmDir(t)

	first, err := Create(WithName("/reuse"))
	require.NoError(t, err)
	first.WriteWriterSlot(77)
	first.WriteReactorSlot(78)
	require.NoError(t, first.Close())

	second, err := Create(WithName("/reuse"))
	require.NoError(t, err)
	defer second.Close()
	assert.Zero(t, second.ReadWriterSlot())
	assert.Zero(t, second.ReadReactorSlot())
}

func TestAttach_WrongSize(t *testing.T) {
	useTempShmDir(t)

	big, err := Create(WithName("/big"), WithPageSize(4*os.Getpagesize()))
	require.NoError(t, err)
	defer big.Close()

	_, err = Attach(WithName("/big"))
	assert.ErrorIs(t, err, api.ErrRegionSizeMismatch)
}
