package signal

import (
	"testing"
	"time"

	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/internal/shm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type heapRegion []byte

func (r heapRegion) Bytes() []byte { return r }

func newTestSignal(t *testing.T) *Signal {
	t.Helper()
	region, err := shm.NewAnonymous(shm.PageSize())
	require.NoError(t, err)
	t.Cleanup(func() { _ = region.Close() })
	s, err := New(region)
	require.NoError(t, err)
	return s
}

func TestLayoutInvariant(t *testing.T) {
	assert.GreaterOrEqual(t, SlotDistance(), CacheLineSize)
	assert.GreaterOrEqual(t, SlotDistance(), 128, "must hold for 128 byte lines too")
	for _, page := range []int{4 << 10, 16 << 10, 64 << 10, shm.PageSize()} {
		assert.True(t, LayoutValid(page), "page size %d", page)
	}
	assert.False(t, LayoutValid(1024))
}

func TestNew_RejectsSmallRegion(t *testing.T) {
	_, err := New(heapRegion(make([]byte, MinRegionSize-1)))
	require.Error(t, err)
	assert.ErrorIs(t, err, api.ErrRegionSizeMismatch)

	s, err := New(heapRegion(make([]byte, MinRegionSize)))
	require.NoError(t, err)
	assert.Equal(t, MinRegionSize, s.Size())
}

func TestBindSlot_Bounds(t *testing.T) {
	mem := make([]byte, 64)
	_, err := bindSlot(mem, -8)
	assert.ErrorIs(t, err, api.ErrRegionSizeMismatch)
	_, err = bindSlot(mem, 60)
	assert.ErrorIs(t, err, api.ErrRegionSizeMismatch)
	_, err = bindSlot(mem, 3)
	assert.ErrorIs(t, err, api.ErrRegionSizeMismatch)
	slot, err := bindSlot(mem, 56)
	require.NoError(t, err)
	slot.Store(1)
	assert.Equal(t, byte(1), mem[56]|mem[63])
}

func TestSlotsAreIndependent(t *testing.T) {
	s := newTestSignal(t)
	s.WriteWriterSlot(11)
	s.WriteReactorSlot(22)
	assert.Equal(t, uint64(11), s.ReadWriterSlot())
	assert.Equal(t, uint64(22), s.ReadReactorSlot())
}

func TestWaitForWriterChange_ReturnsImmediatelyWhenDifferent(t *testing.T) {
	s := newTestSignal(t)
	s.WriteWriterSlot(5)
	assert.Equal(t, uint64(5), s.WaitForWriterChange(0))
}

func TestWaitForWriterChange_BlocksWithoutChange(t *testing.T) {
	s := newTestSignal(t)
	s.WriteWriterSlot(3)

	done := make(chan uint64, 1)
	go func() { done <- s.WaitForWriterChange(3) }()

	select {
	case v := <-done:
		t.Fatalf("wait returned %d without a writer change", v)
	case <-time.After(50 * time.Millisecond):
	}

	// Release the spinning goroutine.
	s.WriteWriterSlot(4)
	select {
	case v := <-done:
		assert.Equal(t, uint64(4), v)
	case <-time.After(5 * time.Second):
		t.Fatal("wait did not observe the change")
	}
}

func TestWaitForWriterChange_MonotonicVisibility(t *testing.T) {
	s := newTestSignal(t)
	const n = 10000
	s.WriteWriterSlot(0)

	go func() {
		for v := uint64(1); v <= n; v++ {
			s.WriteWriterSlot(v)
		}
	}()

	var seen []uint64
	last := uint64(0)
	deadline := time.Now().Add(10 * time.Second)
	for last != n {
		require.True(t, time.Now().Before(deadline), "did not reach final value")
		last = s.WaitForWriterChange(last)
		seen = append(seen, last)
	}

	require.NotEmpty(t, seen)
	for i, v := range seen {
		assert.GreaterOrEqual(t, v, uint64(1))
		assert.LessOrEqual(t, v, uint64(n))
		if i > 0 {
			assert.Greater(t, v, seen[i-1])
		}
	}
	assert.Equal(t, uint64(n), seen[len(seen)-1])
}

func BenchmarkWaitForWriterChange_Ready(b *testing.B) {
	region, err := shm.NewAnonymous(shm.PageSize())
	require.NoError(b, err)
	defer region.Close()
	s, err := New(region)
	require.NoError(b, err)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.WriteWriterSlot(uint64(i) + 1)
		_ = s.WaitForWriterChange(uint64(i))
	}
}
