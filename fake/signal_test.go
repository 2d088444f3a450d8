package fake_test

import (
	"testing"

	"github.com/momentics/spinreact/fake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedSignal_SkipsDuplicates(t *testing.T) {
	s := fake.NewScriptedSignal(3, 3, 4)
	assert.Equal(t, uint64(3), s.WaitForWriterChange(0))
	assert.Equal(t, uint64(4), s.WaitForWriterChange(3))
	assert.Equal(t, 3, s.Polls())
	assert.Equal(t, 0, s.Remaining())
	assert.Equal(t, uint64(4), s.ReadWriterSlot())
}

func TestScriptedSignal_PanicsWhenExhausted(t *testing.T) {
	s := fake.NewScriptedSignal(7)
	require.Equal(t, uint64(7), s.WaitForWriterChange(0))
	defer func() {
		r := recover()
		require.NotNil(t, r)
		assert.True(t, fake.Exhausted(r))
	}()
	s.WaitForWriterChange(7)
}

func TestScriptedSignal_RecordsWrites(t *testing.T) {
	s := fake.NewScriptedSignal()
	assert.Equal(t, uint64(0), s.ReactorSlot())
	s.WriteReactorSlot(1)
	s.WriteReactorSlot(2)
	assert.Equal(t, []uint64{1, 2}, s.Writes())
	assert.Equal(t, uint64(2), s.ReactorSlot())
}

func TestRegion_Aligned(t *testing.T) {
	r := fake.NewRegion(4096)
	require.Len(t, r.Bytes(), 4096)
	assert.Empty(t, fake.NewRegion(0).Bytes())
}
