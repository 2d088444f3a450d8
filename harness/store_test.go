package harness_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/momentics/spinreact/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport(label string, p50 time.Duration) *harness.Report {
	rec := harness.NewRecorder(4)
	rec.Record(p50)
	r := harness.NewReport(label, rec, time.Unix(1700000000, 0), time.Second)
	r.Kind = "spin"
	r.CPU = 2
	return r
}

func TestReport_JSON(t *testing.T) {
	r := sampleReport("json", 300*time.Nanosecond)
	data, err := r.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"p50_ns":300`)

	back, err := harness.DecodeReport(data)
	require.NoError(t, err)
	assert.Equal(t, r.Label, back.Label)
	assert.Equal(t, r.Stats, back.Stats)
	assert.True(t, r.StartedAt.Equal(back.StartedAt))
}

func TestStore_SaveAndRecent(t *testing.T) {
	ctx := context.Background()
	st, err := harness.OpenStore(ctx, filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	first := sampleReport("a", 100)
	second := sampleReport("b", 200)
	id1, err := st.Save(ctx, first)
	require.NoError(t, err)
	id2, err := st.Save(ctx, second)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)
	assert.Equal(t, id2, second.ID)

	runs, err := st.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	got := runs[0]
	assert.Equal(t, "b", got.Label)
	assert.Equal(t, "spin", got.Kind)
	assert.Equal(t, 2, got.CPU)
	assert.Equal(t, second.Stats, got.Stats)
	assert.True(t, second.StartedAt.Equal(got.StartedAt))

	runs, err = st.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}
