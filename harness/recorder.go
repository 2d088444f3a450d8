// File: harness/recorder.go
// Author: momentics <momentics@gmail.com>
//
// Round-trip sample collection: full-run statistics plus a sliding window of
// the most recent samples.

package harness

import (
	"math"
	"slices"
	"time"

	"github.com/eapache/queue"
)

// Stats summarises a set of round-trip samples.
type Stats struct {
	Count int           `json:"count"`
	Min   time.Duration `json:"min_ns"`
	Max   time.Duration `json:"max_ns"`
	Mean  time.Duration `json:"mean_ns"`
	P50   time.Duration `json:"p50_ns"`
	P90   time.Duration `json:"p90_ns"`
	P99   time.Duration `json:"p99_ns"`
	P999  time.Duration `json:"p999_ns"`
}

// Recorder is not safe for concurrent use.
type Recorder struct {
	samples  []time.Duration
	window   *queue.Queue
	capacity int
	timeouts int
}

// NewRecorder keeps every sample and a window of the last windowSize.
func NewRecorder(windowSize int) *Recorder {
	if windowSize < 1 {
		windowSize = 1
	}
	return &Recorder{window: queue.New(), capacity: windowSize}
}

// Record adds one round trip.
func (r *Recorder) Record(d time.Duration) {
	r.samples = append(r.samples, d)
	if r.window.Length() == r.capacity {
		r.window.Remove()
	}
	r.window.Add(d)
}

// RecordTimeout counts a ping whose echo never came back.
func (r *Recorder) RecordTimeout() { r.timeouts++ }

// Count returns the number of recorded samples.
func (r *Recorder) Count() int { return len(r.samples) }

// Timeouts returns the number of recorded timeouts.
func (r *Recorder) Timeouts() int { return r.timeouts }

// Summary computes statistics over every sample.
func (r *Recorder) Summary() Stats {
	return summarize(slices.Clone(r.samples))
}

// WindowSummary computes statistics over the sliding window only.
func (r *Recorder) WindowSummary() Stats {
	n := r.window.Length()
	ds := make([]time.Duration, n)
	for i := 0; i < n; i++ {
		ds[i] = r.window.Get(i).(time.Duration)
	}
	return summarize(ds)
}

// Reset drops all samples.
func (r *Recorder) Reset() {
	r.samples = r.samples[:0]
	r.window = queue.New()
	r.timeouts = 0
}

func summarize(ds []time.Duration) Stats {
	if len(ds) == 0 {
		return Stats{}
	}
	slices.Sort(ds)
	var sum float64
	for _, d := range ds {
		sum += float64(d)
	}
	return Stats{
		Count: len(ds),
		Min:   ds[0],
		Max:   ds[len(ds)-1],
		Mean:  time.Duration(sum / float64(len(ds))),
		P50:   percentile(ds, 0.50),
		P90:   percentile(ds, 0.90),
		P99:   percentile(ds, 0.99),
		P999:  percentile(ds, 0.999),
	}
}

// percentile uses the nearest-rank method on sorted input.
func percentile(sorted []time.Duration, p float64) time.Duration {
	rank := int(math.Ceil(p * float64(len(sorted))))
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}
