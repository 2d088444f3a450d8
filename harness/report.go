// File: harness/report.go
// Author: momentics <momentics@gmail.com>

package harness

import (
	"fmt"
	"time"

	"github.com/sugawarayuuta/sonnet"
)

// Report is the outcome of one run.
type Report struct {
	ID        int64         `json:"id,omitempty"`
	Label     string        `json:"label"`
	Kind      string        `json:"kind,omitempty"`
	CPU       int           `json:"cpu"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Timeouts  int           `json:"timeouts"`
	Stats     Stats         `json:"stats"`
	Window    Stats         `json:"window"`
	// Control is the Stats snapshot of the run's api.Control, when one was
	// attached. It is not persisted by Store.
	Control map[string]any `json:"control,omitempty"`
}

// NewReport snapshots rec. CPU is -1 until the caller knows it.
func NewReport(label string, rec *Recorder, started time.Time, elapsed time.Duration) *Report {
	return &Report{
		Label:     label,
		CPU:       -1,
		StartedAt: started.UTC(),
		Elapsed:   elapsed,
		Timeouts:  rec.Timeouts(),
		Stats:     rec.Summary(),
		Window:    rec.WindowSummary(),
	}
}

// Encode renders r as JSON.
func (r *Report) Encode() ([]byte, error) {
	data, err := sonnet.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("harness: encode report: %w", err)
	}
	return data, nil
}

// DecodeReport parses a report produced by Encode.
func DecodeReport(data []byte) (*Report, error) {
	var r Report
	if err := sonnet.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("harness: decode report: %w", err)
	}
	return &r, nil
}
