// File: harness/plan.go
// Author: momentics <momentics@gmail.com>

package harness

import (
	"fmt"
	"os"
	"time"

	"github.com/momentics/spinreact/api"
	"github.com/sugawarayuuta/sonnet"
)

// Plan describes one measurement run.
type Plan struct {
	Label        string `json:"label"`
	Samples      int    `json:"samples"`
	Warmup       int    `json:"warmup"`
	Window       int    `json:"window"`
	TimeoutMs    int    `json:"timeout_ms"`
	PublishEvery int    `json:"publish_every"`
}

// MaxTimeoutMs bounds timeout_ms so Timeout cannot overflow.
const MaxTimeoutMs = int(time.Hour / time.Millisecond)

// DefaultPlan returns the plan used when no file is given.
func DefaultPlan() Plan {
	return Plan{
		Label:        "default",
		Samples:      1000,
		Warmup:       100,
		Window:       128,
		TimeoutMs:    1000,
		PublishEvery: 100,
	}
}

// Timeout is the per-ping echo deadline.
func (p Plan) Timeout() time.Duration {
	return time.Duration(min(p.TimeoutMs, MaxTimeoutMs)) * time.Millisecond
}

// Validate rejects plans that cannot run.
func (p Plan) Validate() error {
	switch {
	case p.Samples <= 0:
		return fmt.Errorf("harness: samples must be positive, got %d: %w", p.Samples, api.ErrInvalidArgument)
	case p.Warmup < 0:
		return fmt.Errorf("harness: warmup must not be negative, got %d: %w", p.Warmup, api.ErrInvalidArgument)
	case p.Window <= 0:
		return fmt.Errorf("harness: window must be positive, got %d: %w", p.Window, api.ErrInvalidArgument)
	case p.TimeoutMs <= 0 || p.TimeoutMs > MaxTimeoutMs:
		return fmt.Errorf("harness: timeout_ms must be in [1, %d], got %d: %w", MaxTimeoutMs, p.TimeoutMs, api.ErrInvalidArgument)
	case p.PublishEvery < 0:
		return fmt.Errorf("harness: publish_every must not be negative, got %d: %w", p.PublishEvery, api.ErrInvalidArgument)
	}
	return nil
}

// ParsePlan decodes data over DefaultPlan, so omitted fields keep their
// defaults, and validates the result.
func ParsePlan(data []byte) (Plan, error) {
	p := DefaultPlan()
	if err := sonnet.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("harness: decode plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// LoadPlan reads and parses a plan file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("harness: read plan: %w", err)
	}
	return ParsePlan(data)
}
