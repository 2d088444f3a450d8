// File: signal/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package signal

import "github.com/rs/zerolog"

// DefaultName is the segment name shared with the producer.
const DefaultName = "/spinnmem"

// DefaultMode is the permission set used when the producer creates the
// segment: owner and group read-write.
const DefaultMode = 0o660

type options struct {
	name     string
	pageSize int
	mode     uint32
	log      zerolog.Logger
}

// Option customizes Attach and Create.
type Option func(*options)

// WithName selects the shared memory segment name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithPageSize overrides the region size. It defaults to the OS page size.
func WithPageSize(size int) Option {
	return func(o *options) {
		o.pageSize = size
	}
}

// WithMode sets the permission bits Create uses for a new segment.
func WithMode(mode uint32) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithLogger attaches a logger for lifecycle events. Polling never logs.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
