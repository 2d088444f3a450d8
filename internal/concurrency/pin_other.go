//go:build !linux

// File: internal/concurrency/pin_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for platforms without sched_setaffinity.

package concurrency

import "errors"

const affinitySupported = false

var errAffinityUnsupported = errors.New("concurrency: cpu affinity not supported on this platform")

func platformPinCurrentThread(cpuID int) error {
	return errAffinityUnsupported
}

func platformUnpinCurrentThread() error {
	return errAffinityUnsupported
}

// AllowedCPUs is unknown on this platform.
func AllowedCPUs() []int {
	return nil
}
