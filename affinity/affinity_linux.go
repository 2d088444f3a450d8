//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific implementation for setting thread CPU affinity.

package affinity

import (
	"github.com/momentics/spinreact/api"
	"github.com/momentics/spinreact/internal/concurrency"
)

const supported = true

// setAffinityPlatform sets thread affinity to a given CPU for Linux.
func setAffinityPlatform(cpuID int) error {
	if err := concurrency.PinCurrentThread(cpuID); err != nil {
		return api.NewError(api.ErrCodeAffinityAssignmentFailed, "sched_setaffinity failed").
			WithContext("cpu", cpuID).
			WithContext("allowed", concurrency.AllowedCPUs()).
			Wrap(err)
	}
	return nil
}

func clearAffinityPlatform() error {
	if err := concurrency.UnpinCurrentThread(); err != nil {
		return api.NewError(api.ErrCodeAffinityAssignmentFailed, "restore affinity failed").Wrap(err)
	}
	return nil
}
