//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.
// Returns error to indicate unavailability.

package affinity

import "github.com/momentics/spinreact/api"

const supported = false

// setAffinityPlatform is a stub for platforms where CPU affinity is not supported.
func setAffinityPlatform(cpuID int) error {
	return api.NewError(api.ErrCodeNotSupported, "affinity: not supported on this platform").
		WithContext("cpu", cpuID)
}

func clearAffinityPlatform() error {
	return api.NewError(api.ErrCodeNotSupported, "affinity: not supported on this platform")
}
