//go:build !linux

// File: internal/shm/shm_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for platforms without /dev/shm.

package shm

import "github.com/momentics/spinreact/api"

// SegmentPath is unsupported on this platform.
func SegmentPath(name string) (string, error) {
	return "", api.ErrNotSupported
}

// Open is unsupported on this platform.
func Open(name string, size int) (*Region, error) {
	return nil, api.NewError(api.ErrCodeSignalUnavailable, "named shared memory not supported").
		WithContext("name", name).Wrap(api.ErrNotSupported)
}

// Create is unsupported on this platform.
func Create(name string, size int, mode uint32) (*Region, error) {
	return nil, api.NewError(api.ErrCodeSignalUnavailable, "named shared memory not supported").
		WithContext("name", name).Wrap(api.ErrNotSupported)
}

// Unlink is unsupported on this platform.
func Unlink(name string) error {
	return api.ErrNotSupported
}
