// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_stub.go) guarded by build tags.

package affinity

import (
	"github.com/momentics/spinreact/api"
)

// SetAffinity locks the calling goroutine to its OS thread and pins that
// thread to a given logical CPU. The goroutine must then run the dispatcher
// itself; pinning from a helper goroutine has no effect on the reactor.
//
// Any failure is reported as api.ErrAffinityAssignmentFailed, or
// api.ErrNotSupported on platforms without thread affinity.
func SetAffinity(cpuID int) error {
	if cpuID < 0 {
		return api.NewError(api.ErrCodeAffinityAssignmentFailed, "negative cpu index").
			WithContext("cpu", cpuID)
	}
	if err := setAffinityPlatform(cpuID); err != nil {
		return err
	}
	return nil
}

// ClearAffinity undoes SetAffinity for the calling goroutine.
func ClearAffinity() error {
	return clearAffinityPlatform()
}

// Supported reports whether SetAffinity can succeed on this platform.
func Supported() bool {
	return supported
}
