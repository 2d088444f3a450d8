// File: internal/concurrency/affinity.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-platform CPU affinity management for the calling OS thread.

package concurrency

import (
	"fmt"
	"runtime"
)

// PinCurrentThread locks the calling goroutine to its OS thread and binds that
// thread to cpuID. The goroutine stays locked on success; on failure the lock
// is released again.
func PinCurrentThread(cpuID int) error {
	if cpuID < 0 {
		return fmt.Errorf("concurrency: negative cpu index %d", cpuID)
	}
	runtime.LockOSThread()
	if err := platformPinCurrentThread(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// UnpinCurrentThread restores the affinity mask the process started with and
// releases the OS thread lock taken by PinCurrentThread.
func UnpinCurrentThread() error {
	defer runtime.UnlockOSThread()
	return platformUnpinCurrentThread()
}

// AffinitySupported reports whether thread pinning is implemented on this
// platform.
func AffinitySupported() bool {
	return affinitySupported
}
