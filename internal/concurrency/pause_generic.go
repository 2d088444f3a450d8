//go:build (!amd64 && !arm64) || purego

// File: internal/concurrency/pause_generic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// Pause is a no-op on architectures without a dedicated spin-wait instruction.
//
//go:nosplit
func Pause() {}
