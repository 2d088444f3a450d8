//go:build (amd64 || arm64) && !purego

// File: internal/concurrency/pause.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// Pause hints the processor that the caller is in a spin-wait loop.
//
//go:noescape
func Pause()
