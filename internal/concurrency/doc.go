// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Low-level execution primitives for spinreact: the spin-wait hint emitted
// on every busy-poll iteration, and OS thread pinning to a single CPU.
//
// Pause is implemented in assembly on amd64 (PAUSE) and arm64 (YIELD); other
// architectures, and builds with the purego tag, fall back to an empty call.
package concurrency
