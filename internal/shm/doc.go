// File: internal/shm/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package shm maps named POSIX shared memory segments. On Linux a segment
// named "/spinnmem" lives at /dev/shm/spinnmem, which is exactly what
// shm_open(3) resolves to, so segments created by C, Rust or JVM peers are
// interchangeable with the ones created here.
//
// Open attaches to an existing segment and never creates one. Create is the
// producer-side counterpart used by the ping harness and tests.
package shm
