// Package control
// Author: momentics <momentics@gmail.com>
//
// Run configuration, runtime metrics and debug introspection for the
// reactors and the latency harness. Nothing here is touched on the spin path;
// the harness publishes into it between samples.
//
// Provides concurrent-safe state handling primitives including:
//   - Snapshot config reads and merged updates with reload listeners
//   - Metrics registry
//   - Debug probe registration, including platform probes
package control
