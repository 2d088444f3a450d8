// Package harness is the producer side used to exercise a running reactor:
// it creates the shared segment, publishes values into the writer slot,
// measures how long the echo takes to come back and keeps the results.
//
// A run is described by a Plan (JSON), measured with a Pinger, summarised by
// a Recorder into a Report, and optionally persisted in a SQLite Store.
package harness
