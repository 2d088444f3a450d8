// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package api holds the contracts shared by the signal, reactor, harness and
// adapter packages: the two-slot Signal, the Stepper driven by an external
// loop, the replaceable Handler, affinity and control surfaces, and the
// startup error kinds.
package api
