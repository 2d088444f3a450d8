// Copyright (c) 2025
// Author: momentics <momentics@gmail.com>

// Package signal implements the shared two-slot signal: one page of named
// shared memory holding a writer slot and a reactor slot, each a single
// 64-bit counter touched only through atomic loads and stores.
//
// Layout (byte offsets from the start of the page):
//
//	0     writer slot  - written by the external producer, read here
//	2048  reactor slot - written here, read by the external producer
//
// The 2048 byte gap keeps the two counters on different cache lines on every
// supported CPU, so a store to one slot never invalidates the line the other
// side is polling.
//
// The counters carry no payload. Go's sync/atomic operations are sequentially
// consistent, which is stronger than the relaxed ordering the protocol needs;
// that suffices as long as nothing else is published alongside a counter. Any
// extension that puts data next to a slot must publish it before the slot
// store and read it after the slot load (release/acquire pairing).
package signal
