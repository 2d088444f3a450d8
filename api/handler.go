// File: api/handler.go
// Package api defines Handler interface.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Handler reacts to a newly observed writer value.
type Handler interface {
	Handle(value uint64)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(value uint64)

// Handle calls f(value).
func (f HandlerFunc) Handle(value uint64) {
	f(value)
}
