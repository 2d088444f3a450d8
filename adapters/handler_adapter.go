// File: adapters/handler_adapter.go
// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Handler middleware chain for the callback dispatcher. Every middleware runs
// on the reaction path, so only install the ones you are prepared to pay for.

package adapters

import (
	"sync/atomic"

	"github.com/momentics/spinreact/api"
	"github.com/rs/zerolog"
)

// MiddlewareHandler wraps a base Handler and applies middleware in chain.
// The chain is composed once, on Build.
type MiddlewareHandler struct {
	handler    api.Handler
	middleware []func(api.Handler) api.Handler
}

// NewMiddlewareHandler creates a new MiddlewareHandler for the given base handler.
func NewMiddlewareHandler(handler api.Handler) *MiddlewareHandler {
	return &MiddlewareHandler{handler: handler}
}

// Use appends a middleware to the chain. The first one added runs outermost.
func (m *MiddlewareHandler) Use(mw func(api.Handler) api.Handler) *MiddlewareHandler {
	m.middleware = append(m.middleware, mw)
	return m
}

// Build returns the composed handler.
func (m *MiddlewareHandler) Build() api.Handler {
	handler := m.handler
	for i := len(m.middleware) - 1; i >= 0; i-- {
		handler = m.middleware[i](handler)
	}
	return handler
}

// LoggingMiddleware logs every value at debug level before handing it on.
func LoggingMiddleware(log zerolog.Logger) func(api.Handler) api.Handler {
	return func(next api.Handler) api.Handler {
		return api.HandlerFunc(func(value uint64) {
			log.Debug().Uint64("value", value).Msg("handler invoked")
			next.Handle(value)
		})
	}
}

// RecoveryMiddleware turns a handler panic into an error log line. The event
// loop itself never recovers.
func RecoveryMiddleware(log zerolog.Logger) func(api.Handler) api.Handler {
	return func(next api.Handler) api.Handler {
		return api.HandlerFunc(func(value uint64) {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Uint64("value", value).Msg("handler panic recovered")
				}
			}()
			next.Handle(value)
		})
	}
}

// MetricsMiddleware counts invocations and publishes the running total and
// the last value under "handler.processed" and "handler.last_value".
func MetricsMiddleware(ctrl api.Control) func(api.Handler) api.Handler {
	return func(next api.Handler) api.Handler {
		var processed atomic.Uint64
		return api.HandlerFunc(func(value uint64) {
			next.Handle(value)
			ctrl.SetMetric("handler.processed", processed.Add(1))
			ctrl.SetMetric("handler.last_value", value)
		})
	}
}
