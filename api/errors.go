// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error kinds and error handling utilities for spinreact.

package api

import (
	"errors"
	"fmt"
)

// Startup error kinds. All of them are fatal: nothing in the library retries.
var (
	// ErrSignalUnavailable reports that the named region does not exist or
	// cannot be opened. Usually the producer process is not running.
	ErrSignalUnavailable = errors.New("signal unavailable")
	// ErrRegionSizeMismatch reports a region that exists but cannot be sized
	// to exactly one page, or is too small for the slot layout.
	ErrRegionSizeMismatch = errors.New("region size mismatch")
	// ErrMappingFailed reports that mmap failed after a successful open.
	ErrMappingFailed = errors.New("mapping failed")
	// ErrAffinityAssignmentFailed reports that CPU pinning was requested but
	// could not be satisfied.
	ErrAffinityAssignmentFailed = errors.New("affinity assignment failed")
	// ErrInvalidArgument is returned for malformed names, CPU indices and plans.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotSupported is returned on platforms without shared memory or
	// affinity support.
	ErrNotSupported = errors.New("operation not supported")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeSignalUnavailable
	ErrCodeRegionSizeMismatch
	ErrCodeMappingFailed
	ErrCodeAffinityAssignmentFailed
	ErrCodeInvalidArgument
	ErrCodeNotSupported
	ErrCodeInternal
)

var codeSentinels = map[ErrorCode]error{
	ErrCodeSignalUnavailable:        ErrSignalUnavailable,
	ErrCodeRegionSizeMismatch:       ErrRegionSizeMismatch,
	ErrCodeMappingFailed:            ErrMappingFailed,
	ErrCodeAffinityAssignmentFailed: ErrAffinityAssignmentFailed,
	ErrCodeInvalidArgument:          ErrInvalidArgument,
	ErrCodeNotSupported:             ErrNotSupported,
}

// Error represents a structured error with code, context and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if sentinel, ok := codeSentinels[e.Code]; ok {
		msg = sentinel.Error() + ": " + msg
	}
	if len(e.Context) != 0 {
		msg = fmt.Sprintf("%s (context: %+v)", msg, e.Context)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the underlying cause, typically a unix.Errno.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error associated with the error code, so callers
// can use errors.Is(err, api.ErrSignalUnavailable).
func (e *Error) Is(target error) bool {
	sentinel, ok := codeSentinels[e.Code]
	return ok && sentinel == target
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// Wrap records the underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// CodeOf returns the code of the first *Error in err's chain, or
// ErrCodeInternal when there is none.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ErrCodeInternal
}
