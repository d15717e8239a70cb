// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the growvec library.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrIndexOutOfRange is returned by checked element access when the
	// index is not within [0, Len()).
	ErrIndexOutOfRange = fmt.Errorf("index out of range")

	// ErrBlockReleased indicates use of a storage block after Release.
	ErrBlockReleased = fmt.Errorf("storage block already released")

	// ErrMmapFailed indicates the OS refused an anonymous mapping request.
	ErrMmapFailed = fmt.Errorf("mmap allocation failed")

	// ErrInvalidArgument indicates a malformed size or capacity request.
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeReleased
	ErrCodeAllocFailed
	ErrCodeInvalidArgument
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
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
