// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for the asyncfifo library.
// The core queue operations never return errors: refused writes and reads
// are silent no-ops by contract. These errors exist for configuration
// validation and for the optional strict wrappers that surface refusals to
// callers who prefer explicit results over advisory flags.

package api

import (
	"errors"
	"fmt"
)

// Common errors used across the library.
var (
	// ErrFull is returned by strict writers when the queue has no free slot.
	ErrFull = errors.New("queue is full")
	// ErrEmpty is returned by strict readers when the queue has nothing unread.
	ErrEmpty = errors.New("queue is empty")
	// ErrInvalidCapacity rejects capacity exponents outside the supported range.
	ErrInvalidCapacity = errors.New("capacity exponent out of range")
	// ErrInvalidWidth rejects element widths outside the supported range.
	ErrInvalidWidth = errors.New("element width out of range")
	// ErrWordSize rejects words whose length differs from the configured width.
	ErrWordSize = errors.New("word length does not match element width")
)

// IsWouldBlock reports whether err only signals a refused (full/empty)
// operation, the non-failure outcome of the advisory-flag contract.
func IsWouldBlock(err error) bool {
	return errors.Is(err, ErrFull) || errors.Is(err, ErrEmpty)
}

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeWouldBlock
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
