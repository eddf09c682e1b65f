// File: fifo/strict.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fifo

import "github.com/momentics/asyncfifo/api"

// Strict wraps a queue behind an error-returning contract for callers that
// prefer explicit would-block errors over boolean refusals. The underlying
// queue semantics are unchanged: a refused operation is still a no-op, it
// just reports api.ErrFull or api.ErrEmpty so call sites can use
// api.IsWouldBlock and errors.Is.
type Strict[T any] struct {
	q api.Queue[T]
}

// NewStrict wraps q. The wrapper adds no synchronization; context rules of
// the wrapped queue apply as-is.
func NewStrict[T any](q api.Queue[T]) *Strict[T] {
	return &Strict[T]{q: q}
}

// Write enqueues v or reports api.ErrFull. Producer context only.
func (s *Strict[T]) Write(v T) error {
	if !s.q.TryWrite(v) {
		return api.ErrFull
	}
	return nil
}

// Read dequeues the oldest element or reports api.ErrEmpty. Consumer
// context only.
func (s *Strict[T]) Read() (T, error) {
	v, ok := s.q.TryRead()
	if !ok {
		return v, api.ErrEmpty
	}
	return v, nil
}

// Unwrap exposes the wrapped queue for flag polling and diagnostics.
func (s *Strict[T]) Unwrap() api.Queue[T] { return s.q }
