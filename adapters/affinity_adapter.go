// File: adapters/affinity_adapter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
// Description:
//   Adapter implementing the api.Affinity interface, delegating to the
//   affinity package for per-thread CPU pinning.
//
// Package adapters provides glue code between the core API contracts
// and the underlying implementation packages.

package adapters

import (
	"sync"

	"github.com/momentics/asyncfifo/affinity"
	"github.com/momentics/asyncfifo/api"
)

// AffinityAdapter implements api.Affinity for one execution context. The
// facade keeps one per queue side so the producer and the consumer can pin
// to different cores; Get stays readable from diagnostics on any goroutine.
type AffinityAdapter struct {
	mu         sync.Mutex
	currentCPU int
	pinned     bool
}

var _ api.Affinity = (*AffinityAdapter)(nil)

// NewAffinityAdapter creates an adapter with no binding.
func NewAffinityAdapter() *AffinityAdapter {
	return &AffinityAdapter{currentCPU: -1}
}

// Pin binds the calling OS thread to a logical CPU. The caller must hold its
// thread via runtime.LockOSThread for the binding to be meaningful.
func (a *AffinityAdapter) Pin(cpuID int) error {
	if err := affinity.SetAffinity(cpuID); err != nil {
		return err
	}
	a.mu.Lock()
	a.currentCPU = cpuID
	a.pinned = true
	a.mu.Unlock()
	return nil
}

// Unpin clears the CPU binding, allowing the OS scheduler to migrate the
// thread. Unpinning a side that was never pinned is a no-op.
func (a *AffinityAdapter) Unpin() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.pinned {
		return nil
	}
	if err := affinity.ClearAffinity(); err != nil {
		return err
	}
	a.currentCPU = -1
	a.pinned = false
	return nil
}

// Get returns the currently recorded CPU binding.
func (a *AffinityAdapter) Get() (cpuID int, pinned bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentCPU, a.pinned
}
