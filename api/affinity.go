// Package api
// Author: momentics@gmail.com
//
// CPU affinity and thread pinning definitions.

package api

// Affinity controls execution of the calling OS thread on particular CPUs.
// Producer and consumer contexts pin themselves independently; the queue
// itself never requires pinning, it only benefits from the steadier step
// cadence a pinned thread gives the pointer relays.
type Affinity interface {
	// Pin locks the calling OS thread to a logical CPU. The caller must
	// already hold the thread (runtime.LockOSThread).
	Pin(cpuID int) error
	// Unpin removes the binding and lets the scheduler migrate the thread.
	Unpin() error
	// Get returns the last pinned CPU and whether a binding is active.
	Get() (cpuID int, pinned bool)
}
