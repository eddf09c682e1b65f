// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.
//
// Pinning is per OS thread: callers lock their goroutine to a thread first
// (runtime.LockOSThread) and keep it locked while the binding must hold. The
// producer and consumer contexts of a queue pin independently, which keeps
// each side's step cadence steady without coupling their schedules.

package affinity

// SetAffinity pins the current OS thread to a given logical CPU/core on supported platforms.
// On unsupported platforms returns an error.
func SetAffinity(cpuID int) error {
	return setAffinityPlatform(cpuID)
}

// ClearAffinity removes any CPU binding from the current OS thread, restoring
// the full scheduler mask. On unsupported platforms returns an error.
func ClearAffinity() error {
	return clearAffinityPlatform()
}
