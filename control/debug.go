// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for internal inspection.
// The facade registers a queue.state probe here so an operator can dump the
// published pointers, occupancy estimate, and drop counters of a live queue
// without stepping either owner context.

package control

import "sync"

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook. Probes must be callable from any
// goroutine; queue probes satisfy this by reading only published state.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// UnregisterProbe removes a named hook, reporting whether it existed.
func (dp *DebugProbes) UnregisterProbe(name string) bool {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	_, ok := dp.probes[name]
	delete(dp.probes, name)
	return ok
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}
