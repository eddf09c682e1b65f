// Package control
// Author: momentics <momentics@gmail.com>
//
// Hot-reload, runtime metrics, configuration control, and debug introspection layer.
// Part of the asyncfifo runtime-control surface.
//
// The queue core never touches this package: pointer engines and relays stay
// free of locks and maps. Control exists for the slow path around them —
// facade wiring, soak drivers, and operators that want to inspect or retune
// a running exchange without stopping either context.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for hot-reload
//   - Metrics telemetry snapshots
//   - State export, debug hooks, and probe registration
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
