// File: internal/verify/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package verify exercises the queue against reference behavior.
//
// Two harnesses are provided. Script mode drives one queue from a single
// goroutine with a seeded random operation schedule and checks every step
// against an exact FIFO oracle, which makes failures reproducible from the
// seed alone. Soak mode runs the queue in its real shape, one producer
// goroutine against one consumer goroutine, moving a monotone sequence and
// verifying that nothing is lost, duplicated, or reordered.
//
// Both report a Report value suitable for logs and regression baselines.
package verify
