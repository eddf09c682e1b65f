// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations, DTOs, and constants.

package api

import "time"

// QueueState is a diagnostic snapshot of a queue assembled from its two
// published pointer cells and its refusal counters. It is safe to collect
// from any goroutine; the values may lag the owning contexts by the relay
// settle window, and never more.
type QueueState struct {
	Capacity       int    // fixed slot count, a power of two
	ElementWidth   int    // bytes per element for word queues, 0 for typed queues
	PublishedWrite uint32 // write index as last released by the producer
	PublishedRead  uint32 // read index as last released by the consumer
	Occupancy      int    // (PublishedWrite - PublishedRead) mod 2*Capacity
	Full           bool   // occupancy estimate equals capacity
	Empty          bool   // occupancy estimate equals zero
	WriteDrops     uint64 // writes refused while full
	ReadDrops      uint64 // reads refused while empty
	ProducerResets uint64 // producer-side resets to date
	ConsumerResets uint64 // consumer-side resets to date
}

// ServiceInfo exposes descriptive build- and runtime info for external tools.
type ServiceInfo struct {
	Name      string
	Version   string
	Build     string
	StartedAt time.Time
}
