// File: fifo/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Lock-free, wait-free single-producer/single-consumer FIFO built around
// pointer synchronization rather than slot sequencing. The producer and the
// consumer run in fully independent execution contexts: no shared clock, no
// locks, no blocking wake-ups, no common progress guarantee. Either side may
// stall for any length of time without disturbing the other's local state.
//
// Each side owns one index counter that is one bit wider than the slot
// address (capacity bits plus a carry bit, wrapping modulo 2x capacity) and
// republishes it into the opposite context through a two-stage relay. Status
// flags are derived purely from a side's own index and the relayed remote
// index: full on the producer side, empty on the consumer side. Both flags
// are advisory and conservative — staleness can only delay an acceptance,
// never corrupt data, reorder it, or duplicate it.
//
// The package exposes a generic Queue[T] for typed elements, a WordQueue for
// fixed-width byte words, and a Strict wrapper that converts refused
// operations into explicit errors for callers who prefer results over flags.
package fifo
