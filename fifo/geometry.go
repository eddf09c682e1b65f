// File: fifo/geometry.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Index arithmetic for carry-bit ring counters. Capacity is always a power
// of two; indices run one bit wider than the slot address so that a full
// buffer and an empty buffer remain distinguishable when both sides point at
// the same slot.

package fifo

// maxCapacityExponent bounds the slot-address width so that index
// arithmetic, including the carry bit, stays inside uint32.
const maxCapacityExponent = 30

// geometry carries the precomputed masks of one queue instance. It is
// immutable after construction and shared read-only by both contexts.
type geometry struct {
	capacity uint32 // 2^k slots
	capMask  uint32 // capacity-1, maps an index to its slot address
	wrapMask uint32 // 2*capacity-1, index arithmetic modulus
}

// newGeometry derives masks from the capacity exponent. The exponent is
// trusted here; exported constructors validate it first.
func newGeometry(capExp uint) geometry {
	capacity := uint32(1) << capExp
	return geometry{
		capacity: capacity,
		capMask:  capacity - 1,
		wrapMask: capacity<<1 - 1,
	}
}

// next advances an index by one, wrapping modulo 2x capacity.
func (g geometry) next(i uint32) uint32 { return (i + 1) & g.wrapMask }

// slot maps an index to its storage address.
func (g geometry) slot(i uint32) uint32 { return i & g.capMask }

// distance returns (w - r) modulo 2x capacity: the occupancy implied by a
// write index and a read index. Plain binary subtraction is exact here
// because uint32 underflow wraps modulo 2^32 and 2x capacity divides 2^32.
func (g geometry) distance(w, r uint32) uint32 { return (w - r) & g.wrapMask }

// validCapacityExponent reports whether k is inside the supported range.
func validCapacityExponent(capExp uint) bool { return capExp <= maxCapacityExponent }
