// File: fifo/geometry_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fifo

import "testing"

// TestGeometryArithmetic spot-checks the carry-bit index math, including
// the wrap of the k+1-bit index space and occupancy across the wrap seam.
func TestGeometryArithmetic(t *testing.T) {
	g := newGeometry(2) // capacity 4, indices live in [0, 8)

	if g.capacity != 4 || g.capMask != 3 || g.wrapMask != 7 {
		t.Fatalf("geometry = %+v", g)
	}

	// next wraps 7 -> 0, not 7 -> 8.
	if got := g.next(7); got != 0 {
		t.Fatalf("next(7) = %d, want 0", got)
	}
	// slot ignores the carry bit: index 5 and index 1 share slot 1.
	if g.slot(5) != 1 || g.slot(1) != 1 {
		t.Fatalf("slot(5) = %d, slot(1) = %d, want 1, 1", g.slot(5), g.slot(1))
	}

	cases := []struct{ w, r, want uint32 }{
		{0, 0, 0}, // empty at origin
		{4, 0, 4}, // full: same slot, opposite carry
		{5, 1, 4}, // full again past the seam
		{1, 6, 3}, // w wrapped, r not
		{7, 7, 0}, // empty just before the seam
	}
	for _, tc := range cases {
		if got := g.distance(tc.w, tc.r); got != tc.want {
			t.Fatalf("distance(%d, %d) = %d, want %d", tc.w, tc.r, got, tc.want)
		}
	}
}

// TestRelayTwoStageSettle drives one relay by hand: a published value must
// appear in the settled stage on the second destination clock, never the
// first.
func TestRelayTwoStageSettle(t *testing.T) {
	var r relay

	r.publish(3)
	if r.synced() != 0 {
		t.Fatal("settled stage moved without a destination clock")
	}
	r.clock()
	if r.synced() != 0 {
		t.Fatal("settled stage must lag one clock behind the sample stage")
	}
	r.clock()
	if r.synced() != 3 {
		t.Fatalf("synced() = %d after two clocks, want 3", r.synced())
	}

	// A newer publication overtakes an unsettled older one.
	r.publish(4)
	r.publish(5)
	r.clock()
	r.clock()
	if r.synced() != 5 {
		t.Fatalf("synced() = %d, want 5", r.synced())
	}
	if r.peek() != 5 {
		t.Fatalf("peek() = %d, want 5", r.peek())
	}
}
