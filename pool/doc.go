// Package pool
// Author: momentics <momentics@gmail.com>
//
// Buffer recycling for queue producers and consumers.
// A WordQueue copies words on write and latches them into its output
// register on read, so caller-side buffers never alias queue storage and
// can be pooled freely. WordPool serves the fixed-width case; SyncPool is
// the generic building block for typed elements.
// All primitives are cross-platform and allocation-free on the reuse path.
package pool
