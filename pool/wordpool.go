// File: pool/wordpool.go
// Author: momentics <momentics@gmail.com>
//
// Fixed-width word pool for WordQueue producers. A queue write copies the
// word into the slab, so the source buffer is reusable the moment TryWrite
// returns; pooling those buffers keeps a hot producer loop allocation-free.

package pool

// WordPool recycles byte words of one fixed width.
type WordPool struct {
	width int
	inner *SyncPool[[]byte]
}

var _ ObjectPool[[]byte] = (*WordPool)(nil)

// NewWordPool creates a pool of words of the given width in bytes.
func NewWordPool(width int) *WordPool {
	if width < 1 {
		panic("pool: word width must be positive")
	}
	return &WordPool{
		width: width,
		inner: NewSyncPool(func() []byte { return make([]byte, width) }),
	}
}

// Width returns the fixed word width in bytes.
func (p *WordPool) Width() int { return p.width }

// Get returns a word of exactly Width bytes. Contents are unspecified.
func (p *WordPool) Get() []byte {
	return p.inner.Get()
}

// Put returns a word to the pool. Words of a foreign width are dropped for
// the GC instead of poisoning the pool.
func (p *WordPool) Put(word []byte) {
	if len(word) != p.width {
		return
	}
	p.inner.Put(word)
}
