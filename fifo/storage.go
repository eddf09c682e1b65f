// File: fifo/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Slot storage. Purely mechanical and flag-unaware: addresses arrive already
// masked by the pointer engines, and the engines' release/acquire publishing
// orders every write before any read of the same slot.

package fifo

// storage is a fixed array of typed slots.
type storage[T any] struct {
	cells []T
}

func newStorage[T any](capacity uint32) storage[T] {
	return storage[T]{cells: make([]T, capacity)}
}

func (s *storage[T]) write(addr uint32, v T) { s.cells[addr] = v }

func (s *storage[T]) read(addr uint32) T { return s.cells[addr] }

// wordStorage is a fixed slab of equal-width byte words, the storage flavor
// behind WordQueue. Element width is free-form within range; only the slot
// count must be a power of two.
type wordStorage struct {
	slab  []byte
	width int
}

func newWordStorage(capacity uint32, width int) wordStorage {
	return wordStorage{
		slab:  make([]byte, int(capacity)*width),
		width: width,
	}
}

func (s *wordStorage) write(addr uint32, word []byte) {
	off := int(addr) * s.width
	copy(s.slab[off:off+s.width], word)
}

// readInto copies the addressed word into dst, which must be width bytes.
func (s *wordStorage) readInto(addr uint32, dst []byte) {
	off := int(addr) * s.width
	copy(dst, s.slab[off:off+s.width])
}
