package vector

// buffer is the exclusively-owned backing block of a Vector.
//
// len(slots) is the capacity. The owner tracks which prefix is live;
// buffer itself only knows how to place values into slots, clear them,
// and hand its live prefix to a fresh block. A nil slots means the block
// has been released (or was never allocated).
type buffer[T any] struct {
	slots []T
}

// allocBuffer returns a block of n zeroed slots. n == 0 yields a non-nil,
// empty block so that allocated() still reports true.
// Complexity: O(n).
func allocBuffer[T any](n int) buffer[T] {
	return buffer[T]{slots: make([]T, n)}
}

// allocated reports whether the buffer currently holds a block.
func (b *buffer[T]) allocated() bool {
	return b.slots != nil
}

// capacity returns the number of slots in the block.
func (b *buffer[T]) capacity() int {
	return len(b.slots)
}

// construct places v into slot i.
func (b *buffer[T]) construct(i int, v T) {
	b.slots[i] = v
}

// destroy zeroes slots [from, to) so nothing they referenced stays reachable.
func (b *buffer[T]) destroy(from, to int) {
	clear(b.slots[from:to])
}

// copyInto copies the live prefix [0, n) into dst, leaving b untouched.
// dst must hold at least n slots.
func (b *buffer[T]) copyInto(dst *buffer[T], n int) {
	copy(dst.slots, b.slots[:n])
}

// moveInto transfers the live prefix [0, n) into dst and clears it here.
// dst must hold at least n slots.
func (b *buffer[T]) moveInto(dst *buffer[T], n int) {
	b.copyInto(dst, n)
	b.destroy(0, n)
}

// release drops the block. A released buffer must be re-allocated before use.
func (b *buffer[T]) release() {
	b.slots = nil
}
