package vector

import "fmt"

// Vector is a contiguous, growable sequence of T.
//
// The zero value is ready to use: it allocates InitialCapacity slots on
// the first mutation and reports Cap() == InitialCapacity before that.
// A Vector must not be copied by value once used; use Clone or Assign.
type Vector[T any] struct {
	buf  buffer[T] // owned block; len(buf.slots) is the capacity
	size int       // live prefix length, 0 ≤ size ≤ capacity
}

// New returns an empty Vector holding InitialCapacity slots.
// Complexity: O(InitialCapacity).
func New[T any]() *Vector[T] {
	return &Vector[T]{buf: allocBuffer[T](InitialCapacity)}
}

// ensure allocates the initial block for a zero-value or destroyed Vector.
func (v *Vector[T]) ensure() {
	if !v.buf.allocated() {
		v.buf = allocBuffer[T](InitialCapacity)
	}
}

// Clone returns a deep copy with the same Len and Cap and an independent
// block. Elements are copied with ordinary assignment, so pointer-like
// element types still share what they point to.
// A nil receiver clones to an empty Vector.
// Complexity: O(Cap()) time and memory.
func (v *Vector[T]) Clone() *Vector[T] {
	if v == nil {
		return New[T]()
	}
	out := &Vector[T]{buf: allocBuffer[T](v.Cap()), size: v.size}
	v.buf.copyInto(&out.buf, v.size)

	return out
}

// Assign replaces v's contents with a deep copy of src using copy-and-swap:
// a full clone of src is built first, its state is swapped into v, and the
// clone (now holding v's previous state) is destroyed. If cloning panics,
// v is left unmodified.
//
// v.Assign(v) is a no-op. A nil src assigns an empty Vector.
// Complexity: O(src.Cap() + v.Len()).
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	tmp := src.Clone()
	v.buf, tmp.buf = tmp.buf, v.buf
	v.size, tmp.size = tmp.size, v.size
	tmp.Destroy()
}

// Destroy clears every live element and releases the block. Destroying a
// Vector that holds no block is a no-op. A destroyed Vector behaves like
// the zero value on further use.
// Complexity: O(Len()).
func (v *Vector[T]) Destroy() {
	if !v.buf.allocated() {
		return
	}
	v.buf.destroy(0, v.size)
	v.buf.release()
	v.size = 0
}

// Ref returns a pointer to the element at index i without checking i
// against Len(). The caller must guarantee 0 ≤ i < Len(); anything else is
// undefined: the runtime may panic, or a cleared slot beyond the live
// prefix may be returned. The pointer is invalidated by the next capacity
// change.
// Complexity: O(1).
func (v *Vector[T]) Ref(i int) *T {
	return &v.buf.slots[i]
}

// At returns a pointer to the element at index i, or ErrIndexOutOfRange
// when i is outside [0, Len()).
// Complexity: O(1).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, vectorErrorf("At", i, ErrIndexOutOfRange)
	}

	return &v.buf.slots[i], nil
}

// Last returns a pointer to the final live element, or ErrIndexOutOfRange
// on an empty Vector.
// Complexity: O(1).
func (v *Vector[T]) Last() (*T, error) {
	if v.size == 0 {
		return nil, vectorErrorf("Last", -1, ErrIndexOutOfRange)
	}

	return &v.buf.slots[v.size-1], nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if !v.buf.allocated() {
		return InitialCapacity
	}

	return v.buf.capacity()
}

// IsEmpty reports whether Len() == 0.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Slice returns the live prefix as a slice sharing v's block. Its capacity
// is clipped to Len(), so appending to it never writes into v. The view is
// invalidated by the next Push, Pop, Reserve, Clear, or Destroy.
// Complexity: O(1).
func (v *Vector[T]) Slice() []T {
	return v.buf.slots[:v.size:v.size]
}

// Clear destroys all elements and resets v to an empty Vector holding
// InitialCapacity slots in a fresh block.
// Complexity: O(Len() + InitialCapacity).
func (v *Vector[T]) Clear() {
	v.Destroy()
	v.buf = allocBuffer[T](InitialCapacity)
}

// Reserve reallocates v to exactly n slots, keeping every live element at
// its index. It returns ErrCapacity, leaving v unchanged, when n < Len().
// Stage 1 (Validate): n ≥ Len().
// Stage 2 (Execute): move the live prefix into a fresh n-slot block.
// Complexity: O(n).
func (v *Vector[T]) Reserve(n int) error {
	if n < v.size {
		return vectorErrorf("Reserve", n, ErrCapacity)
	}
	v.ensure()
	v.resize(n)

	return nil
}

// resize moves the live prefix into a fresh n-slot block and drops the old one.
// Callers guarantee n ≥ v.size.
func (v *Vector[T]) resize(n int) {
	next := allocBuffer[T](n)
	v.buf.moveInto(&next, v.size)
	v.buf.release()
	v.buf = next
}

// Push appends a copy of x. When v is full it first grows to
// GrowCapacity(Cap()).
// Complexity: amortized O(1).
func (v *Vector[T]) Push(x T) {
	v.ensure()
	if c := v.buf.capacity(); v.size == c {
		v.resize(GrowCapacity(c))
	}
	v.buf.construct(v.size, x)
	v.size++
}

// Pop removes the last element. The caller must guarantee Len() > 0;
// popping an empty Vector is undefined (the runtime panics on the
// out-of-range slot).
//
// Once Len() falls to or below Cap() × ContractFactor, v shrinks to
// ShrinkCapacity(Cap()) if that is smaller than the current capacity.
// Complexity: amortized O(1).
func (v *Vector[T]) Pop() {
	v.size--
	v.buf.destroy(v.size, v.size+1)

	c := v.buf.capacity()
	if v.size <= shrinkThreshold(c) {
		if next := ShrinkCapacity(c); next < c {
			v.resize(next)
		}
	}
}

// String implements fmt.Stringer, e.g. "[1 2 3] len=3 cap=16".
func (v *Vector[T]) String() string {
	return fmt.Sprintf("%v len=%d cap=%d", v.Slice(), v.size, v.Cap())
}
