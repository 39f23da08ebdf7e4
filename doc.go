// Package lvvec is a small, explicit growable-array library: a contiguous
// Vector[T] whose growth and shrink policy is part of its contract rather
// than an implementation detail of append.
//
// What is in the box?
//
//	vector/          Vector[T]: owned buffer, 1.25× growth, quarter-full shrink,
//	                 checked (At) and unchecked (Ref) access, Clone / Assign
//	internal/script  YAML operation scripts replayed against a Vector with a
//	                 per-op size/capacity trace
//	cmd/lvvec        CLI: `replay` scripts, print the capacity `policy`
//	examples/        runnable demo: Vector as an undo stack
//
// Why lvvec?
//
//   - Predictable memory: capacity stays within ~4× of the live element
//     count after a large drain, and never drops below 16 slots on its own.
//   - Two documented failure points only: ErrIndexOutOfRange from At and
//     ErrCapacity from Reserve. Everything else is a caller obligation.
//   - Pure Go, no cgo.
//
// Quick example:
//
//	v := vector.New[int]()
//	v.Push(1)
//	v.Push(2)
//	x, err := v.At(1) // *x == 2
//
//	go get github.com/katalvlaran/lvvec/vector
package lvvec
