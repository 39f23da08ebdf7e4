// Package vector provides Vector[T], a contiguous, dynamically-resizable
// sequence container with an explicit growth and shrink policy.
//
// What:
//
//   - Vector owns one contiguous block of slots sized to its capacity and
//     keeps a live prefix [0, Len()) of that block.
//   - Push grows the block by GrowFactor (1.25×) when it is full.
//   - Pop shrinks the block to a quarter of its capacity once the vector
//     is at most a quarter full, never below InitialCapacity.
//   - Reserve is the single reallocation primitive; growth and shrink
//     both funnel through it.
//
// Why:
//
//   - The capacity policy is visible and testable instead of hidden
//     behind append.
//   - Retained memory stays within roughly 4× the live element count after
//     a large container drains.
//
// Complexity:
//
//   - Push:    amortized O(1), worst case O(n) on a growth event.
//   - Pop:     amortized O(1), worst case O(n) on a shrink event.
//   - Reserve: O(n).
//   - Clone:   O(n) time, O(Cap()) memory.
//   - Ref, At, Len, Cap, IsEmpty: O(1).
//
// Caller obligations (unchecked):
//
//   - Ref(i) requires 0 ≤ i < Len().
//   - Pop() requires Len() > 0.
//
// Errors:
//
//   - ErrIndexOutOfRange: At or Last called with an index outside [0, Len()).
//   - ErrCapacity: Reserve requested fewer slots than Len().
//
// A Vector is not safe for concurrent mutation; guard it externally.
package vector
