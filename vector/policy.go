package vector

// Capacity policy constants.
const (
	// InitialCapacity is the slot count of a new or cleared Vector.
	InitialCapacity = 16

	// GrowFactor multiplies capacity when Push finds the Vector full.
	GrowFactor = 1.25

	// ContractFactor is the fraction of capacity below which Pop shrinks.
	ContractFactor = 0.25
)

// GrowCapacity returns the capacity Push grows to from c.
// Stage 1 (Execute): c × GrowFactor, truncated toward zero.
// Stage 2 (Clamp): at least c+1, so growth always makes room for one more slot
// even where truncation would leave small capacities unchanged (0, 1, 2, 3).
// Complexity: O(1).
func GrowCapacity(c int) int {
	next := int(float64(c) * GrowFactor)
	if next <= c {
		next = c + 1
	}

	return next
}

// shrinkThreshold returns c × ContractFactor, truncated toward zero.
// Pop shrinks once Len() drops to or below this value.
func shrinkThreshold(c int) int {
	return int(float64(c) * ContractFactor)
}

// ShrinkCapacity returns the capacity Pop shrinks to from c: the shrink
// threshold, floored at InitialCapacity. When the result is not below c,
// Pop keeps the current block.
// Complexity: O(1).
func ShrinkCapacity(c int) int {
	return max(shrinkThreshold(c), InitialCapacity)
}
