package vector

import (
	"errors"
	"fmt"
)

// Sentinel errors for vector operations. Methods wrap them with call
// context; match with errors.Is.
var (
	// ErrIndexOutOfRange indicates a checked access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrCapacity indicates a Reserve request smaller than the live element count.
	ErrCapacity = errors.New("vector: requested capacity is less than size")
)

// vectorErrorf wraps err with the Vector method name and its integer argument.
func vectorErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, arg, err)
}
