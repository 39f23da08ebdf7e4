package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvvec/vector"
)

////////////////////////////////////////////////////////////////////////////////
// Example: basic usage
////////////////////////////////////////////////////////////////////////////////

// ExampleVector demonstrates push, raw and checked access, pop and clear.
func ExampleVector() {
	v := vector.New[int]()
	v.Push(1)
	v.Push(2)
	v.Push(3)
	fmt.Println(v)
	fmt.Println("v[1] =", *v.Ref(1))

	if _, err := v.At(3); errors.Is(err, vector.ErrIndexOutOfRange) {
		fmt.Println("At(3):", err)
	}

	v.Pop()
	fmt.Println(v)

	v.Clear()
	fmt.Println(v)

	// Output:
	// [1 2 3] len=3 cap=16
	// v[1] = 2
	// At(3): Vector.At(3): vector: index out of range
	// [1 2] len=2 cap=16
	// [] len=0 cap=16
}

////////////////////////////////////////////////////////////////////////////////
// Example: growth schedule
////////////////////////////////////////////////////////////////////////////////

// ExampleVector_Push shows each growth event while pushing 40 elements.
// Scenario:
//
//   - Start at InitialCapacity (16).
//   - Each time the vector is full, capacity grows by 1.25× (truncated).
func ExampleVector_Push() {
	v := vector.New[int]()
	prev := v.Cap()
	for i := 0; i < 40; i++ {
		v.Push(i)
		if v.Cap() != prev {
			fmt.Printf("len %d: cap %d -> %d\n", v.Len(), prev, v.Cap())
			prev = v.Cap()
		}
	}

	// Output:
	// len 17: cap 16 -> 20
	// len 21: cap 20 -> 25
	// len 26: cap 25 -> 31
	// len 32: cap 31 -> 38
	// len 39: cap 38 -> 47
}

// ExampleVector_Reserve shows Reserve refusing to drop live elements.
func ExampleVector_Reserve() {
	v := vector.New[string]()
	v.Push("a")
	v.Push("b")

	fmt.Println(v.Reserve(1))
	fmt.Println(v.Reserve(64), v.Cap())

	// Output:
	// Vector.Reserve(1): vector: requested capacity is less than size
	// <nil> 64
}

// ExampleVector_Assign shows copy-and-swap assignment producing an independent copy.
func ExampleVector_Assign() {
	src := vector.New[string]()
	src.Push("x")
	dst := vector.New[string]()
	dst.Assign(src)
	src.Push("y")

	fmt.Println(src.Slice(), dst.Slice())

	// Output:
	// [x y] [x]
}
