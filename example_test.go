package vector

import (
	"fmt"
)

// Example demonstrates basic vector usage
func Example() {
	v := New[int]()
	defer v.Release() // Always clean up

	// Reserve once, then push without reallocating
	_ = v.Reserve(4)
	for i := 1; i <= 4; i++ {
		_ = v.PushBack(i * 10)
	}
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())

	// Growing past capacity doubles it
	_ = v.PushBack(50)
	fmt.Printf("Len: %d, Cap: %d\n", v.Len(), v.Cap())

	// Insert and erase work on integer positions
	pos, _ := v.Insert(1, 15)
	fmt.Printf("Inserted at %d: %v\n", pos, v.Data())
	_, _ = v.EraseRange(3, 5)
	fmt.Printf("After erase: %v\n", v.Data())

	// Check storage usage
	fmt.Printf("Utilization: %.2f%%\n", v.Utilization()*100)

	// Output:
	// Len: 4, Cap: 4
	// Len: 5, Cap: 8
	// Inserted at 1: [10 15 20 30 40 50]
	// After erase: [10 15 20 50]
	// Utilization: 50.00%
}

// ExampleVector_At demonstrates checked element access
func ExampleVector_At() {
	v := Of("a", "b", "c")

	if x, err := v.At(1); err == nil {
		fmt.Println(x)
	}
	if _, err := v.At(3); err != nil {
		fmt.Println(err)
	}

	// Output:
	// b
	// index 3, length 3: vector: out of range
}

// ExampleVector_Move demonstrates ownership transfer
func ExampleVector_Move() {
	a := Of(1, 2, 3)
	b := a.Move()

	fmt.Printf("a: len=%d cap=%d\n", a.Len(), a.Cap())
	fmt.Printf("b: %v cap=%d\n", b.Data(), b.Cap())

	// Output:
	// a: len=0 cap=0
	// b: [1 2 3] cap=3
}

// ExampleLess demonstrates lexicographic comparison
func ExampleLess() {
	a := Of(1, 2, 3)
	b := Of(1, 2, 4)

	fmt.Println(Less(a, b), Equal(a, b), Compare(b, a))

	// Output:
	// true false 1
}

// ExampleVector_Resize demonstrates shrinking without releasing capacity
func ExampleVector_Resize() {
	v := Of(1, 2, 3, 4, 5)
	_ = v.Resize(3)
	fmt.Println(v.Data(), v.Cap())

	_ = v.ShrinkToFit()
	fmt.Println(v.Data(), v.Cap())

	// Output:
	// [1 2 3] 5
	// [1 2 3] 3
}
