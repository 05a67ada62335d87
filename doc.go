// Package vector implements a contiguous, growable sequence container with
// explicit control over capacity and element lifetime.
//
// # Overview
//
// A Vector owns a single backing buffer sized for Cap() elements. The first
// Len() slots hold live elements; the remaining slots are zeroed and reserved
// for growth. Storage is acquired only when an operation needs it and is
// replaced, never resized in place, when more room is required:
//
//   - Reserve and ShrinkToFit allocate exactly the requested capacity
//   - PushBack, EmplaceBack, Insert and Emplace double the capacity
//     (starting from 1) when the vector is full
//   - InsertN and InsertSlice grow to exactly the length they need
//   - Sized, filled, slice and copy construction allocate exactly Len() slots
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	_ = v.Reserve(10)     // one allocation, capacity 10
//	for i := range 10 {
//		_ = v.PushBack(i) // no further allocations
//	}
//
//	pos, _ := v.Insert(2, 99) // positions are integer offsets
//	_, _ = v.EraseRange(pos, pos+1)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifetime
//
// Element types may implement Destroyer to be notified when the vector
// destroys them, and Cloner to control how the vector copies them.
// Relocation during growth and shifting during insert or erase are moves:
// they neither destroy nor clone.
//
// # Errors
//
// Operations that may acquire storage return an error wrapping one of
// ErrOutOfMemory or ErrLengthExceeded. A failed operation leaves the vector
// exactly as it was. At and position-taking operations report
// ErrOutOfRange. Get, Set, Ref, Front, Back and PopBack are unchecked in the
// sense that misuse panics instead of returning an error.
//
// # Thread Safety
//
// Vector is not thread-safe. Callers sharing a vector between goroutines
// must synchronize access themselves.
//
// # Metrics and Monitoring
//
// Every vector reports a snapshot of its storage use:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//
// Storage activity across many vectors can be exported to Prometheus by
// sharing a Collector:
//
//	c := vector.NewCollector(prometheus.DefaultRegisterer, "app", "buffers")
//	v := vector.New[int](vector.WithCollector(c), vector.WithLogger(logger))
package vector
