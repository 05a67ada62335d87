package vector

import (
	"slices"
	"testing"
)

// BenchmarkRealisticUsage compares common vector patterns with builtin slices
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Appending with growth from empty
	b.Run("PushBack/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 1000; j++ {
				_ = v.PushBack(j)
			}
		}
	})

	b.Run("PushBack/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 2: Appending after a single reservation
	b.Run("Reserved/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			_ = v.Reserve(1000)
			for j := 0; j < 1000; j++ {
				_ = v.PushBack(j)
			}
		}
	})

	b.Run("Reserved/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			s := make([]int, 0, 1000)
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 3: Reuse with Clear (simulates per-request buffers)
	b.Run("ClearReuse/Vector", func(b *testing.B) {
		v := New[[64]byte]()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				_ = v.PushBack([64]byte{})
			}
			v.Clear()
		}
	})

	// Test 4: Front insertion shifts every element
	b.Run("InsertFront/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int]()
			for j := 0; j < 200; j++ {
				_, _ = v.Insert(0, j)
			}
		}
	})

	b.Run("InsertFront/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 200; j++ {
				s = slices.Insert(s, 0, j)
			}
			_ = s
		}
	})
}

func BenchmarkEraseFront(b *testing.B) {
	src := make([]int, 1000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		v, _ := FromSlice(src)
		for !v.Empty() {
			_, _ = v.Erase(0)
		}
	}
}
