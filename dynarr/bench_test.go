package dynarr_test

import (
	"testing"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/vaskorr/collections/dynarr"
)

const benchN = 100000

// BenchmarkAppend measures amortized append cost starting from capacity 1.
func BenchmarkAppend(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		a, _ := dynarr.New[int](1)
		for j := 0; j < benchN; j++ {
			a.Append(j)
		}
	}
}

// BenchmarkAppend_GodsArrayList runs the same workload against
// gods/lists/arraylist for comparison.
func BenchmarkAppend_GodsArrayList(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := arraylist.New()
		for j := 0; j < benchN; j++ {
			l.Add(j)
		}
	}
}

// BenchmarkGet measures random-access reads.
func BenchmarkGet(b *testing.B) {
	a, _ := dynarr.New[int](benchN)
	for j := 0; j < benchN; j++ {
		a.Append(j)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = a.Get(i % benchN)
	}
}

// BenchmarkGet_GodsArrayList is the gods counterpart of BenchmarkGet.
func BenchmarkGet_GodsArrayList(b *testing.B) {
	l := arraylist.New()
	for j := 0; j < benchN; j++ {
		l.Add(j)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.Get(i % benchN)
	}
}

// BenchmarkInsertFront measures the worst-case O(L) shift path.
func BenchmarkInsertFront(b *testing.B) {
	a, _ := dynarr.New[int](b.N + 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.InsertAt(0, i)
	}
}
