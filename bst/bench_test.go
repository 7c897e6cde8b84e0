package bst_test

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/vaskorr/collections/bst"
)

const benchN = 4096

func shuffled() []int {
	r := rand.New(rand.NewSource(3))
	vs := make([]int, benchN)
	for i := range vs {
		vs[i] = i
	}
	r.Shuffle(len(vs), func(i, j int) { vs[i], vs[j] = vs[j], vs[i] })

	return vs
}

// BenchmarkInsertSearch_Unbalanced measures random-shape performance of
// the unbalanced tree.
func BenchmarkInsertSearch_Unbalanced(b *testing.B) {
	vs := shuffled()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr := bst.NewOrdered[int]()
		for _, v := range vs {
			tr.Insert(v)
		}
		for _, v := range vs {
			_ = tr.Search(v)
		}
	}
}

// BenchmarkInsertSearch_GodsRedBlack runs the identical workload on
// gods' red-black tree.
func BenchmarkInsertSearch_GodsRedBlack(b *testing.B) {
	vs := shuffled()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr := redblacktree.NewWithIntComparator()
		for _, v := range vs {
			tr.Put(v, struct{}{})
		}
		for _, v := range vs {
			_, _ = tr.Get(v)
		}
	}
}

// BenchmarkInsertSearch_GoogleBTree runs the identical workload on
// google/btree.
func BenchmarkInsertSearch_GoogleBTree(b *testing.B) {
	vs := shuffled()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr := btree.New(32)
		for _, v := range vs {
			tr.ReplaceOrInsert(btree.Int(v))
		}
		for _, v := range vs {
			_ = tr.Has(btree.Int(v))
		}
	}
}

// BenchmarkInsertSearch_GoLLRB runs the identical workload on
// petar/GoLLRB.
func BenchmarkInsertSearch_GoLLRB(b *testing.B) {
	vs := shuffled()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		tr := llrb.New()
		for _, v := range vs {
			tr.ReplaceOrInsert(llrb.Int(v))
		}
		for _, v := range vs {
			_ = tr.Has(llrb.Int(v))
		}
	}
}

// BenchmarkSearch_DegenerateChain shows the documented O(N) worst case
// produced by sorted insertion order.
func BenchmarkSearch_DegenerateChain(b *testing.B) {
	tr := bst.NewOrdered[int]()
	for i := 0; i < benchN; i++ {
		tr.Insert(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Search(benchN - 1)
	}
}
