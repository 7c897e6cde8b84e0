package bst_test

import (
	"fmt"

	"github.com/vaskorr/collections/bst"
)

// ExampleTree demonstrates the sorted in-order invariant and deletion.
func ExampleTree() {
	tr := bst.NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 4} {
		tr.Insert(v)
	}
	fmt.Println(tr.InOrderSlice())

	_ = tr.Delete(3)
	fmt.Println(tr.InOrderSlice())
	// Output:
	// [1 3 4 5 8]
	// [1 4 5 8]
}

// ExampleTree_LevelOrder shows the breadth-first traversal, which runs
// on an explicit FIFO queue rather than recursion.
func ExampleTree_LevelOrder() {
	tr := bst.NewOrdered[int]()
	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
		tr.Insert(v)
	}
	it := tr.LevelOrder()
	for it.Next() {
		fmt.Print(it.Value(), " ")
	}
	fmt.Println()
	// Output:
	// 4 2 6 1 3 5 7
}
