package bst_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaskorr/collections/bst"
)

func intTree(t *testing.T, vs ...int) *bst.Tree[int] {
	t.Helper()
	tr := bst.NewOrdered[int]()
	for _, v := range vs {
		tr.Insert(v)
	}

	return tr
}

// TestNew_CapabilityEnforcement rejects a nil comparator at construction.
func TestNew_CapabilityEnforcement(t *testing.T) {
	if _, err := bst.New[int](nil); !errors.Is(err, bst.ErrUnorderableValue) {
		t.Errorf("nil cmp: want ErrUnorderableValue, got %v", err)
	}
}

// TestInsertSearch covers basic membership.
func TestInsertSearch(t *testing.T) {
	tr := intTree(t, 5, 3, 8, 1, 4)
	for _, v := range []int{1, 3, 4, 5, 8} {
		require.True(t, tr.Search(v), "Search(%d)", v)
	}
	require.False(t, tr.Search(7))
	require.Equal(t, 5, tr.Len())
}

// TestInOrder_SortedInvariant checks that inserting 5,3,8,1,4 yields
// [1 3 4 5 8]; delete(3) yields [1 4 5 8].
func TestInOrder_SortedInvariant(t *testing.T) {
	tr := intTree(t, 5, 3, 8, 1, 4)
	require.Equal(t, []int{1, 3, 4, 5, 8}, tr.InOrderSlice())

	require.NoError(t, tr.Delete(3))
	require.Equal(t, []int{1, 4, 5, 8}, tr.InOrderSlice())

	require.ErrorIs(t, tr.Delete(3), bst.ErrValueNotFound)
}

// TestInOrder_AlwaysNonDecreasing checks the sorted invariant over random
// insertion sequences, duplicates included.
func TestInOrder_AlwaysNonDecreasing(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tr := bst.NewOrdered[int]()
	var mirror []int
	for i := 0; i < 500; i++ {
		v := r.Intn(100) // collisions guaranteed: duplicate policy exercised
		tr.Insert(v)
		mirror = append(mirror, v)
	}
	sort.Ints(mirror)
	require.Equal(t, mirror, tr.InOrderSlice())
}

// TestDelete_ThreeCases exercises leaf, one-child and two-children
// deletions explicitly.
func TestDelete_ThreeCases(t *testing.T) {
	// shape:        5
	//             /   \
	//            3     8
	//           /     / \
	//          1     7   9
	//           \
	//            2
	tr := intTree(t, 5, 3, 8, 1, 7, 9, 2)

	// (a) leaf
	require.NoError(t, tr.Delete(2))
	require.Equal(t, []int{1, 3, 5, 7, 8, 9}, tr.InOrderSlice())

	// (b) one child: 3 has only left child 1
	require.NoError(t, tr.Delete(3))
	require.Equal(t, []int{1, 5, 7, 8, 9}, tr.InOrderSlice())

	// (c) two children: 8 has 7 and 9; successor 9 replaces it
	require.NoError(t, tr.Delete(8))
	require.Equal(t, []int{1, 5, 7, 9}, tr.InOrderSlice())

	// root deletion with two children
	require.NoError(t, tr.Delete(5))
	require.Equal(t, []int{1, 7, 9}, tr.InOrderSlice())
	require.True(t, tr.Search(7))
}

// TestDelete_TwoChildrenDeepSuccessor forces the successor to sit
// several levels down the right subtree's left spine.
func TestDelete_TwoChildrenDeepSuccessor(t *testing.T) {
	tr := intTree(t, 10, 5, 20, 15, 25, 12, 17, 11)
	require.NoError(t, tr.Delete(10)) // successor is 11, two levels down
	require.Equal(t, []int{5, 11, 12, 15, 17, 20, 25}, tr.InOrderSlice())
}

// TestMinMax covers the boundary queries and their empty-tree errors.
func TestMinMax(t *testing.T) {
	tr := bst.NewOrdered[int]()
	_, err := tr.Min()
	require.ErrorIs(t, err, bst.ErrEmptyTree)
	_, err = tr.Max()
	require.ErrorIs(t, err, bst.ErrEmptyTree)

	for _, v := range []int{5, 3, 8} {
		tr.Insert(v)
	}
	mn, _ := tr.Min()
	mx, _ := tr.Max()
	require.Equal(t, 3, mn)
	require.Equal(t, 8, mx)
}

// TestDegenerateChain_DocumentedCharacteristic inserts sorted input and
// observes the O(N) height - accepted behavior, not silently fixed.
func TestDegenerateChain_DocumentedCharacteristic(t *testing.T) {
	tr := bst.NewOrdered[int]()
	const n = 200
	for i := 0; i < n; i++ {
		tr.Insert(i) // sorted insertion order: right chain
	}
	require.Equal(t, n-1, tr.Height())
	// traversal must survive the deep chain (explicit stack, no recursion)
	slice := tr.InOrderSlice()
	require.Equal(t, n, len(slice))
	require.True(t, sort.IntsAreSorted(slice))
}

// TestTraversalOrders pins all four orders on a fixed shape.
func TestTraversalOrders(t *testing.T) {
	// shape:      4
	//           /   \
	//          2     6
	//         / \   / \
	//        1   3 5   7
	tr := intTree(t, 4, 2, 6, 1, 3, 5, 7)

	collect := func(it *bst.Iterator[int]) []int {
		var out []int
		for it.Next() {
			out = append(out, it.Value())
		}
		require.NoError(t, it.Err())
		return out
	}

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(tr.InOrder()))
	require.Equal(t, []int{4, 2, 1, 3, 6, 5, 7}, collect(tr.PreOrder()))
	require.Equal(t, []int{1, 3, 2, 5, 7, 6, 4}, collect(tr.PostOrder()))
	require.Equal(t, []int{4, 2, 6, 1, 3, 5, 7}, collect(tr.LevelOrder()))

	_, err := tr.Traverse(bst.Order(99))
	require.ErrorIs(t, err, bst.ErrBadOrder)
}

// TestIterator_FailFast verifies invalidation and Reset recovery.
func TestIterator_FailFast(t *testing.T) {
	tr := intTree(t, 2, 1, 3)
	it := tr.InOrder()
	require.True(t, it.Next())

	tr.Insert(4) // structural mutation mid-traversal

	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), bst.ErrInvalidatedIteration)

	it.Reset()
	var got []int
	for it.Next() {
		got = append(got, it.Value())
	}
	require.NoError(t, it.Err())
	require.Equal(t, []int{1, 2, 3, 4}, got)
}

// TestCustomComparator orders structs without a natural order.
func TestCustomComparator(t *testing.T) {
	type user struct {
		id   int
		name string
	}
	tr, err := bst.New[user](func(a, b user) int { return a.id - b.id })
	require.NoError(t, err)
	tr.Insert(user{3, "c"})
	tr.Insert(user{1, "a"})
	tr.Insert(user{2, "b"})

	got := tr.InOrderSlice()
	require.Equal(t, []int{1, 2, 3}, []int{got[0].id, got[1].id, got[2].id})
	require.True(t, tr.Search(user{id: 2}))
}
