package binheap_test

import (
	"cmp"
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaskorr/collections/binheap"
)

// TestNew_CapabilityEnforcement rejects a nil comparator and a bogus
// direction at construction.
func TestNew_CapabilityEnforcement(t *testing.T) {
	if _, err := binheap.New[int](nil, binheap.Min); !errors.Is(err, binheap.ErrUnorderableValue) {
		t.Errorf("nil cmp: want ErrUnorderableValue, got %v", err)
	}
	if _, err := binheap.New[int](cmp.Compare[int], binheap.Direction(7)); !errors.Is(err, binheap.ErrBadDirection) {
		t.Errorf("bad direction: want ErrBadDirection, got %v", err)
	}
}

// TestMinHeap_PushPopOrder pushes 5,3,8,1 and pops
// 1,3,5,8.
func TestMinHeap_PushPopOrder(t *testing.T) {
	h := binheap.NewMin[int]()
	for _, v := range []int{5, 3, 8, 1} {
		h.Push(v)
	}
	var got []int
	for !h.IsEmpty() {
		v, err := h.Pop()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int{1, 3, 5, 8}, got)

	_, err := h.Pop()
	require.ErrorIs(t, err, binheap.ErrEmptyHeap)
	_, err = h.Peek()
	require.ErrorIs(t, err, binheap.ErrEmptyHeap)
}

// TestMaxHeap_FirstClassDirection verifies Max is native configuration,
// not a negation trick: the same values pop in descending order.
func TestMaxHeap_FirstClassDirection(t *testing.T) {
	h := binheap.NewMax[int]()
	require.Equal(t, binheap.Max, h.Direction())
	for _, v := range []int{5, 3, 8, 1} {
		h.Push(v)
	}
	var got []int
	for !h.IsEmpty() {
		v, _ := h.Pop()
		got = append(got, v)
	}
	require.Equal(t, []int{8, 5, 3, 1}, got)
}

// TestPeek_AlwaysCurrentExtreme checks that after any
// prefix of operations, Peek returns the true minimum of the live
// elements. A sorted mirror of the contents serves as the oracle.
func TestPeek_AlwaysCurrentExtreme(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	h := binheap.NewMin[int]()
	var mirror []int

	for op := 0; op < 2000; op++ {
		if len(mirror) == 0 || r.Intn(3) != 0 {
			v := r.Intn(1000)
			h.Push(v)
			mirror = append(mirror, v)
		} else {
			v, err := h.Pop()
			require.NoError(t, err)
			sort.Ints(mirror)
			require.Equal(t, mirror[0], v)
			mirror = mirror[1:]
		}
		if len(mirror) > 0 {
			top, err := h.Peek()
			require.NoError(t, err)
			sort.Ints(mirror)
			require.Equal(t, mirror[0], top)
		}
	}
}

// TestFromSlice_Heapify builds in O(N) and verifies pop order.
func TestFromSlice_Heapify(t *testing.T) {
	h, err := binheap.FromSlice(cmp.Compare[int], binheap.Min, []int{9, 4, 7, 1, 6, 2})
	require.NoError(t, err)
	require.Equal(t, 6, h.Len())

	var got []int
	for !h.IsEmpty() {
		v, _ := h.Pop()
		got = append(got, v)
	}
	require.Equal(t, []int{1, 2, 4, 6, 7, 9}, got)
}

// TestCustomComparator orders structs by a field - no Ordered constraint.
func TestCustomComparator(t *testing.T) {
	type task struct {
		name     string
		priority int
	}
	h, err := binheap.New[task](func(a, b task) int { return a.priority - b.priority }, binheap.Min)
	require.NoError(t, err)

	h.Push(task{"low", 9})
	h.Push(task{"high", 1})
	h.Push(task{"mid", 5})

	top, err := h.Peek()
	require.NoError(t, err)
	require.Equal(t, "high", top.name)
}

// TestIterator_FailFast verifies invalidation on Push and Pop.
func TestIterator_FailFast(t *testing.T) {
	h := binheap.NewMin[int]()
	h.Push(2)
	h.Push(1)

	it := h.Iterator()
	require.True(t, it.Next())
	h.Push(3)
	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), binheap.ErrInvalidatedIteration)

	it.Reset()
	n := 0
	for it.Next() {
		n++
	}
	require.NoError(t, it.Err())
	require.Equal(t, 3, n)
}

// TestEqualPriorities_LeftChildTieBreak pops equal-priority elements and
// verifies stability of the invariant throughout (the left child is the
// deterministic choice when children tie).
func TestEqualPriorities_LeftChildTieBreak(t *testing.T) {
	h := binheap.NewMin[int]()
	for i := 0; i < 20; i++ {
		h.Push(7) // all equal
	}
	h.Push(3)
	v, err := h.Pop()
	require.NoError(t, err)
	require.Equal(t, 3, v)
	for i := 0; i < 20; i++ {
		v, err = h.Pop()
		require.NoError(t, err)
		require.Equal(t, 7, v)
	}
	require.True(t, h.IsEmpty())
}
