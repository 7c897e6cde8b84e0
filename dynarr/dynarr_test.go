package dynarr_test

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vaskorr/collections/dynarr"
)

// TestNew_CapacityHints verifies hint handling at construction.
func TestNew_CapacityHints(t *testing.T) {
	if _, err := dynarr.New[int](-1); !errors.Is(err, dynarr.ErrBadCapacity) {
		t.Errorf("negative hint: want ErrBadCapacity, got %v", err)
	}
	a, err := dynarr.New[int](0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Cap() != dynarr.DefaultCapacity {
		t.Errorf("Cap() = %d; want %d", a.Cap(), dynarr.DefaultCapacity)
	}
	if !a.IsEmpty() || a.Len() != 0 {
		t.Errorf("new array not empty: Len=%d", a.Len())
	}
}

// TestGetSet covers O(1) access and bounds enforcement.
func TestGetSet(t *testing.T) {
	a, _ := dynarr.New[string](4)
	a.Append("a")
	a.Append("b")

	v, err := a.Get(1)
	if err != nil || v != "b" {
		t.Errorf("Get(1) = %q, %v; want \"b\", nil", v, err)
	}
	if err = a.Set(0, "z"); err != nil {
		t.Fatalf("Set(0): %v", err)
	}
	v, _ = a.Get(0)
	if v != "z" {
		t.Errorf("Get(0) after Set = %q; want \"z\"", v)
	}

	// out-of-bounds in both directions, for both Get and Set
	for _, i := range []int{-1, 2, 100} {
		if _, err = a.Get(i); !errors.Is(err, dynarr.ErrIndexOutOfBounds) {
			t.Errorf("Get(%d): want ErrIndexOutOfBounds, got %v", i, err)
		}
		if err = a.Set(i, "x"); !errors.Is(err, dynarr.ErrIndexOutOfBounds) {
			t.Errorf("Set(%d): want ErrIndexOutOfBounds, got %v", i, err)
		}
	}
}

// TestInsertRemove covers suffix shifting and boundary indices.
func TestInsertRemove(t *testing.T) {
	a, _ := dynarr.New[int](2)
	require.NoError(t, a.InsertAt(0, 10)) // [10]
	require.NoError(t, a.InsertAt(1, 30)) // [10 30], i == Len appends
	require.NoError(t, a.InsertAt(1, 20)) // [10 20 30]
	require.Equal(t, []int{10, 20, 30}, a.Values())

	require.ErrorIs(t, a.InsertAt(4, 0), dynarr.ErrIndexOutOfBounds)
	require.ErrorIs(t, a.InsertAt(-1, 0), dynarr.ErrIndexOutOfBounds)

	v, err := a.RemoveAt(1)
	require.NoError(t, err)
	require.Equal(t, 20, v)
	require.Equal(t, []int{10, 30}, a.Values())

	_, err = a.RemoveAt(2)
	require.ErrorIs(t, err, dynarr.ErrIndexOutOfBounds)
}

// TestSlice_NeverAliases verifies the copy semantics of Slice.
func TestSlice_NeverAliases(t *testing.T) {
	a := dynarr.FromSlice([]int{1, 2, 3, 4, 5})
	s, err := a.Slice(1, 4)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 4}, s.Values())

	// mutating the source must not leak into the slice copy
	require.NoError(t, a.Set(2, 99))
	require.Equal(t, []int{2, 3, 4}, s.Values())

	// empty slice is legal; bad ranges are not
	empty, err := a.Slice(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
	for _, r := range [][2]int{{-1, 2}, {3, 2}, {0, 6}} {
		_, err = a.Slice(r[0], r[1])
		require.ErrorIs(t, err, dynarr.ErrIndexOutOfBounds, "Slice(%d,%d)", r[0], r[1])
	}
}

// TestAppend_AmortizedCopyBound checks the required amortization
// property by counting element copies, not wall-clock time: appending
// 1..N onto a capacity-1 array must perform fewer than 2N copies in
// total, and the final capacity must be the smallest power of two ≥ N.
func TestAppend_AmortizedCopyBound(t *testing.T) {
	const n = 1000
	a, err := dynarr.New[int](1)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= n; i++ {
		a.Append(i)
	}

	if a.Len() != n {
		t.Fatalf("Len() = %d; want %d", a.Len(), n)
	}
	// smallest power of two ≥ n
	wantCap := 1 << bits.Len(uint(n-1))
	if a.Cap() != wantCap {
		t.Errorf("Cap() = %d; want %d", a.Cap(), wantCap)
	}
	// doubling from 1 copies 1+2+4+...+wantCap/2 = wantCap−1 < 2n elements
	if a.Copies() >= 2*n {
		t.Errorf("Copies() = %d; want < %d", a.Copies(), 2*n)
	}
}

// TestIterator_HappyPath walks all elements in index order.
func TestIterator_HappyPath(t *testing.T) {
	a := dynarr.FromSlice([]int{7, 8, 9})
	var got []int
	it := a.Iterator()
	for it.Next() {
		got = append(got, it.Value())
	}
	require.NoError(t, it.Err())
	require.Equal(t, []int{7, 8, 9}, got)

	// restartable: Reset rewinds and revalidates
	it.Reset()
	count := 0
	for it.Next() {
		count++
	}
	require.Equal(t, 3, count)
}

// TestIterator_FailFast verifies invalidation on structural mutation.
func TestIterator_FailFast(t *testing.T) {
	a := dynarr.FromSlice([]int{1, 2, 3})
	it := a.Iterator()
	require.True(t, it.Next())

	a.Append(4) // structural mutation mid-traversal

	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), dynarr.ErrInvalidatedIteration)

	// Set is not structural: a fresh iterator survives it
	it2 := a.Iterator()
	require.True(t, it2.Next())
	require.NoError(t, a.Set(0, 42))
	require.True(t, it2.Next())
	require.NoError(t, it2.Err())

	// Reset revalidates after invalidation
	it.Reset()
	n := 0
	for it.Next() {
		n++
	}
	require.NoError(t, it.Err())
	require.Equal(t, 4, n)
}

// TestClear keeps capacity but drops all elements.
func TestClear(t *testing.T) {
	a := dynarr.FromSlice([]int{1, 2, 3})
	c := a.Cap()
	a.Clear()
	if !a.IsEmpty() || a.Cap() != c {
		t.Errorf("after Clear: Len=%d Cap=%d; want 0, %d", a.Len(), a.Cap(), c)
	}
}
