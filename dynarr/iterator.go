package dynarr

// Iterator is a forward-only, restartable traversal over an Array.
//
// An Iterator snapshots the array's modification counter when created
// (and on Reset). If the array is structurally mutated mid-traversal,
// Next returns false and Err reports ErrInvalidatedIteration - the
// iterator never silently skips or duplicates elements.
//
// Usage:
//
//	it := a.Iterator()
//	for it.Next() {
//		v := it.Value()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type Iterator[T any] struct {
	arr  *Array[T]
	mods uint64 // modification counter snapshot
	idx  int    // index of the current element; -1 before first Next
	err  error
}

// Iterator returns a new iterator positioned before the first element.
//
// Complexity: O(1).
func (a *Array[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{arr: a, mods: a.mods, idx: -1}
}

// Next advances to the next element. It returns false when the
// traversal is exhausted or invalidated; check Err to distinguish.
//
// Complexity: O(1).
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.mods != it.arr.mods {
		it.err = ErrInvalidatedIteration
		return false
	}
	if it.idx+1 >= it.arr.length {
		return false
	}
	it.idx++

	return true
}

// Value returns the element at the current position.
// Valid only after a successful Next.
//
// Complexity: O(1).
func (it *Iterator[T]) Value() T {
	return it.arr.elems[it.idx]
}

// Err returns ErrInvalidatedIteration if the traversal observed a
// structural mutation, nil otherwise.
func (it *Iterator[T]) Err() error { return it.err }

// Reset rewinds the iterator to before the first element and
// re-snapshots the modification counter, making it valid again.
//
// Complexity: O(1).
func (it *Iterator[T]) Reset() {
	it.mods = it.arr.mods
	it.idx = -1
	it.err = nil
}
