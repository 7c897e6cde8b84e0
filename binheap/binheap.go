package binheap

import (
	"cmp"
	"errors"

	"github.com/vaskorr/collections/dynarr"
)

// Sentinel errors for heap operations.
var (
	// ErrUnorderableValue indicates a nil comparator at construction.
	ErrUnorderableValue = errors.New("binheap: value type lacks total-order capability")

	// ErrBadDirection indicates a direction other than Min or Max.
	ErrBadDirection = errors.New("binheap: unknown heap direction")

	// ErrEmptyHeap indicates Peek or Pop on an empty heap.
	ErrEmptyHeap = errors.New("binheap: empty heap")

	// ErrInvalidatedIteration indicates a structural mutation was observed
	// by an in-progress iterator.
	ErrInvalidatedIteration = errors.New("binheap: iteration invalidated by mutation")
)

// Direction selects which extreme the heap keeps at its root.
type Direction int

const (
	// Min keeps the smallest element (per the comparator) at the root.
	Min Direction = iota

	// Max keeps the largest element at the root.
	Max
)

// Heap is an array-backed binary heap of T.
// The zero value is not usable; construct with New, NewMin, NewMax or
// FromSlice.
type Heap[T any] struct {
	cmp  func(a, b T) int
	dir  Direction
	arr  *dynarr.Array[T] // complete-binary-tree backing store
	mods uint64
}

// New creates an empty heap ordered by cmp in the given direction.
// cmp must return <0, 0, >0 for a<b, a==b, a>b; a nil comparator is
// rejected with ErrUnorderableValue at construction.
//
// Complexity: O(1).
func New[T any](compare func(a, b T) int, dir Direction) (*Heap[T], error) {
	if compare == nil {
		return nil, ErrUnorderableValue
	}
	if dir != Min && dir != Max {
		return nil, ErrBadDirection
	}
	arr, _ := dynarr.New[T](0)

	return &Heap[T]{cmp: compare, dir: dir, arr: arr}, nil
}

// NewMin creates an empty min-heap over a naturally ordered type.
//
// Complexity: O(1).
func NewMin[T cmp.Ordered]() *Heap[T] {
	h, _ := New[T](cmp.Compare[T], Min)
	return h
}

// NewMax creates an empty max-heap over a naturally ordered type.
// Max direction is first-class configuration - no key negation.
//
// Complexity: O(1).
func NewMax[T cmp.Ordered]() *Heap[T] {
	h, _ := New[T](cmp.Compare[T], Max)
	return h
}

// FromSlice builds a heap over a copy of vs using bottom-up heapify.
//
// Complexity: O(N) - cheaper than N pushes.
func FromSlice[T any](compare func(a, b T) int, dir Direction, vs []T) (*Heap[T], error) {
	h, err := New[T](compare, dir)
	if err != nil {
		return nil, err
	}
	h.arr = dynarr.FromSlice(vs)
	for i := h.arr.Len()/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h, nil
}

// Len returns the number of stored elements. Complexity: O(1).
func (h *Heap[T]) Len() int { return h.arr.Len() }

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (h *Heap[T]) IsEmpty() bool { return h.arr.IsEmpty() }

// Direction returns the configured heap direction. Complexity: O(1).
func (h *Heap[T]) Direction() Direction { return h.dir }

// Peek returns the root element without removing it.
// Returns ErrEmptyHeap when the heap is empty.
//
// Complexity: O(1).
func (h *Heap[T]) Peek() (T, error) {
	var zero T
	if h.arr.IsEmpty() {
		return zero, ErrEmptyHeap
	}
	v, _ := h.arr.Get(0)

	return v, nil
}

// Push inserts v: append to the backing array, then sift up - swap with
// the parent while the heap invariant is violated.
//
// Complexity: O(log N) amortized (the append itself is amortized O(1)).
func (h *Heap[T]) Push(v T) {
	h.arr.Append(v)
	h.mods++
	h.siftUp(h.arr.Len() - 1)
}

// Pop removes and returns the root element: save the root, move the
// last element into the root slot, shrink by one, then sift down -
// swap with the preferred child while the invariant is violated.
// Returns ErrEmptyHeap when the heap is empty.
//
// Complexity: O(log N).
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	n := h.arr.Len()
	if n == 0 {
		return zero, ErrEmptyHeap
	}
	root, _ := h.arr.Get(0)
	last, _ := h.arr.RemoveAt(n - 1)
	h.mods++
	if n > 1 {
		_ = h.arr.Set(0, last)
		h.siftDown(0)
	}

	return root, nil
}

// Values returns a copy of the backing array - heap order, which is not
// sorted order.
//
// Complexity: O(N).
func (h *Heap[T]) Values() []T { return h.arr.Values() }

// before reports whether the element at i must order before the element
// at j for the configured direction.
func (h *Heap[T]) before(i, j int) bool {
	a, _ := h.arr.Get(i)
	b, _ := h.arr.Get(j)
	c := h.cmp(a, b)
	if h.dir == Min {
		return c < 0
	}

	return c > 0
}

// swap exchanges the elements at i and j.
func (h *Heap[T]) swap(i, j int) {
	a, _ := h.arr.Get(i)
	b, _ := h.arr.Get(j)
	_ = h.arr.Set(i, b)
	_ = h.arr.Set(j, a)
}

// siftUp restores the invariant on the path from i to the root.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.before(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// siftDown restores the invariant below position i. When both children
// compare equal, the left child is chosen deterministically: the right
// child is preferred only when it orders strictly before the left.
func (h *Heap[T]) siftDown(i int) {
	n := h.arr.Len()
	for {
		left := 2*i + 1
		if left >= n {
			return // leaf
		}
		child := left
		if right := left + 1; right < n && h.before(right, left) {
			child = right
		}
		if !h.before(child, i) {
			return // invariant satisfied
		}
		h.swap(i, child)
		i = child
	}
}

// Iterator is a forward-only, restartable traversal over the heap's
// elements in backing-array order (an unspecified order with respect to
// priority). Fails fast with ErrInvalidatedIteration on Push/Pop.
type Iterator[T any] struct {
	heap *Heap[T]
	mods uint64
	idx  int
	err  error
}

// Iterator returns a new iterator positioned before the first element.
//
// Complexity: O(1).
func (h *Heap[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{heap: h, mods: h.mods, idx: -1}
}

// Next advances to the next element; false on exhaustion or invalidation.
//
// Complexity: O(1).
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.mods != it.heap.mods {
		it.err = ErrInvalidatedIteration
		return false
	}
	if it.idx+1 >= it.heap.arr.Len() {
		return false
	}
	it.idx++

	return true
}

// Value returns the element at the current position.
// Valid only after a successful Next.
func (it *Iterator[T]) Value() T {
	v, _ := it.heap.arr.Get(it.idx)
	return v
}

// Err returns ErrInvalidatedIteration if the traversal observed a
// structural mutation, nil otherwise.
func (it *Iterator[T]) Err() error { return it.err }

// Reset rewinds the iterator and re-snapshots the modification counter.
func (it *Iterator[T]) Reset() {
	it.mods = it.heap.mods
	it.idx = -1
	it.err = nil
}
