package dynarr

import "errors"

// Sentinel errors for dynamic-array operations.
var (
	// ErrBadCapacity indicates a negative initial-capacity hint.
	ErrBadCapacity = errors.New("dynarr: negative capacity hint")

	// ErrIndexOutOfBounds indicates an index outside the valid range.
	ErrIndexOutOfBounds = errors.New("dynarr: index out of bounds")

	// ErrInvalidatedIteration indicates a structural mutation was observed
	// by an in-progress iterator.
	ErrInvalidatedIteration = errors.New("dynarr: iteration invalidated by mutation")
)

// DefaultCapacity is the backing-store capacity used when the hint is zero.
const DefaultCapacity = 8

// Array is a contiguous, resizable indexed sequence of T.
//
// Invariant: 0 ≤ Len ≤ Cap; elements at indices [0, Len) are valid.
// The zero value is not usable; construct with New.
type Array[T any] struct {
	elems  []T    // backing store; len(elems) == capacity, valid prefix is [0, length)
	length int    // number of valid elements
	copies uint64 // total element copies performed by growth resizes
	mods   uint64 // structural modification counter (iterator invalidation)
}

// New creates an empty Array with the given capacity hint.
// A hint of 0 selects DefaultCapacity; a negative hint is rejected.
//
// Complexity: O(capacity) allocation.
func New[T any](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, ErrBadCapacity
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	return &Array[T]{elems: make([]T, capacity)}, nil
}

// FromSlice creates an Array holding a copy of vs.
// The result never aliases vs.
//
// Complexity: O(len(vs)).
func FromSlice[T any](vs []T) *Array[T] {
	c := len(vs)
	if c == 0 {
		c = DefaultCapacity
	}
	a := &Array[T]{elems: make([]T, c), length: len(vs)}
	copy(a.elems, vs)

	return a
}

// Len returns the number of stored elements. Complexity: O(1).
func (a *Array[T]) Len() int { return a.length }

// Cap returns the current backing-store capacity. Complexity: O(1).
func (a *Array[T]) Cap() int { return len(a.elems) }

// IsEmpty reports whether the array holds no elements. Complexity: O(1).
func (a *Array[T]) IsEmpty() bool { return a.length == 0 }

// Copies returns the total number of element copies performed by growth
// resizes since construction. Shift work done by InsertAt/RemoveAt is not
// counted; the counter exists to verify the amortized-append bound.
//
// Complexity: O(1).
func (a *Array[T]) Copies() uint64 { return a.copies }

// Get returns the element at index i.
// Returns ErrIndexOutOfBounds if i < 0 or i >= Len().
//
// Complexity: O(1).
func (a *Array[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.length {
		return zero, ErrIndexOutOfBounds
	}

	return a.elems[i], nil
}

// Set overwrites the element at index i with v.
// Returns ErrIndexOutOfBounds if i < 0 or i >= Len().
// Overwriting is not a structural mutation: iterators stay valid.
//
// Complexity: O(1).
func (a *Array[T]) Set(i int, v T) error {
	if i < 0 || i >= a.length {
		return ErrIndexOutOfBounds
	}
	a.elems[i] = v

	return nil
}

// Append adds v after the last element, growing the backing store by
// doubling (minimum capacity 1) when full.
//
// Complexity: amortized O(1); a growing append costs O(Len) copies.
func (a *Array[T]) Append(v T) {
	if a.length == len(a.elems) {
		a.grow()
	}
	a.elems[a.length] = v
	a.length++
	a.mods++
}

// InsertAt inserts v at index i, shifting the suffix right by one slot.
// i may equal Len(), in which case InsertAt behaves like Append.
// Returns ErrIndexOutOfBounds if i < 0 or i > Len().
//
// Complexity: O(Len−i).
func (a *Array[T]) InsertAt(i int, v T) error {
	if i < 0 || i > a.length {
		return ErrIndexOutOfBounds
	}
	if a.length == len(a.elems) {
		a.grow()
	}
	copy(a.elems[i+1:a.length+1], a.elems[i:a.length])
	a.elems[i] = v
	a.length++
	a.mods++

	return nil
}

// RemoveAt removes and returns the element at index i, shifting the
// suffix left by one slot.
// Returns ErrIndexOutOfBounds if i < 0 or i >= Len().
//
// Complexity: O(Len−i).
func (a *Array[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= a.length {
		return zero, ErrIndexOutOfBounds
	}
	v := a.elems[i]
	copy(a.elems[i:a.length-1], a.elems[i+1:a.length])
	a.length--
	a.elems[a.length] = zero // release the vacated slot for GC
	a.mods++

	return v, nil
}

// Slice returns a new Array holding a copy of the elements in [i, j).
// The result never aliases the source backing store.
// Returns ErrIndexOutOfBounds unless 0 ≤ i ≤ j ≤ Len().
//
// Complexity: O(j−i).
func (a *Array[T]) Slice(i, j int) (*Array[T], error) {
	if i < 0 || j < i || j > a.length {
		return nil, ErrIndexOutOfBounds
	}
	n := j - i
	c := n
	if c == 0 {
		c = 1
	}
	out := &Array[T]{elems: make([]T, c), length: n}
	copy(out.elems, a.elems[i:j])

	return out, nil
}

// Values returns a copy of the valid elements as a plain slice.
// The result never aliases the backing store.
//
// Complexity: O(Len).
func (a *Array[T]) Values() []T {
	out := make([]T, a.length)
	copy(out, a.elems[:a.length])

	return out
}

// Clear removes all elements, keeping the current capacity.
//
// Complexity: O(Len) (zeroing released slots).
func (a *Array[T]) Clear() {
	var zero T
	for i := 0; i < a.length; i++ {
		a.elems[i] = zero
	}
	a.length = 0
	a.mods++
}

// grow doubles the backing store (minimum capacity 1) and copies the
// valid prefix, charging the copy counter once per moved element.
func (a *Array[T]) grow() {
	c := len(a.elems) * 2
	if c == 0 {
		c = 1
	}
	next := make([]T, c)
	copy(next, a.elems[:a.length])
	a.copies += uint64(a.length)
	a.elems = next
}
