package list

// DNode is a doubly-linked chain element. The forward chain is the sole
// ownership path; the prev reference exists for navigation only.
type DNode[T any] struct {
	value      T
	next, prev *DNode[T]
	owner      *DList[T] // nil once detached
}

// Value returns the node's stored value.
func (n *DNode[T]) Value() T { return n.value }

// SetValue overwrites the node's stored value. Not a structural
// mutation: iterators stay valid.
func (n *DNode[T]) SetValue(v T) { n.value = v }

// Next returns the following node, or nil at the end of the chain.
func (n *DNode[T]) Next() *DNode[T] {
	if n.owner != nil && n.next == &n.owner.root {
		return nil
	}
	return n.next
}

// Prev returns the preceding node, or nil at the start of the chain.
func (n *DNode[T]) Prev() *DNode[T] {
	if n.owner != nil && n.prev == &n.owner.root {
		return nil
	}
	return n.prev
}

// DList is a doubly-linked list built around a circular sentinel:
// root.next is the first element, root.prev the last. The zero value is
// not usable; construct with NewD.
type DList[T any] struct {
	root   DNode[T] // sentinel; never carries a value
	length int
	mods   uint64
}

// NewD creates an empty doubly-linked list.
//
// Complexity: O(1).
func NewD[T any]() *DList[T] {
	l := &DList[T]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Len returns the number of stored elements. Complexity: O(1).
func (l *DList[T]) Len() int { return l.length }

// IsEmpty reports whether the list holds no elements. Complexity: O(1).
func (l *DList[T]) IsEmpty() bool { return l.length == 0 }

// Head returns the first node, or nil when empty. Complexity: O(1).
func (l *DList[T]) Head() *DNode[T] {
	if l.length == 0 {
		return nil
	}
	return l.root.next
}

// Tail returns the last node, or nil when empty. Complexity: O(1).
func (l *DList[T]) Tail() *DNode[T] {
	if l.length == 0 {
		return nil
	}
	return l.root.prev
}

// PushFront inserts v as the new first element and returns its node.
//
// Complexity: O(1).
func (l *DList[T]) PushFront(v T) *DNode[T] {
	return l.linkAfter(&l.root, v)
}

// PushBack inserts v as the new last element and returns its node.
//
// Complexity: O(1).
func (l *DList[T]) PushBack(v T) *DNode[T] {
	return l.linkAfter(l.root.prev, v)
}

// PopFront removes and returns the first element.
// Returns ErrEmptyList when the list is empty.
//
// Complexity: O(1).
func (l *DList[T]) PopFront() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyList
	}
	n := l.root.next
	l.unlink(n)

	return n.value, nil
}

// PopBack removes and returns the last element.
// Returns ErrEmptyList when the list is empty.
//
// Complexity: O(1) - this is the reason to prefer DList over List for
// deque-style workloads.
func (l *DList[T]) PopBack() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyList
	}
	n := l.root.prev
	l.unlink(n)

	return n.value, nil
}

// Front returns the first element without removing it.
// Returns ErrEmptyList when the list is empty. Complexity: O(1).
func (l *DList[T]) Front() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyList
	}
	return l.root.next.value, nil
}

// Back returns the last element without removing it.
// Returns ErrEmptyList when the list is empty. Complexity: O(1).
func (l *DList[T]) Back() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyList
	}
	return l.root.prev.value, nil
}

// InsertAfter inserts v immediately after node n and returns the new node.
//
// Complexity: O(1).
func (l *DList[T]) InsertAfter(n *DNode[T], v T) (*DNode[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if n.owner != l {
		return nil, ErrForeignNode
	}
	return l.linkAfter(n, v), nil
}

// InsertBefore inserts v immediately before node n and returns the new node.
//
// Complexity: O(1).
func (l *DList[T]) InsertBefore(n *DNode[T], v T) (*DNode[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if n.owner != l {
		return nil, ErrForeignNode
	}
	return l.linkAfter(n.prev, v), nil
}

// Remove detaches node n from the list.
//
// Complexity: O(1) - the prev reference makes the predecessor directly
// available, unlike the singly-linked variant.
func (l *DList[T]) Remove(n *DNode[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.owner != l {
		return ErrForeignNode
	}
	l.unlink(n)

	return nil
}

// FindNode returns the first node whose value satisfies pred.
// Returns ErrNodeNotFound when no node matches.
//
// Complexity: O(N).
func (l *DList[T]) FindNode(pred func(T) bool) (*DNode[T], error) {
	for n := l.root.next; n != &l.root; n = n.next {
		if pred(n.value) {
			return n, nil
		}
	}
	return nil, ErrNodeNotFound
}

// Get returns the element at position i by walking the chain.
// Returns ErrIndexOutOfBounds if i < 0 or i >= Len().
//
// Complexity: O(N).
func (l *DList[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.length {
		return zero, ErrIndexOutOfBounds
	}
	n := l.root.next
	for ; i > 0; i-- {
		n = n.next
	}
	return n.value, nil
}

// Values returns the elements front-to-back as a fresh slice.
//
// Complexity: O(N).
func (l *DList[T]) Values() []T {
	out := make([]T, 0, l.length)
	for n := l.root.next; n != &l.root; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// linkAfter splices a new node carrying v after prev.
func (l *DList[T]) linkAfter(prev *DNode[T], v T) *DNode[T] {
	n := &DNode[T]{value: v, next: prev.next, prev: prev, owner: l}
	prev.next.prev = n
	prev.next = n
	l.length++
	l.mods++

	return n
}

// unlink detaches n from the circular chain.
func (l *DList[T]) unlink(n *DNode[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	n.owner = nil
	l.length--
	l.mods++
}

// DListIterator is a forward-only, restartable traversal over a DList,
// failing fast with ErrInvalidatedIteration on structural mutation.
type DListIterator[T any] struct {
	list *DList[T]
	mods uint64
	cur  *DNode[T] // nil before first Next
	err  error
}

// Iterator returns a new iterator positioned before the first element.
//
// Complexity: O(1).
func (l *DList[T]) Iterator() *DListIterator[T] {
	return &DListIterator[T]{list: l, mods: l.mods}
}

// Next advances to the next element; false on exhaustion or invalidation.
//
// Complexity: O(1).
func (it *DListIterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.mods != it.list.mods {
		it.err = ErrInvalidatedIteration
		return false
	}
	if it.cur == &it.list.root { // already exhausted
		return false
	}
	if it.cur == nil {
		it.cur = it.list.root.next
	} else {
		it.cur = it.cur.next
	}

	return it.cur != &it.list.root
}

// Value returns the element at the current position.
// Valid only after a successful Next.
func (it *DListIterator[T]) Value() T { return it.cur.value }

// Err returns ErrInvalidatedIteration if the traversal observed a
// structural mutation, nil otherwise.
func (it *DListIterator[T]) Err() error { return it.err }

// Reset rewinds the iterator and re-snapshots the modification counter.
func (it *DListIterator[T]) Reset() {
	it.mods = it.list.mods
	it.cur = nil
	it.err = nil
}
