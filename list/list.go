package list

import "errors"

// Sentinel errors for list operations.
var (
	// ErrEmptyList indicates a pop or peek on an empty list.
	ErrEmptyList = errors.New("list: empty list")

	// ErrNilNode indicates a nil node reference.
	ErrNilNode = errors.New("list: nil node")

	// ErrForeignNode indicates a node owned by a different (or no) list.
	ErrForeignNode = errors.New("list: node not owned by this list")

	// ErrNoSuccessor indicates RemoveAfter was called on the last node.
	ErrNoSuccessor = errors.New("list: node has no successor")

	// ErrNodeNotFound indicates FindNode matched no node.
	ErrNodeNotFound = errors.New("list: no node matches predicate")

	// ErrIndexOutOfBounds indicates a positional index outside [0, Len).
	ErrIndexOutOfBounds = errors.New("list: index out of bounds")

	// ErrInvalidatedIteration indicates a structural mutation was observed
	// by an in-progress iterator.
	ErrInvalidatedIteration = errors.New("list: iteration invalidated by mutation")
)

// Node is a singly-linked chain element. A Node is owned by exactly one
// List; passing it to a different list fails with ErrForeignNode.
type Node[T any] struct {
	value T
	next  *Node[T]
	owner *List[T] // nil once detached
}

// Value returns the node's stored value.
func (n *Node[T]) Value() T { return n.value }

// SetValue overwrites the node's stored value. Not a structural
// mutation: iterators stay valid.
func (n *Node[T]) SetValue(v T) { n.value = v }

// Next returns the following node, or nil at the end of the chain.
func (n *Node[T]) Next() *Node[T] { return n.next }

// List is a singly-linked list with a sentinel head and a tail
// reference. The zero value is not usable; construct with New.
type List[T any] struct {
	sentinel Node[T]  // dummy head; sentinel.next is the first real node
	tail     *Node[T] // last real node, or &sentinel when empty
	length   int
	mods     uint64 // structural modification counter
}

// New creates an empty singly-linked list.
//
// Complexity: O(1).
func New[T any]() *List[T] {
	l := &List[T]{}
	l.tail = &l.sentinel
	return l
}

// Len returns the number of stored elements. Complexity: O(1).
func (l *List[T]) Len() int { return l.length }

// IsEmpty reports whether the list holds no elements. Complexity: O(1).
func (l *List[T]) IsEmpty() bool { return l.length == 0 }

// Head returns the first node, or nil when empty. Complexity: O(1).
func (l *List[T]) Head() *Node[T] { return l.sentinel.next }

// Tail returns the last node, or nil when empty. Complexity: O(1).
func (l *List[T]) Tail() *Node[T] {
	if l.length == 0 {
		return nil
	}
	return l.tail
}

// PushFront inserts v as the new first element and returns its node.
//
// Complexity: O(1).
func (l *List[T]) PushFront(v T) *Node[T] {
	return l.linkAfter(&l.sentinel, v)
}

// PushBack inserts v as the new last element and returns its node.
//
// Complexity: O(1) (tail reference maintained).
func (l *List[T]) PushBack(v T) *Node[T] {
	return l.linkAfter(l.tail, v)
}

// PopFront removes and returns the first element.
// Returns ErrEmptyList when the list is empty.
//
// Complexity: O(1).
func (l *List[T]) PopFront() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyList
	}
	n := l.sentinel.next
	l.unlinkAfter(&l.sentinel)

	return n.value, nil
}

// PopBack removes and returns the last element.
// Returns ErrEmptyList when the list is empty.
//
// Complexity: O(N) - the tail's predecessor must be found by scanning.
// Use DList for an O(1) PopBack.
func (l *List[T]) PopBack() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyList
	}
	prev := l.predecessor(l.tail)
	v := l.tail.value
	l.unlinkAfter(prev)

	return v, nil
}

// Front returns the first element without removing it.
// Returns ErrEmptyList when the list is empty. Complexity: O(1).
func (l *List[T]) Front() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyList
	}
	return l.sentinel.next.value, nil
}

// Back returns the last element without removing it.
// Returns ErrEmptyList when the list is empty. Complexity: O(1).
func (l *List[T]) Back() (T, error) {
	var zero T
	if l.length == 0 {
		return zero, ErrEmptyList
	}
	return l.tail.value, nil
}

// InsertAfter inserts v immediately after node n and returns the new node.
// Returns ErrNilNode or ErrForeignNode on a bad reference.
//
// Complexity: O(1) given the node reference; finding the reference is
// a separate O(N) operation (FindNode).
func (l *List[T]) InsertAfter(n *Node[T], v T) (*Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if n.owner != l {
		return nil, ErrForeignNode
	}
	return l.linkAfter(n, v), nil
}

// RemoveAfter removes and returns the element following node n.
// Returns ErrNoSuccessor when n is the last node.
//
// Complexity: O(1).
func (l *List[T]) RemoveAfter(n *Node[T]) (T, error) {
	var zero T
	if n == nil {
		return zero, ErrNilNode
	}
	if n.owner != l {
		return zero, ErrForeignNode
	}
	if n.next == nil {
		return zero, ErrNoSuccessor
	}
	v := n.next.value
	l.unlinkAfter(n)

	return v, nil
}

// Remove detaches node n from the list.
//
// Complexity: O(N) - a singly-linked list must scan for n's
// predecessor. Use DList.Remove for the O(1) variant.
func (l *List[T]) Remove(n *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if n.owner != l {
		return ErrForeignNode
	}
	l.unlinkAfter(l.predecessor(n))

	return nil
}

// FindNode returns the first node whose value satisfies pred.
// Returns ErrNodeNotFound when no node matches.
//
// Complexity: O(N).
func (l *List[T]) FindNode(pred func(T) bool) (*Node[T], error) {
	for n := l.sentinel.next; n != nil; n = n.next {
		if pred(n.value) {
			return n, nil
		}
	}
	return nil, ErrNodeNotFound
}

// Get returns the element at position i by walking the chain - there is
// no positional shortcut in a linked list.
// Returns ErrIndexOutOfBounds if i < 0 or i >= Len().
//
// Complexity: O(N).
func (l *List[T]) Get(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.length {
		return zero, ErrIndexOutOfBounds
	}
	n := l.sentinel.next
	for ; i > 0; i-- {
		n = n.next
	}
	return n.value, nil
}

// Values returns the elements front-to-back as a fresh slice.
//
// Complexity: O(N).
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for n := l.sentinel.next; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// linkAfter splices a new node carrying v after prev.
func (l *List[T]) linkAfter(prev *Node[T], v T) *Node[T] {
	n := &Node[T]{value: v, next: prev.next, owner: l}
	prev.next = n
	if l.tail == prev {
		l.tail = n
	}
	l.length++
	l.mods++

	return n
}

// unlinkAfter detaches prev's successor. The caller guarantees one exists.
func (l *List[T]) unlinkAfter(prev *Node[T]) {
	n := prev.next
	prev.next = n.next
	if l.tail == n {
		l.tail = prev
	}
	n.next = nil
	n.owner = nil
	l.length--
	l.mods++
}

// predecessor scans for the node whose next is n. The caller guarantees
// n is owned by this list, so the scan always terminates.
func (l *List[T]) predecessor(n *Node[T]) *Node[T] {
	prev := &l.sentinel
	for prev.next != n {
		prev = prev.next
	}
	return prev
}

// ListIterator is a forward-only, restartable traversal over a List.
// It fails fast with ErrInvalidatedIteration when the list is
// structurally mutated mid-traversal.
type ListIterator[T any] struct {
	list    *List[T]
	mods    uint64
	cur     *Node[T] // nil before first Next
	started bool
	err     error
}

// Iterator returns a new iterator positioned before the first element.
//
// Complexity: O(1).
func (l *List[T]) Iterator() *ListIterator[T] {
	return &ListIterator[T]{list: l, mods: l.mods}
}

// Next advances to the next element; false on exhaustion or invalidation.
//
// Complexity: O(1).
func (it *ListIterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.mods != it.list.mods {
		it.err = ErrInvalidatedIteration
		return false
	}
	if !it.started {
		it.started = true
		it.cur = it.list.sentinel.next
	} else if it.cur != nil {
		it.cur = it.cur.next
	}

	return it.cur != nil
}

// Value returns the element at the current position.
// Valid only after a successful Next.
func (it *ListIterator[T]) Value() T { return it.cur.value }

// Err returns ErrInvalidatedIteration if the traversal observed a
// structural mutation, nil otherwise.
func (it *ListIterator[T]) Err() error { return it.err }

// Reset rewinds the iterator and re-snapshots the modification counter.
func (it *ListIterator[T]) Reset() {
	it.mods = it.list.mods
	it.cur = nil
	it.started = false
	it.err = nil
}
