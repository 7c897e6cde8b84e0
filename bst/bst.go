package bst

import (
	"cmp"
	"errors"
)

// Sentinel errors for binary-search-tree operations.
var (
	// ErrUnorderableValue indicates a nil comparator at construction.
	ErrUnorderableValue = errors.New("bst: value type lacks total-order capability")

	// ErrEmptyTree indicates Min or Max on an empty tree.
	ErrEmptyTree = errors.New("bst: empty tree")

	// ErrValueNotFound indicates Delete of an absent value.
	ErrValueNotFound = errors.New("bst: value not found")

	// ErrBadOrder indicates an unknown traversal order.
	ErrBadOrder = errors.New("bst: unknown traversal order")

	// ErrInvalidatedIteration indicates a structural mutation was observed
	// by an in-progress iterator.
	ErrInvalidatedIteration = errors.New("bst: iteration invalidated by mutation")
)

// Sorted is the contract shared by ordered-value containers: the
// unbalanced Tree implements it, and a self-balancing variant can be
// substituted behind it without changing callers.
type Sorted[T any] interface {
	Insert(v T)
	Delete(v T) error
	Search(v T) bool
	Len() int
	InOrderSlice() []T
}

// node is a tree element owning its left and right subtrees exclusively.
type node[T any] struct {
	value       T
	left, right *node[T]
}

// Tree is an unbalanced binary search tree of T.
// The zero value is not usable; construct with New or NewOrdered.
type Tree[T any] struct {
	cmp    func(a, b T) int
	root   *node[T]
	length int
	mods   uint64
}

// compile-time check: Tree satisfies the Sorted extension point.
var _ Sorted[int] = (*Tree[int])(nil)

// New creates an empty tree ordered by cmp.
// A nil comparator is rejected with ErrUnorderableValue at construction.
//
// Complexity: O(1).
func New[T any](compare func(a, b T) int) (*Tree[T], error) {
	if compare == nil {
		return nil, ErrUnorderableValue
	}

	return &Tree[T]{cmp: compare}, nil
}

// NewOrdered creates an empty tree over a naturally ordered type.
//
// Complexity: O(1).
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	t, _ := New[T](cmp.Compare[T])
	return t
}

// Len returns the number of stored values. Complexity: O(1).
func (t *Tree[T]) Len() int { return t.length }

// IsEmpty reports whether the tree holds no values. Complexity: O(1).
func (t *Tree[T]) IsEmpty() bool { return t.length == 0 }

// Search reports whether v is present, descending iteratively from the
// root.
//
// Complexity: O(H) - O(log N) balanced, O(N) on a degenerate chain.
func (t *Tree[T]) Search(v T) bool {
	cur := t.root
	for cur != nil {
		c := t.cmp(v, cur.value)
		if c == 0 {
			return true
		}
		if c < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	return false
}

// Insert adds v, descending iteratively to the correct leaf position.
// Duplicates go into the RIGHT subtree (fixed policy).
//
// Complexity: O(H).
func (t *Tree[T]) Insert(v T) {
	n := &node[T]{value: v}
	t.length++
	t.mods++
	if t.root == nil {
		t.root = n
		return
	}
	cur := t.root
	for {
		if t.cmp(v, cur.value) < 0 {
			if cur.left == nil {
				cur.left = n
				return
			}
			cur = cur.left
		} else { // equal values descend right
			if cur.right == nil {
				cur.right = n
				return
			}
			cur = cur.right
		}
	}
}

// Delete removes one occurrence of v.
// Returns ErrValueNotFound when v is absent.
//
// Three cases, handled iteratively with explicit parent tracking:
// (a) leaf - detach; (b) one child - splice the child into the deleted
// node's position; (c) two children - adopt the in-order successor's
// value (minimum of the right subtree), then splice out the successor,
// which has at most one child.
//
// Complexity: O(H).
func (t *Tree[T]) Delete(v T) error {
	// 1) Locate the target and its parent.
	var parent *node[T]
	cur := t.root
	for cur != nil {
		c := t.cmp(v, cur.value)
		if c == 0 {
			break
		}
		parent = cur
		if c < 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cur == nil {
		return ErrValueNotFound
	}

	// 2) Two children: replace the value with the in-order successor's,
	//    then retarget deletion at the successor (≤ one child).
	if cur.left != nil && cur.right != nil {
		succParent, succ := cur, cur.right
		for succ.left != nil {
			succParent, succ = succ, succ.left
		}
		cur.value = succ.value
		parent, cur = succParent, succ
	}

	// 3) Zero or one child: splice.
	child := cur.left
	if child == nil {
		child = cur.right
	}
	switch {
	case parent == nil:
		t.root = child
	case parent.left == cur:
		parent.left = child
	default:
		parent.right = child
	}
	cur.left, cur.right = nil, nil
	t.length--
	t.mods++

	return nil
}

// Min returns the smallest stored value (leftmost node).
// Returns ErrEmptyTree when the tree is empty.
//
// Complexity: O(H).
func (t *Tree[T]) Min() (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.value, nil
}

// Max returns the largest stored value (rightmost node).
// Returns ErrEmptyTree when the tree is empty.
//
// Complexity: O(H).
func (t *Tree[T]) Max() (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.value, nil
}

// Height returns the longest root-to-leaf edge count, -1 when empty.
// Exposed so the degenerate-chain characteristic can be observed.
//
// Complexity: O(N) (iterative level walk).
func (t *Tree[T]) Height() int {
	if t.root == nil {
		return -1
	}
	h := -1
	level := []*node[T]{t.root}
	for len(level) > 0 {
		h++
		next := make([]*node[T], 0, len(level)*2)
		for _, n := range level {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		level = next
	}

	return h
}

// InOrderSlice returns all values in ascending order as a fresh slice.
//
// Complexity: O(N).
func (t *Tree[T]) InOrderSlice() []T {
	out := make([]T, 0, t.length)
	it := t.InOrder()
	for it.Next() {
		out = append(out, it.Value())
	}

	return out
}
