package bst

import (
	"github.com/vaskorr/collections/dynarr"
	"github.com/vaskorr/collections/list"
)

// Order selects a traversal sequence over the tree.
type Order int

const (
	// InOrder visits left subtree, node, right subtree - ascending
	// sorted order, a required invariant of the search tree.
	InOrder Order = iota

	// PreOrder visits node, left subtree, right subtree.
	PreOrder

	// PostOrder visits left subtree, right subtree, node.
	PostOrder

	// LevelOrder visits breadth-first via an explicit FIFO queue.
	LevelOrder
)

// frame is one unit of pending traversal work on the explicit stack.
// expanded marks a post-order node whose subtrees are already scheduled.
type frame[T any] struct {
	n        *node[T]
	expanded bool
}

// Iterator is a forward-only, restartable traversal over a Tree in a
// fixed Order. All orders run on explicit, caller-managed stacks or
// queues - never recursion - so degenerate tree shapes cannot exhaust
// the call stack. Fails fast with ErrInvalidatedIteration on structural
// mutation.
type Iterator[T any] struct {
	tree  *Tree[T]
	order Order
	mods  uint64
	stack *dynarr.Array[frame[T]] // depth-first orders
	queue *list.List[*node[T]]    // level order
	cur   *node[T]
	err   error
}

// Traverse returns an iterator over the tree in the given order.
// Returns ErrBadOrder for an unknown order.
//
// Complexity: O(1) construction (apart from O(H) spine setup for
// in-order); a full traversal is O(N).
func (t *Tree[T]) Traverse(order Order) (*Iterator[T], error) {
	if order < InOrder || order > LevelOrder {
		return nil, ErrBadOrder
	}
	it := &Iterator[T]{tree: t, order: order}
	it.Reset()

	return it, nil
}

// InOrder returns an ascending-order iterator.
func (t *Tree[T]) InOrder() *Iterator[T] {
	it, _ := t.Traverse(InOrder)
	return it
}

// PreOrder returns a node-first iterator.
func (t *Tree[T]) PreOrder() *Iterator[T] {
	it, _ := t.Traverse(PreOrder)
	return it
}

// PostOrder returns a subtrees-first iterator.
func (t *Tree[T]) PostOrder() *Iterator[T] {
	it, _ := t.Traverse(PostOrder)
	return it
}

// LevelOrder returns a breadth-first iterator backed by an explicit
// FIFO queue.
func (t *Tree[T]) LevelOrder() *Iterator[T] {
	it, _ := t.Traverse(LevelOrder)
	return it
}

// Next advances to the next node in the configured order; false on
// exhaustion or invalidation.
//
// Complexity: amortized O(1) across a full traversal.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.mods != it.tree.mods {
		it.err = ErrInvalidatedIteration
		return false
	}

	switch it.order {
	case InOrder:
		return it.nextInOrder()
	case PreOrder:
		return it.nextPreOrder()
	case PostOrder:
		return it.nextPostOrder()
	default:
		return it.nextLevelOrder()
	}
}

// Value returns the value at the current position.
// Valid only after a successful Next.
func (it *Iterator[T]) Value() T { return it.cur.value }

// Err returns ErrInvalidatedIteration if the traversal observed a
// structural mutation, nil otherwise.
func (it *Iterator[T]) Err() error { return it.err }

// Reset rewinds the iterator to the start of its order and re-snapshots
// the modification counter.
func (it *Iterator[T]) Reset() {
	it.mods = it.tree.mods
	it.cur = nil
	it.err = nil
	it.stack, _ = dynarr.New[frame[T]](0)
	it.queue = list.New[*node[T]]()

	root := it.tree.root
	if root == nil {
		return
	}
	switch it.order {
	case InOrder:
		it.pushLeftSpine(root)
	case PreOrder, PostOrder:
		it.push(frame[T]{n: root})
	default:
		it.queue.PushBack(root)
	}
}

func (it *Iterator[T]) push(f frame[T]) { it.stack.Append(f) }

func (it *Iterator[T]) pop() (frame[T], bool) {
	n := it.stack.Len()
	if n == 0 {
		return frame[T]{}, false
	}
	f, _ := it.stack.RemoveAt(n - 1)

	return f, true
}

// pushLeftSpine schedules n and every node on its left spine.
func (it *Iterator[T]) pushLeftSpine(n *node[T]) {
	for ; n != nil; n = n.left {
		it.push(frame[T]{n: n})
	}
}

func (it *Iterator[T]) nextInOrder() bool {
	f, ok := it.pop()
	if !ok {
		return false
	}
	it.cur = f.n
	it.pushLeftSpine(f.n.right)

	return true
}

func (it *Iterator[T]) nextPreOrder() bool {
	f, ok := it.pop()
	if !ok {
		return false
	}
	it.cur = f.n
	// right below left so that the left subtree pops first
	if f.n.right != nil {
		it.push(frame[T]{n: f.n.right})
	}
	if f.n.left != nil {
		it.push(frame[T]{n: f.n.left})
	}

	return true
}

func (it *Iterator[T]) nextPostOrder() bool {
	for {
		f, ok := it.pop()
		if !ok {
			return false
		}
		if f.expanded {
			it.cur = f.n
			return true
		}
		// schedule self after both subtrees: self (expanded) at the
		// bottom, then right, then left on top
		it.push(frame[T]{n: f.n, expanded: true})
		if f.n.right != nil {
			it.push(frame[T]{n: f.n.right})
		}
		if f.n.left != nil {
			it.push(frame[T]{n: f.n.left})
		}
	}
}

func (it *Iterator[T]) nextLevelOrder() bool {
	n, err := it.queue.PopFront()
	if err != nil {
		return false // queue drained
	}
	it.cur = n
	if n.left != nil {
		it.queue.PushBack(n.left)
	}
	if n.right != nil {
		it.queue.PushBack(n.right)
	}

	return true
}
