// Package bst implements an unbalanced binary search tree with
// iterative search, insert, delete and four traversal orders.
//
// Ordering contract: for every node, all values in its left subtree
// order strictly before the node's value, and the node's value orders
// before (or equal to - see duplicates) everything in its right
// subtree. Duplicates are inserted into the RIGHT subtree; this policy
// is fixed and documented, not configurable.
//
// Complexity: Search, Insert and Delete are O(H) where H is the tree
// height - O(log N) on balanced shapes, degrading to O(N) on a
// degenerate chain produced by sorted insertion order. The degradation
// is an accepted, documented characteristic of the unbalanced tree, not
// a defect: the Sorted interface is the extension point behind which a
// self-balancing variant (AVL, red-black) can be substituted without
// changing callers.
//
// Deletion handles three cases: a leaf detaches directly; a one-child
// node splices its child into its position; a two-child node takes the
// value of its in-order successor (the minimum of the right subtree),
// and the successor - which has at most one child - is spliced out.
//
// Traversals are implemented with explicit, caller-managed stacks and
// queues rather than recursion, so degenerate (deep, unbalanced) trees
// cannot exhaust the call stack:
//
//   - InOrder   (left, self, right) - yields ascending sorted order
//   - PreOrder  (self, left, right)
//   - PostOrder (left, right, self)
//   - LevelOrder - an explicit FIFO queue, never recursion
//
// Iterators are forward-only, restartable, and fail fast with
// ErrInvalidatedIteration on structural mutation.
//
// Errors:
//
//	ErrUnorderableValue     - nil comparator at construction.
//	ErrEmptyTree            - Min/Max on an empty tree.
//	ErrValueNotFound        - Delete of an absent value.
//	ErrBadOrder             - Traverse with an unknown traversal order.
//	ErrInvalidatedIteration - structural mutation observed mid-traversal.
//
// Trees are single-threaded by design; guard shared instances externally.
package bst
