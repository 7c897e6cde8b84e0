// Package binheap implements an array-backed binary heap (priority
// queue) parametrized by a total order and a first-class direction
// flag: Min and Max are both native configurations, so callers never
// resort to negating ordering keys to simulate a max-heap.
//
// Representation: the backing store is a dynarr.Array interpreted as a
// complete binary tree - for index i, children live at 2i+1 and 2i+2
// and the parent at ⌊(i−1)/2⌋. Min-heap invariant: every parent orders
// at or before each of its children; max-heap is the mirror.
//
// Complexity:
//
//   - Peek:          O(1)
//   - Push:          O(log N) - append, then sift up
//   - Pop:           O(log N) - move last into root, then sift down
//   - FromSlice:     O(N) bottom-up heapify
//
// Determinism: when both children of a sift-down position compare
// equal, the LEFT child is preferred.
//
// Errors:
//
//	ErrUnorderableValue     - nil comparator at construction.
//	ErrBadDirection         - direction other than Min or Max.
//	ErrEmptyHeap            - Peek or Pop on an empty heap.
//	ErrInvalidatedIteration - structural mutation observed mid-traversal.
//
// Heaps are single-threaded by design; guard shared instances externally.
package binheap
