// Package list implements singly- and doubly-linked node chains with
// O(1) head/tail operations and honest cost accounting.
//
// Two variants:
//
//   - List  - singly linked. PushFront, PushBack and PopFront are O(1)
//     (a tail reference is maintained). PopBack and Remove(node) are
//     O(N): the predecessor must be found by scanning - this cost is
//     surfaced in the API documentation, never absorbed into an
//     "O(1) delete" claim.
//   - DList - doubly linked. PopBack and Remove(node) are O(1): the
//     previous-node reference is directly available. The forward chain
//     is the sole ownership path; prev links are navigation only.
//
// Both variants use a sentinel head node (DList: a circular sentinel),
// removing head/tail edge cases from insert and delete logic.
//
// Node-relative operations (InsertAfter, RemoveAfter, Remove) are O(1)
// given an existing node reference; finding such a reference is a
// separate, explicitly O(N) operation (FindNode).
//
// Errors:
//
//	ErrEmptyList            - pop/front/back on an empty list.
//	ErrNilNode              - nil node reference passed to a node-relative operation.
//	ErrForeignNode          - node belongs to a different (or no) list.
//	ErrNoSuccessor          - RemoveAfter on the last node.
//	ErrNodeNotFound         - FindNode predicate matched nothing.
//	ErrIndexOutOfBounds     - Get with an index outside [0, Len).
//	ErrInvalidatedIteration - structural mutation observed mid-traversal.
//
// Lists are single-threaded by design; guard shared instances externally.
package list
