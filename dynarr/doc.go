// Package dynarr implements a contiguous, resizable indexed sequence -
// the dynamic array - with a doubling growth policy and an explicit,
// testable amortization contract.
//
// Growth policy:
//
//   - Append allocates a new backing store of capacity 2·C (minimum 1)
//     only when length equals capacity, copying all existing elements.
//   - Across any sequence of N appends starting from empty, the total
//     element-copy work performed by resizes is O(N) - amortized O(1)
//     per append. Copies() exposes the running copy counter so the bound
//     can be verified by counting, not by timing.
//
// Complexity:
//
//   - Get / Set:            O(1)
//   - Append:               amortized O(1)
//   - InsertAt / RemoveAt:  O(L−i) suffix shift
//   - Slice:                O(j−i), always a fresh copy (never aliases)
//
// Iteration is forward-only and restartable. An iterator observes the
// array's modification counter and fails fast with
// ErrInvalidatedIteration if the array is structurally mutated while a
// traversal is in progress.
//
// Errors:
//
//	ErrBadCapacity          - negative initial-capacity hint.
//	ErrIndexOutOfBounds     - index outside [0, Len) (or [0, Len] for InsertAt).
//	ErrInvalidatedIteration - structural mutation observed mid-traversal.
//
// The array is single-threaded by design; guard shared instances
// externally.
package dynarr
