// Package hashtable implements a chained hash map (Table) and a hash
// set (Set - a Table with no value payload) with an explicit hash +
// equality capability on keys.
//
// Capability contract:
//
//   - Construction requires hash and equality functions for the key
//     type; a nil function is rejected immediately with ErrUnhashableKey
//     - the earliest possible point of failure.
//   - For all keys a, b: eq(a, b) ⇒ hash(a) == hash(b), and the hash of
//     a stored key must be deterministic for the lifetime of its
//     membership. Keys whose hash-relevant state can change after
//     insertion violate the contract; bind hashing to immutable key
//     state (built-in hashers cover string, int, rune and []byte
//     snapshots).
//
// Algorithm:
//
//   - bucket index = hash(k) mod capacity; the bucket array is a
//     dynarr.Array and each bucket holds a linked collision chain.
//   - Chains are scanned comparing via eq, never via raw hash equality:
//     hash collisions are not key equality.
//   - Insert of an existing key replaces the value in place. Insert of
//     a new key may trigger a full resize when the post-insert load
//     factor exceeds LoadFactor (0.75): capacity doubles and every live
//     entry is redistributed using its cached hash - the dominant
//     worst-case O(N) cost, amortized over subsequent O(1) insertions.
//
// Complexity: Insert, Lookup, Remove, ContainsKey are average O(1) and
// worst-case O(N) when all live keys collide into one bucket.
//
// Iteration order is unspecified by default. WithInsertionOrder selects
// a distinct mode that preserves insertion order during iteration (an
// explicit opt-in, not the default). Iterators fail fast with
// ErrInvalidatedIteration on structural mutation.
//
// Errors:
//
//	ErrUnhashableKey        - nil hash or equality function at construction.
//	ErrBadCapacity          - negative capacity hint.
//	ErrKeyNotFound          - Lookup/Remove of an absent key (ContainsKey
//	                          returning false is not an error).
//	ErrInvalidatedIteration - structural mutation observed mid-traversal.
//
// Tables are single-threaded by design; guard shared instances externally.
package hashtable
