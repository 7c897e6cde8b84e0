// Package collections is an in-memory toolbox of classic data structures
// with precisely documented behavioral contracts: growth policy, collision
// handling, traversal order, and the resulting complexity guarantees.
//
// What's inside?
//
//	A pure-Go, generics-based library that brings together:
//		• dynarr/    - dynamic array with doubling growth and counted-copy amortization
//		• list/      - singly and doubly linked lists with sentinel nodes
//		• hashtable/ - chained hash map & hash set with explicit hash/equals capability
//		• binheap/   - array-backed binary heap, min and max as first-class directions
//		• bst/       - unbalanced binary search tree with iterative traversals
//		• trie/      - prefix tree over runes with hash-table child maps
//		• graph/     - adjacency-list & adjacency-matrix views + lossless conversion
//		• traverse/  - BFS, DFS and Dijkstra over any graph view
//
// Why choose collections?
//
//   - Contracts first – every operation documents its complexity and its
//     failure modes as package-level sentinel errors (errors.Is friendly)
//   - Deterministic – fixed tie-breaks, fixed duplicate policy, sorted
//     neighbor iteration; no hidden randomness in observable behavior
//   - Honest – O(N) costs are surfaced as O(N); a degenerate BST chain is
//     a documented characteristic, not a silent fix
//   - Composable – the hash table's bucket array sits on the dynamic
//     array, the heap sits on the dynamic array, the trie's child maps
//     are hash tables, the graph views sit on the hash table and the
//     dynamic array
//
// Every container is single-threaded by design: no internal locking, no
// atomics. Concurrent use of one instance must be guarded externally.
// Iterators are forward-only, restartable, and fail fast with an
// invalidated-iteration error when they observe structural mutation
// instead of silently skipping or duplicating elements.
//
//	go get github.com/vaskorr/collections
package collections
