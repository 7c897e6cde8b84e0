// Package trie implements a prefix tree over sequences of runes.
//
// Each node maps a symbol to an exclusively-owned child node through a
// hashtable.Table and carries an end-of-word flag; the root represents
// the empty prefix, and the path from the root to any node spells the
// prefix that node represents. The empty string is a valid word (the
// root's flag).
//
// Complexity: Insert, ContainsWord, HasPrefix and Remove are O(L) in
// the length of the sequence - independent of the number of stored
// words, which is the structure's defining advantage over scanning a
// set of strings.
//
//   - ContainsWord reports true only when the exact path exists AND the
//     terminal node is marked end-of-word.
//   - HasPrefix reports true when the path exists, regardless of the
//     end-of-word flag.
//   - Remove unmarks the terminal node and prunes nodes that became
//     childless and unmarked.
//
// Word enumeration (Words, WordsWithPrefix) walks the tree with an
// explicit, caller-managed stack - never recursion - and yields words
// in ascending lexicographic order. Iterators fail fast with
// ErrInvalidatedIteration on structural mutation.
//
// Errors:
//
//	ErrWordNotFound         - Remove of an absent word.
//	ErrInvalidatedIteration - structural mutation observed mid-traversal.
//
// Tries are single-threaded by design; guard shared instances externally.
package trie
