package trie

import (
	"errors"
	"sort"

	"github.com/vaskorr/collections/dynarr"
	"github.com/vaskorr/collections/hashtable"
)

// Sentinel errors for trie operations.
var (
	// ErrWordNotFound indicates Remove of an absent word.
	ErrWordNotFound = errors.New("trie: word not found")

	// ErrInvalidatedIteration indicates a structural mutation was observed
	// by an in-progress iterator.
	ErrInvalidatedIteration = errors.New("trie: iteration invalidated by mutation")
)

// childCapacity keeps per-node child tables small; they grow on demand.
const childCapacity = 4

// node maps each symbol to an exclusively-owned child and records
// whether the path ending here spells a stored word.
type node struct {
	children *hashtable.Table[rune, *node]
	isEnd    bool
}

func newNode() *node {
	children, _ := hashtable.New[rune, *node](
		hashtable.RuneHash, hashtable.RuneEq, hashtable.WithCapacity(childCapacity))

	return &node{children: children}
}

// Trie is a prefix tree over runes.
// The zero value is not usable; construct with New.
type Trie struct {
	root   *node
	length int // number of stored words
	mods   uint64
}

// New creates an empty trie.
//
// Complexity: O(1).
func New() *Trie {
	return &Trie{root: newNode()}
}

// Len returns the number of stored words. Complexity: O(1).
func (t *Trie) Len() int { return t.length }

// IsEmpty reports whether the trie holds no words. Complexity: O(1).
func (t *Trie) IsEmpty() bool { return t.length == 0 }

// Insert stores word, creating one child node per missing symbol and
// marking the terminal node. Inserting a present word is a no-op.
//
// Complexity: O(L), independent of the number of stored words.
func (t *Trie) Insert(word string) {
	cur := t.root
	for _, r := range word {
		next, err := cur.children.Lookup(r)
		if err != nil {
			next = newNode()
			cur.children.Insert(r, next)
		}
		cur = next
	}
	if !cur.isEnd {
		cur.isEnd = true
		t.length++
		t.mods++
	}
}

// ContainsWord reports whether word was stored exactly: the path must
// exist and its terminal node must be marked end-of-word.
//
// Complexity: O(L).
func (t *Trie) ContainsWord(word string) bool {
	n := t.walk(word)
	return n != nil && n.isEnd
}

// HasPrefix reports whether any stored word starts with prefix; the
// end-of-word flag is irrelevant.
//
// Complexity: O(L).
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// Remove deletes word, unmarking its terminal node and pruning every
// ancestor that became childless and unmarked.
// Returns ErrWordNotFound when word was not stored.
//
// Complexity: O(L).
func (t *Trie) Remove(word string) error {
	// 1) Walk down recording the path for the prune phase.
	type step struct {
		parent *node
		r      rune
	}
	path := make([]step, 0, len(word))
	cur := t.root
	for _, r := range word {
		next, err := cur.children.Lookup(r)
		if err != nil {
			return ErrWordNotFound
		}
		path = append(path, step{parent: cur, r: r})
		cur = next
	}
	if !cur.isEnd {
		return ErrWordNotFound
	}

	// 2) Unmark, then prune childless unmarked nodes bottom-up.
	cur.isEnd = false
	t.length--
	t.mods++
	for i := len(path) - 1; i >= 0; i-- {
		if cur.isEnd || cur.children.Len() > 0 {
			break
		}
		_, _ = path[i].parent.children.Remove(path[i].r)
		cur = path[i].parent
	}

	return nil
}

// walk follows the path spelled by s, returning its terminal node or
// nil when the path does not exist.
func (t *Trie) walk(s string) *node {
	cur := t.root
	for _, r := range s {
		next, err := cur.children.Lookup(r)
		if err != nil {
			return nil
		}
		cur = next
	}

	return cur
}

// wordFrame is one unit of pending enumeration work.
type wordFrame struct {
	n      *node
	prefix string
}

// Iterator enumerates stored words in ascending lexicographic order,
// walking the tree with an explicit stack. Fails fast with
// ErrInvalidatedIteration on structural mutation.
type Iterator struct {
	trie   *Trie
	mods   uint64
	stack  *dynarr.Array[wordFrame]
	prefix string // iteration root prefix
	cur    string
	err    error
}

// Words returns an iterator over every stored word.
//
// Complexity: O(1) construction; a full enumeration visits each node once.
func (t *Trie) Words() *Iterator {
	return t.WordsWithPrefix("")
}

// WordsWithPrefix returns an iterator over the stored words starting
// with prefix; the iterator is empty when no such words exist.
//
// Complexity: O(len(prefix)) construction.
func (t *Trie) WordsWithPrefix(prefix string) *Iterator {
	it := &Iterator{trie: t, prefix: prefix}
	it.Reset()

	return it
}

// Next advances to the next word; false on exhaustion or invalidation.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.mods != it.trie.mods {
		it.err = ErrInvalidatedIteration
		return false
	}
	for {
		n := it.stack.Len()
		if n == 0 {
			return false
		}
		f, _ := it.stack.RemoveAt(n - 1)
		it.pushChildren(f)
		if f.n.isEnd {
			it.cur = f.prefix
			return true
		}
	}
}

// Value returns the word at the current position.
// Valid only after a successful Next.
func (it *Iterator) Value() string { return it.cur }

// Err returns ErrInvalidatedIteration if the traversal observed a
// structural mutation, nil otherwise.
func (it *Iterator) Err() error { return it.err }

// Reset rewinds the iterator to its prefix root and re-snapshots the
// modification counter.
func (it *Iterator) Reset() {
	it.mods = it.trie.mods
	it.cur = ""
	it.err = nil
	it.stack, _ = dynarr.New[wordFrame](0)
	if n := it.trie.walk(it.prefix); n != nil {
		it.stack.Append(wordFrame{n: n, prefix: it.prefix})
	}
}

// pushChildren schedules f's children in reverse symbol order so that
// the smallest symbol pops first, yielding lexicographic enumeration.
func (it *Iterator) pushChildren(f wordFrame) {
	symbols := f.n.children.Keys()
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] > symbols[j] })
	for _, r := range symbols {
		child, _ := f.n.children.Lookup(r)
		it.stack.Append(wordFrame{n: child, prefix: f.prefix + string(r)})
	}
}
