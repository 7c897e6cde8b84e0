package hashtable

import (
	"errors"

	"github.com/vaskorr/collections/dynarr"
)

// Sentinel errors for hash-table operations.
var (
	// ErrUnhashableKey indicates a nil hash or equality function.
	ErrUnhashableKey = errors.New("hashtable: key type lacks hash/equality capability")

	// ErrBadCapacity indicates a negative capacity hint.
	ErrBadCapacity = errors.New("hashtable: negative capacity hint")

	// ErrKeyNotFound indicates a Lookup or Remove of an absent key.
	ErrKeyNotFound = errors.New("hashtable: key not found")

	// ErrInvalidatedIteration indicates a structural mutation was observed
	// by an in-progress iterator.
	ErrInvalidatedIteration = errors.New("hashtable: iteration invalidated by mutation")
)

// entry is a stored (key, value, cached hash) record inside a bucket's
// collision chain. ordPrev/ordNext thread the insertion-order chain when
// the table runs in insertion-order mode.
type entry[K, V any] struct {
	key   K
	value V
	hash  uint64 // cached: resize redistributes without rehashing keys
	next  *entry[K, V]

	ordPrev, ordNext *entry[K, V]
}

// Table is a chained hash map from K to V.
// The zero value is not usable; construct with New.
type Table[K, V any] struct {
	hash func(K) uint64
	eq   func(K, K) bool

	buckets *dynarr.Array[*entry[K, V]] // bucket array; length == capacity
	length  int
	mods    uint64

	ordered          bool // insertion-order iteration mode
	ordHead, ordTail *entry[K, V]
}

// New creates an empty Table. The hash and eq functions are the key
// type's required capability set; a nil function is rejected with
// ErrUnhashableKey at construction - the earliest possible point.
//
// Complexity: O(capacity).
func New[K, V any](hash func(K) uint64, eq func(K, K) bool, opts ...Option) (*Table[K, V], error) {
	if hash == nil || eq == nil {
		return nil, ErrUnhashableKey
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Table[K, V]{
		hash:    hash,
		eq:      eq,
		buckets: dynarr.FromSlice(make([]*entry[K, V], o.Capacity)),
		ordered: o.InsertionOrder,
	}, nil
}

// Len returns the number of stored entries. Complexity: O(1).
func (t *Table[K, V]) Len() int { return t.length }

// IsEmpty reports whether the table holds no entries. Complexity: O(1).
func (t *Table[K, V]) IsEmpty() bool { return t.length == 0 }

// Capacity returns the current bucket count. Complexity: O(1).
func (t *Table[K, V]) Capacity() int { return t.buckets.Len() }

// Insert stores v under k. If k is already present the value is
// replaced in place (size unchanged, no resize check). Inserting a new
// key may trigger a full doubling resize when the post-insert load
// factor exceeds LoadFactor.
//
// Complexity: average O(1), worst case O(N) (full-bucket collision or resize).
func (t *Table[K, V]) Insert(k K, v V) {
	h := t.hash(k)
	idx := int(h % uint64(t.buckets.Len()))
	head, _ := t.buckets.Get(idx)

	// 1) Existing key: replace value in place, compare via eq (hash
	//    collisions are not key equality).
	for e := head; e != nil; e = e.next {
		if e.hash == h && t.eq(e.key, k) {
			e.value = v
			return
		}
	}

	// 2) New key: prepend to the bucket's chain.
	e := &entry[K, V]{key: k, value: v, hash: h, next: head}
	_ = t.buckets.Set(idx, e)
	t.length++
	t.mods++
	if t.ordered {
		t.ordLink(e)
	}

	// 3) Resize check - post-insert load factor against the fixed threshold.
	if float64(t.length)/float64(t.buckets.Len()) > LoadFactor {
		t.resize()
	}
}

// Lookup returns the value stored under k.
// Returns ErrKeyNotFound when k is absent.
//
// Complexity: average O(1), worst case O(N).
func (t *Table[K, V]) Lookup(k K) (V, error) {
	var zero V
	if e := t.find(k); e != nil {
		return e.value, nil
	}

	return zero, ErrKeyNotFound
}

// ContainsKey reports whether k is present. Absence is not an error.
//
// Complexity: average O(1), worst case O(N).
func (t *Table[K, V]) ContainsKey(k K) bool {
	return t.find(k) != nil
}

// Remove deletes and returns the value stored under k.
// Returns ErrKeyNotFound when k is absent.
//
// Complexity: average O(1), worst case O(N).
func (t *Table[K, V]) Remove(k K) (V, error) {
	var zero V
	h := t.hash(k)
	idx := int(h % uint64(t.buckets.Len()))
	head, _ := t.buckets.Get(idx)

	var prev *entry[K, V]
	for e := head; e != nil; prev, e = e, e.next {
		if e.hash != h || !t.eq(e.key, k) {
			continue
		}
		if prev == nil {
			_ = t.buckets.Set(idx, e.next)
		} else {
			prev.next = e.next
		}
		if t.ordered {
			t.ordUnlink(e)
		}
		t.length--
		t.mods++

		return e.value, nil
	}

	return zero, ErrKeyNotFound
}

// Keys returns all stored keys as a fresh slice - insertion order in
// insertion-order mode, unspecified order otherwise.
//
// Complexity: O(N + capacity).
func (t *Table[K, V]) Keys() []K {
	out := make([]K, 0, t.length)
	t.each(func(e *entry[K, V]) { out = append(out, e.key) })

	return out
}

// find locates the entry for k, or returns nil.
func (t *Table[K, V]) find(k K) *entry[K, V] {
	h := t.hash(k)
	head, _ := t.buckets.Get(int(h % uint64(t.buckets.Len())))
	for e := head; e != nil; e = e.next {
		if e.hash == h && t.eq(e.key, k) {
			return e
		}
	}

	return nil
}

// resize doubles the bucket array and rebuilds every chain, recomputing
// each entry's bucket index from its cached hash against the new
// capacity. O(N + capacity); this is the dominant worst-case insert cost,
// amortized over subsequent O(1) insertions.
func (t *Table[K, V]) resize() {
	oldCap := t.buckets.Len()
	next := dynarr.FromSlice(make([]*entry[K, V], oldCap*2))

	for i := 0; i < oldCap; i++ {
		e, _ := t.buckets.Get(i)
		for e != nil {
			chain := e.next
			idx := int(e.hash % uint64(next.Len()))
			head, _ := next.Get(idx)
			e.next = head
			_ = next.Set(idx, e)
			e = chain
		}
	}
	t.buckets = next
}

// ordLink appends e to the insertion-order chain.
func (t *Table[K, V]) ordLink(e *entry[K, V]) {
	if t.ordTail == nil {
		t.ordHead, t.ordTail = e, e
		return
	}
	e.ordPrev = t.ordTail
	t.ordTail.ordNext = e
	t.ordTail = e
}

// ordUnlink removes e from the insertion-order chain.
func (t *Table[K, V]) ordUnlink(e *entry[K, V]) {
	if e.ordPrev != nil {
		e.ordPrev.ordNext = e.ordNext
	} else {
		t.ordHead = e.ordNext
	}
	if e.ordNext != nil {
		e.ordNext.ordPrev = e.ordPrev
	} else {
		t.ordTail = e.ordPrev
	}
	e.ordPrev, e.ordNext = nil, nil
}

// each visits every live entry (insertion order when ordered).
func (t *Table[K, V]) each(fn func(*entry[K, V])) {
	if t.ordered {
		for e := t.ordHead; e != nil; e = e.ordNext {
			fn(e)
		}
		return
	}
	for i := 0; i < t.buckets.Len(); i++ {
		e, _ := t.buckets.Get(i)
		for ; e != nil; e = e.next {
			fn(e)
		}
	}
}

// Iterator is a forward-only, restartable traversal over a Table's
// entries. Order is unspecified unless the table was built with
// WithInsertionOrder. Fails fast with ErrInvalidatedIteration on
// structural mutation (value replacement is not structural).
type Iterator[K, V any] struct {
	table   *Table[K, V]
	mods    uint64
	cur     *entry[K, V]
	bucket  int // next bucket to scan (unordered mode)
	started bool
	err     error
}

// Iterator returns a new iterator positioned before the first entry.
//
// Complexity: O(1).
func (t *Table[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{table: t, mods: t.mods}
}

// Next advances to the next entry; false on exhaustion or invalidation.
//
// Complexity: amortized O(1) across a full traversal.
func (it *Iterator[K, V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.mods != it.table.mods {
		it.err = ErrInvalidatedIteration
		return false
	}

	if it.table.ordered {
		if !it.started {
			it.started = true
			it.cur = it.table.ordHead
		} else if it.cur != nil {
			it.cur = it.cur.ordNext
		}
		return it.cur != nil
	}

	// unordered: continue the current chain, then scan forward for the
	// next non-empty bucket
	it.started = true
	if it.cur != nil {
		it.cur = it.cur.next
	}
	for it.cur == nil && it.bucket < it.table.buckets.Len() {
		head, _ := it.table.buckets.Get(it.bucket)
		it.cur = head
		it.bucket++
	}

	return it.cur != nil
}

// Key returns the key at the current position.
// Valid only after a successful Next.
func (it *Iterator[K, V]) Key() K { return it.cur.key }

// Value returns the value at the current position.
// Valid only after a successful Next.
func (it *Iterator[K, V]) Value() V { return it.cur.value }

// Err returns ErrInvalidatedIteration if the traversal observed a
// structural mutation, nil otherwise.
func (it *Iterator[K, V]) Err() error { return it.err }

// Reset rewinds the iterator and re-snapshots the modification counter.
func (it *Iterator[K, V]) Reset() {
	it.mods = it.table.mods
	it.cur = nil
	it.bucket = 0
	it.started = false
	it.err = nil
}
