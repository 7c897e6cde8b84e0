package hashtable

// Set is a hash set of K: a Table with no value payload. It shares the
// Table's internals - chained buckets, cached hashes, fixed 0.75 load
// factor, optional insertion-order iteration - with identical
// complexity and error semantics.
type Set[K any] struct {
	inner *Table[K, struct{}]
}

// NewSet creates an empty Set with the same capability requirements and
// options as New.
//
// Complexity: O(capacity).
func NewSet[K any](hash func(K) uint64, eq func(K, K) bool, opts ...Option) (*Set[K], error) {
	t, err := New[K, struct{}](hash, eq, opts...)
	if err != nil {
		return nil, err
	}

	return &Set[K]{inner: t}, nil
}

// Len returns the number of stored keys. Complexity: O(1).
func (s *Set[K]) Len() int { return s.inner.Len() }

// IsEmpty reports whether the set holds no keys. Complexity: O(1).
func (s *Set[K]) IsEmpty() bool { return s.inner.IsEmpty() }

// Add inserts k; adding a present key is a no-op.
//
// Complexity: average O(1), worst case O(N).
func (s *Set[K]) Add(k K) {
	s.inner.Insert(k, struct{}{})
}

// Contains reports whether k is present. Absence is not an error.
//
// Complexity: average O(1), worst case O(N).
func (s *Set[K]) Contains(k K) bool {
	return s.inner.ContainsKey(k)
}

// Remove deletes k. Returns ErrKeyNotFound when k is absent.
//
// Complexity: average O(1), worst case O(N).
func (s *Set[K]) Remove(k K) error {
	_, err := s.inner.Remove(k)
	return err
}

// Values returns all stored keys as a fresh slice - insertion order in
// insertion-order mode, unspecified order otherwise.
//
// Complexity: O(N + capacity).
func (s *Set[K]) Values() []K { return s.inner.Keys() }

// Iterator returns a forward-only, restartable, fail-fast traversal
// over the set's keys (via Key; Value carries no payload).
//
// Complexity: O(1).
func (s *Set[K]) Iterator() *Iterator[K, struct{}] { return s.inner.Iterator() }
