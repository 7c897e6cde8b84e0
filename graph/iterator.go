package graph

// edgeSource is the view-internal surface the iterator needs: the public
// View operations plus the modification counter.
type edgeSource interface {
	View
	modCount() uint64
}

// EdgeIterator walks all edges of a view in sorted (U, V) order.
// Undirected edges appear once with U ≤ V; self-loops appear once.
//
// The iterator is fail-fast: any view mutation after its creation makes
// the next Next return false with Err() == ErrInvalidatedIteration.
// Reset re-snapshots the view and clears the error.
type EdgeIterator struct {
	src   edgeSource
	snap  uint64
	edges []Edge
	idx   int
	err   error
}

func newEdgeIterator(src edgeSource) *EdgeIterator {
	it := &EdgeIterator{src: src}
	it.Reset()

	return it
}

// Next advances to the next edge.
// Complexity: O(1)
func (it *EdgeIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.snap != it.src.modCount() {
		it.err = ErrInvalidatedIteration

		return false
	}
	if it.idx >= len(it.edges) {
		return false
	}
	it.idx++

	return true
}

// Value returns the edge at the current position.
// Only valid after a Next call that returned true.
func (it *EdgeIterator) Value() Edge { return it.edges[it.idx-1] }

// Err returns ErrInvalidatedIteration if the view changed mid-iteration.
func (it *EdgeIterator) Err() error { return it.err }

// Reset rewinds the iterator and re-snapshots the view.
func (it *EdgeIterator) Reset() {
	it.snap = it.src.modCount()
	it.edges = collectEdges(it.src)
	it.idx = 0
	it.err = nil
}

// collectEdges materializes the edge list of v in sorted (U, V) order,
// relying on Vertices and Neighbors being sorted.
// Complexity: O(V + E) for lists, O(V²) for matrices
func collectEdges(v View) []Edge {
	out := make([]Edge, 0, v.EdgeCount())
	for _, u := range v.Vertices() {
		nbrs, err := v.Neighbors(u)
		if err != nil {
			continue
		}
		for _, nbr := range nbrs {
			if !v.Directed() && nbr < u {
				continue // mirror of an edge already emitted
			}
			w, err := v.Weight(u, nbr)
			if err != nil {
				continue
			}
			out = append(out, Edge{U: u, V: nbr, Weight: w})
		}
	}

	return out
}
