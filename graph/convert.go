// This file provides conversions between the two representations.
// After a conversion, the source and destination agree on HasEdge for
// every vertex pair.
package graph

// ToMatrixView builds an AdjacencyMatrix copy of v with the same
// directedness and weight policy.
// Complexity: O(V²)
func ToMatrixView(v View) (*MatrixView, error) {
	if v == nil {
		return nil, ErrNilView
	}
	m := newMatrixView(Options{Directed: v.Directed(), Weighted: v.Weighted()})
	if err := copyInto(m, v); err != nil {
		return nil, err
	}

	return m, nil
}

// ToListView builds an AdjacencyList copy of v with the same
// directedness and weight policy.
// Complexity: O(V + E)
func ToListView(v View) (*ListView, error) {
	if v == nil {
		return nil, ErrNilView
	}
	l := newListView(Options{Directed: v.Directed(), Weighted: v.Weighted()})
	if err := copyInto(l, v); err != nil {
		return nil, err
	}

	return l, nil
}

// copyInto replays the vertices and edges of src into dst.
// Isolated vertices survive the conversion.
func copyInto(dst, src View) error {
	for _, id := range src.Vertices() {
		if err := dst.AddVertex(id); err != nil {
			return err
		}
	}
	for _, e := range collectEdges(src) {
		if err := dst.AddEdge(e.U, e.V, e.Weight); err != nil {
			return err
		}
	}

	return nil
}
