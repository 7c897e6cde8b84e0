package graph

import (
	"sort"

	"github.com/vaskorr/collections/dynarr"
	"github.com/vaskorr/collections/hashtable"
)

// initialSide is the starting matrix dimension; the side doubles when
// the vertex count outgrows it.
const initialSide = 4

// MatrixView is the AdjacencyMatrix representation: a flat row-major
// side×side weight matrix plus a parallel presence matrix, with a hash
// table mapping vertex ID to row index and a dense array mapping row
// index back to ID. Space: O(V²).
//
// Vertex removal swaps the last row/column into the vacated slot, so
// row indices are not stable across removals.
type MatrixView struct {
	opts    Options
	index   *hashtable.Table[string, int]
	ids     *dynarr.Array[string]
	weights *dynarr.Array[float64]
	present *dynarr.Array[bool]
	side    int
	edges   int
	mods    uint64
}

// newMatrixView builds an empty adjacency-matrix view.
func newMatrixView(o Options) *MatrixView {
	// static hash/eq arguments cannot fail validation
	index, _ := hashtable.New[string, int](hashtable.StringHash, hashtable.StringEq)

	return &MatrixView{
		opts:    o,
		index:   index,
		ids:     dynarr.FromSlice([]string{}),
		weights: dynarr.FromSlice(make([]float64, initialSide*initialSide)),
		present: dynarr.FromSlice(make([]bool, initialSide*initialSide)),
		side:    initialSide,
	}
}

// Directed reports whether edges are one-way.
func (m *MatrixView) Directed() bool { return m.opts.Directed }

// Weighted reports whether non-zero weights are allowed.
func (m *MatrixView) Weighted() bool { return m.opts.Weighted }

// Representation returns AdjacencyMatrix.
func (m *MatrixView) Representation() Representation { return AdjacencyMatrix }

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (m *MatrixView) VertexCount() int { return m.ids.Len() }

// EdgeCount returns the number of edges; undirected edges count once.
// Complexity: O(1)
func (m *MatrixView) EdgeCount() int { return m.edges }

// AddVertex inserts an isolated vertex; existing IDs are a no-op.
// Complexity: O(V) amortized, O(V²) when the matrix grows
func (m *MatrixView) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if m.index.ContainsKey(id) {
		return nil
	}
	n := m.ids.Len()
	if n == m.side {
		m.grow()
	}
	m.index.Insert(id, n)
	m.ids.Append(id)
	m.mods++

	return nil
}

// HasVertex reports whether id is present.
// Complexity: O(1) expected
func (m *MatrixView) HasVertex(id string) bool { return m.index.ContainsKey(id) }

// RemoveVertex deletes id and every incident edge by swapping the last
// row and column into the vacated slot.
// Complexity: O(V)
func (m *MatrixView) RemoveVertex(id string) error {
	idx, err := m.index.Lookup(id)
	if err != nil {
		return ErrVertexNotFound
	}
	n := m.ids.Len()

	// count incident edges before clearing; undirected mirrors at (j, idx)
	// were already counted via their (idx, j) cell
	for j := 0; j < n; j++ {
		if m.cellPresent(idx, j) {
			m.edges--
		}
		if m.opts.Directed && j != idx && m.cellPresent(j, idx) {
			m.edges--
		}
	}

	last := n - 1
	if idx != last {
		// move the last row and column into the vacated slot
		for j := 0; j < n; j++ {
			m.setCell(idx, j, m.cellWeight(last, j), m.cellPresent(last, j))
		}
		for i := 0; i < n; i++ {
			m.setCell(i, idx, m.cellWeight(i, last), m.cellPresent(i, last))
		}
		lastID, _ := m.ids.Get(last)
		_ = m.ids.Set(idx, lastID)
		m.index.Insert(lastID, idx)
	}
	// clear the now dead last row and column
	for k := 0; k < n; k++ {
		m.setCell(last, k, 0, false)
		m.setCell(k, last, 0, false)
	}
	_, _ = m.ids.RemoveAt(last)
	_, _ = m.index.Remove(id)
	m.mods++

	return nil
}

// AddEdge inserts or replaces the edge u→v, adding missing endpoints.
// Undirected edges are mirrored but counted once.
// Complexity: O(1) amortized (O(V²) when an endpoint triggers growth)
func (m *MatrixView) AddEdge(u, v string, weight float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if !m.opts.Weighted && weight != 0 {
		return ErrBadWeight
	}
	if err := m.AddVertex(u); err != nil {
		return err
	}
	if err := m.AddVertex(v); err != nil {
		return err
	}
	i, _ := m.index.Lookup(u)
	j, _ := m.index.Lookup(v)

	if !m.cellPresent(i, j) {
		m.edges++
	}
	m.setCell(i, j, weight, true)
	if !m.opts.Directed && i != j {
		m.setCell(j, i, weight, true)
	}
	m.mods++

	return nil
}

// RemoveEdge deletes u→v and its mirror when undirected.
// Complexity: O(1)
func (m *MatrixView) RemoveEdge(u, v string) error {
	i, j, ok := m.cell(u, v)
	if !ok {
		return ErrEdgeNotFound
	}
	m.setCell(i, j, 0, false)
	if !m.opts.Directed && i != j {
		m.setCell(j, i, 0, false)
	}
	m.edges--
	m.mods++

	return nil
}

// HasEdge reports whether the edge u→v exists.
// Complexity: O(1) expected
func (m *MatrixView) HasEdge(u, v string) bool {
	_, _, ok := m.cell(u, v)

	return ok
}

// Weight returns the weight of u→v, or ErrEdgeNotFound.
// Complexity: O(1) expected
func (m *MatrixView) Weight(u, v string) (float64, error) {
	i, j, ok := m.cell(u, v)
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return m.cellWeight(i, j), nil
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Complexity: O(V log V)
func (m *MatrixView) Neighbors(id string) ([]string, error) {
	i, err := m.index.Lookup(id)
	if err != nil {
		return nil, ErrVertexNotFound
	}
	n := m.ids.Len()
	out := make([]string, 0, n)
	for j := 0; j < n; j++ {
		if m.cellPresent(i, j) {
			nbr, _ := m.ids.Get(j)
			out = append(out, nbr)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all vertex IDs, sorted ascending.
// Complexity: O(V log V)
func (m *MatrixView) Vertices() []string {
	ids := m.ids.Values()
	sort.Strings(ids)

	return ids
}

// Edges returns a fail-fast iterator over all edges in (U, V) order.
func (m *MatrixView) Edges() *EdgeIterator { return newEdgeIterator(m) }

func (m *MatrixView) modCount() uint64 { return m.mods }

// cell resolves (u, v) to matrix coordinates; ok is false when either
// endpoint or the edge itself is absent.
func (m *MatrixView) cell(u, v string) (i, j int, ok bool) {
	i, err := m.index.Lookup(u)
	if err != nil {
		return 0, 0, false
	}
	j, err = m.index.Lookup(v)
	if err != nil {
		return 0, 0, false
	}

	return i, j, m.cellPresent(i, j)
}

// Flat cell accessors. Indices are in range by construction, so the
// array errors are impossible here.

func (m *MatrixView) cellWeight(i, j int) float64 {
	w, _ := m.weights.Get(i*m.side + j)

	return w
}

func (m *MatrixView) cellPresent(i, j int) bool {
	p, _ := m.present.Get(i*m.side + j)

	return p
}

func (m *MatrixView) setCell(i, j int, w float64, p bool) {
	_ = m.weights.Set(i*m.side+j, w)
	_ = m.present.Set(i*m.side+j, p)
}

// grow doubles the matrix side and re-lays the flat arrays.
// Complexity: O(V²)
func (m *MatrixView) grow() {
	oldSide, n := m.side, m.ids.Len()
	newSide := oldSide * 2
	w := make([]float64, newSide*newSide)
	p := make([]bool, newSide*newSide)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w[i*newSide+j] = m.cellWeight(i, j)
			p[i*newSide+j] = m.cellPresent(i, j)
		}
	}
	m.weights = dynarr.FromSlice(w)
	m.present = dynarr.FromSlice(p)
	m.side = newSide
}
