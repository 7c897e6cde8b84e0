package graph

import (
	"sort"

	"github.com/vaskorr/collections/hashtable"
)

// ListView is the AdjacencyList representation: a hash table keyed by
// vertex ID, whose values are per-vertex neighbor tables mapping neighbor
// ID to edge weight. Space: O(V + E).
type ListView struct {
	opts  Options
	adj   *hashtable.Table[string, *hashtable.Table[string, float64]]
	edges int
	mods  uint64
}

// newListView builds an empty adjacency-list view.
func newListView(o Options) *ListView {
	// static hash/eq arguments cannot fail validation
	adj, _ := hashtable.New[string, *hashtable.Table[string, float64]](
		hashtable.StringHash, hashtable.StringEq)

	return &ListView{opts: o, adj: adj}
}

// Directed reports whether edges are one-way.
func (g *ListView) Directed() bool { return g.opts.Directed }

// Weighted reports whether non-zero weights are allowed.
func (g *ListView) Weighted() bool { return g.opts.Weighted }

// Representation returns AdjacencyList.
func (g *ListView) Representation() Representation { return AdjacencyList }

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *ListView) VertexCount() int { return g.adj.Len() }

// EdgeCount returns the number of edges; undirected edges count once.
// Complexity: O(1)
func (g *ListView) EdgeCount() int { return g.edges }

// AddVertex inserts an isolated vertex; existing IDs are a no-op.
// Complexity: O(1) amortized
func (g *ListView) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if g.adj.ContainsKey(id) {
		return nil
	}
	g.insertRow(id)
	g.mods++

	return nil
}

// HasVertex reports whether id is present.
// Complexity: O(1) expected
func (g *ListView) HasVertex(id string) bool { return g.adj.ContainsKey(id) }

// RemoveVertex deletes id and every incident edge.
// Complexity: O(V + E) worst case (directed in-edge scan)
func (g *ListView) RemoveVertex(id string) error {
	row, err := g.adj.Remove(id)
	if err != nil {
		return ErrVertexNotFound
	}
	// out-edges (undirected: all incident edges, loop included once)
	g.edges -= row.Len()
	if g.opts.Directed {
		// in-edges live in other rows and are not mirrored
		it := g.adj.Iterator()
		for it.Next() {
			if _, err = it.Value().Remove(id); err == nil {
				g.edges--
			}
		}
	} else {
		// drop the mirrors of the removed row
		for _, nbr := range row.Keys() {
			if nbr == id {
				continue // loop had no mirror
			}
			if other, lerr := g.adj.Lookup(nbr); lerr == nil {
				_, _ = other.Remove(id)
			}
		}
	}
	g.mods++

	return nil
}

// AddEdge inserts or replaces the edge u→v, adding missing endpoints.
// Undirected edges are mirrored but counted once.
// Complexity: O(1) amortized
func (g *ListView) AddEdge(u, v string, weight float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if !g.opts.Weighted && weight != 0 {
		return ErrBadWeight
	}
	rowU := g.ensureRow(u)
	rowV := g.ensureRow(v)

	if !rowU.ContainsKey(v) {
		g.edges++
	}
	rowU.Insert(v, weight)
	if !g.opts.Directed && u != v {
		rowV.Insert(u, weight)
	}
	g.mods++

	return nil
}

// RemoveEdge deletes u→v and its mirror when undirected.
// Complexity: O(1) amortized
func (g *ListView) RemoveEdge(u, v string) error {
	rowU, err := g.adj.Lookup(u)
	if err != nil {
		return ErrEdgeNotFound
	}
	if _, err = rowU.Remove(v); err != nil {
		return ErrEdgeNotFound
	}
	if !g.opts.Directed && u != v {
		if rowV, lerr := g.adj.Lookup(v); lerr == nil {
			_, _ = rowV.Remove(u)
		}
	}
	g.edges--
	g.mods++

	return nil
}

// HasEdge reports whether the edge u→v exists.
// Complexity: O(1) expected
func (g *ListView) HasEdge(u, v string) bool {
	row, err := g.adj.Lookup(u)
	if err != nil {
		return false
	}

	return row.ContainsKey(v)
}

// Weight returns the weight of u→v, or ErrEdgeNotFound.
// Complexity: O(1) expected
func (g *ListView) Weight(u, v string) (float64, error) {
	row, err := g.adj.Lookup(u)
	if err != nil {
		return 0, ErrEdgeNotFound
	}
	w, err := row.Lookup(v)
	if err != nil {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Neighbors returns the IDs adjacent to id, sorted ascending.
// Complexity: O(deg · log deg)
func (g *ListView) Neighbors(id string) ([]string, error) {
	row, err := g.adj.Lookup(id)
	if err != nil {
		return nil, ErrVertexNotFound
	}
	ids := row.Keys()
	sort.Strings(ids)

	return ids, nil
}

// Vertices returns all vertex IDs, sorted ascending.
// Complexity: O(V log V)
func (g *ListView) Vertices() []string {
	ids := g.adj.Keys()
	sort.Strings(ids)

	return ids
}

// Edges returns a fail-fast iterator over all edges in (U, V) order.
func (g *ListView) Edges() *EdgeIterator { return newEdgeIterator(g) }

func (g *ListView) modCount() uint64 { return g.mods }

// ensureRow returns the neighbor table for id, creating it if absent.
func (g *ListView) ensureRow(id string) *hashtable.Table[string, float64] {
	if row, err := g.adj.Lookup(id); err == nil {
		return row
	}

	return g.insertRow(id)
}

func (g *ListView) insertRow(id string) *hashtable.Table[string, float64] {
	row, _ := hashtable.New[string, float64](hashtable.StringHash, hashtable.StringEq)
	g.adj.Insert(id, row)

	return row
}
