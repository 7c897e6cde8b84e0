// Package graph provides two interchangeable graph representations behind
// a single View interface: an adjacency list and an adjacency matrix.
//
// The representation is a required construction parameter; the package
// never picks one for the caller, because the two trade off differently:
//
//	operation          AdjacencyList       AdjacencyMatrix
//	AddVertex          O(1) amortized      O(V) amortized (O(V²) on grow)
//	RemoveVertex       O(V + E)            O(V)
//	AddEdge            O(1) amortized      O(1)
//	RemoveEdge         O(1) amortized      O(1)
//	HasEdge            O(1) expected       O(1)
//	Neighbors          O(deg·log deg)      O(V)
//	space              O(V + E)            O(V²)
//
// Pick AdjacencyList for sparse graphs and traversals; pick
// AdjacencyMatrix for dense graphs and constant-time edge probes.
//
// Construction:
//
//	v, err := graph.New(graph.AdjacencyList,
//	    graph.WithDirected(false),
//	    graph.WithWeighted(),
//	)
//
// Semantics shared by both views:
//
//   - Vertices are non-empty string IDs (ErrEmptyVertexID otherwise).
//   - AddEdge auto-adds missing endpoints and replaces the weight of an
//     existing edge; undirected edges are mirrored but counted once.
//   - Self-loops are allowed and stored (and counted) once.
//   - Unweighted views reject non-zero weights with ErrBadWeight.
//   - Neighbors and Vertices return sorted IDs for deterministic walks.
//
// ToListView and ToMatrixView convert between representations; the two
// views of the same edge set agree on HasEdge for every vertex pair.
//
// Views are not safe for concurrent use.
package graph
