// This file declares the View interface, the Representation enum,
// sentinel errors, construction options, and the New constructor.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrUnknownRepresentation indicates New received an invalid Representation.
	ErrUnknownRepresentation = errors.New("graph: unknown representation")

	// ErrNilView indicates a nil View was passed to a conversion.
	ErrNilView = errors.New("graph: view is nil")

	// ErrEmptyVertexID indicates a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted view.
	ErrBadWeight = errors.New("graph: bad weight for unweighted view")

	// ErrInvalidatedIteration indicates the view was modified while an
	// EdgeIterator was active.
	ErrInvalidatedIteration = errors.New("graph: iteration invalidated by modification")
)

// Representation selects the storage scheme of a View.
// It is a required construction parameter; see the package documentation
// for the trade-offs.
type Representation int

const (
	// AdjacencyList stores per-vertex neighbor tables. O(V+E) space.
	AdjacencyList Representation = iota

	// AdjacencyMatrix stores a flat V×V weight matrix. O(V²) space.
	AdjacencyMatrix
)

// String returns a human-readable representation name.
func (r Representation) String() string {
	switch r {
	case AdjacencyList:
		return "AdjacencyList"
	case AdjacencyMatrix:
		return "AdjacencyMatrix"
	default:
		return "Unknown"
	}
}

// Edge is a snapshot of a single edge as reported by an EdgeIterator.
// For undirected views each edge appears once, with U ≤ V.
type Edge struct {
	U, V   string
	Weight float64
}

// Option configures a View before creation.
type Option func(*Options)

// Options holds the construction flags shared by both representations.
type Options struct {
	// Directed makes edges one-way; undirected edges are mirrored.
	Directed bool

	// Weighted allows non-zero edge weights.
	Weighted bool
}

// DefaultOptions returns the defaults: undirected, unweighted.
func DefaultOptions() Options {
	return Options{}
}

// WithDirected sets the directedness of all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) Option {
	return func(o *Options) { o.Directed = directed }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() Option {
	return func(o *Options) { o.Weighted = true }
}

// View is the operation set common to both graph representations.
//
// Implementations: *ListView (AdjacencyList), *MatrixView (AdjacencyMatrix).
type View interface {
	// AddVertex inserts an isolated vertex. Adding an existing vertex is
	// a no-op. Returns ErrEmptyVertexID for the empty string.
	AddVertex(id string) error

	// HasVertex reports whether id is present.
	HasVertex(id string) bool

	// RemoveVertex deletes a vertex and all incident edges.
	// Returns ErrVertexNotFound when absent.
	RemoveVertex(id string) error

	// AddEdge inserts or replaces the edge u→v (mirrored when the view is
	// undirected). Missing endpoints are added automatically.
	// Returns ErrEmptyVertexID for empty IDs and ErrBadWeight for a
	// non-zero weight on an unweighted view.
	AddEdge(u, v string, weight float64) error

	// RemoveEdge deletes the edge u→v (and its mirror when undirected).
	// Returns ErrEdgeNotFound when absent.
	RemoveEdge(u, v string) error

	// HasEdge reports whether the edge u→v exists.
	HasEdge(u, v string) bool

	// Weight returns the weight of the edge u→v,
	// or ErrEdgeNotFound when absent.
	Weight(u, v string) (float64, error)

	// Neighbors returns the IDs adjacent to id, sorted ascending.
	// For directed views these are out-neighbors.
	// Returns ErrVertexNotFound when id is absent.
	Neighbors(id string) ([]string, error)

	// VertexCount returns the number of vertices.
	VertexCount() int

	// EdgeCount returns the number of edges; an undirected edge and a
	// self-loop each count once.
	EdgeCount() int

	// Vertices returns all vertex IDs, sorted ascending.
	Vertices() []string

	// Edges returns a fail-fast iterator over all edges.
	Edges() *EdgeIterator

	// Directed reports whether edges are one-way.
	Directed() bool

	// Weighted reports whether non-zero weights are allowed.
	Weighted() bool

	// Representation identifies the storage scheme of this view.
	Representation() Representation
}

// New creates an empty View with the requested representation.
// Returns ErrUnknownRepresentation for an invalid rep.
// Complexity: O(1)
func New(rep Representation, opts ...Option) (View, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch rep {
	case AdjacencyList:
		return newListView(o), nil
	case AdjacencyMatrix:
		return newMatrixView(o), nil
	default:
		return nil, ErrUnknownRepresentation
	}
}
