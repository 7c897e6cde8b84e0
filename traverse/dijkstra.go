package traverse

import (
	"cmp"
	"fmt"
	"math"

	"github.com/vaskorr/collections/binheap"
	"github.com/vaskorr/collections/graph"
	"github.com/vaskorr/collections/hashtable"
)

// heapItem is a (vertex, tentative distance) pair in the priority queue.
type heapItem struct {
	id   string
	dist float64
}

// DistResult holds single-source shortest-path distances:
//   - Dist: map from vertex ID to minimum distance from the source
//     (math.Inf(1) for unreachable vertices).
//   - Parent: map from vertex ID to its predecessor on a shortest path.
type DistResult struct {
	Dist   map[string]float64
	Parent map[string]string
}

// PathTo reconstructs a shortest path from the source to dest.
// Returns an error if dest is unreachable.
func (r *DistResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok || math.IsInf(d, 1) {
		return nil, fmt.Errorf("traverse: no path to %q", dest)
	}

	return walkParents(r.Parent, dest), nil
}

// Dijkstra computes shortest distances from source to every vertex of
// the weighted view v.
//
// The priority queue follows the lazy-decrease-key strategy: a relaxation
// pushes a fresh heap entry instead of reordering the old one, and stale
// entries are skipped when popped. The heap therefore holds up to E
// entries.
//
// Preconditions, checked in order:
//  1. v must be non-nil (ErrNilView).
//  2. v must be weighted (ErrUnweightedView).
//  3. v must contain source (ErrStartVertexNotFound).
//  4. No edge may have negative weight (ErrNegativeWeight, upfront scan).
//
// Complexity: O((V + E) log V) time, O(V + E) space
func Dijkstra(v graph.View, source string) (*DistResult, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if !v.Weighted() {
		return nil, ErrUnweightedView
	}
	if !v.HasVertex(source) {
		return nil, ErrStartVertexNotFound
	}
	// fail fast on negative weights before touching any state
	it := v.Edges()
	for it.Next() {
		if e := it.Value(); e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	vertices := v.Vertices()
	res := &DistResult{
		Dist:   make(map[string]float64, len(vertices)),
		Parent: make(map[string]string, len(vertices)),
	}
	for _, id := range vertices {
		res.Dist[id] = math.Inf(1)
	}
	res.Dist[source] = 0

	// static arguments cannot fail validation
	finalized, _ := hashtable.NewSet[string](hashtable.StringHash, hashtable.StringEq)
	pq, _ := binheap.New(func(a, b heapItem) int { return cmp.Compare(a.dist, b.dist) }, binheap.Min)
	pq.Push(heapItem{id: source, dist: 0})

	for !pq.IsEmpty() {
		item, err := pq.Pop()
		if err != nil {
			return nil, err
		}
		if finalized.Contains(item.id) {
			continue // stale lazy-decrease-key entry
		}
		finalized.Add(item.id)

		neighbors, err := v.Neighbors(item.id)
		if err != nil {
			return nil, fmt.Errorf("traverse: failed to get neighbors of %q: %w", item.id, err)
		}
		for _, nbr := range neighbors {
			w, werr := v.Weight(item.id, nbr)
			if werr != nil {
				return nil, werr
			}
			next := item.dist + w
			if next >= res.Dist[nbr] {
				continue // not strictly better, skip the duplicate push
			}
			res.Dist[nbr] = next
			res.Parent[nbr] = item.id
			pq.Push(heapItem{id: nbr, dist: next})
		}
	}

	return res, nil
}
