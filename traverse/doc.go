// Package traverse implements graph traversal and shortest paths over a
// graph.View: breadth-first search, depth-first search, and Dijkstra.
//
// All three are iterative. BFS drives an explicit FIFO queue, DFS an
// explicit stack, and Dijkstra a min-heap priority queue with the
// lazy-decrease-key strategy, so none of them is bounded by goroutine
// stack depth on long vertex chains.
//
// Traversals are deterministic: neighbors are explored in ascending ID
// order (graph.View guarantees sorted Neighbors).
//
// Usage:
//
//	res, err := traverse.BFS(v, "start",
//	    traverse.WithMaxDepth(3),
//	    traverse.WithOnVisit(func(id string, depth int) error {
//	        fmt.Println(id, depth)
//	        return nil
//	    }),
//	)
//
// Complexity:
//
//   - BFS, DFS:  O(V + E) time, O(V) space.
//   - Dijkstra:  O((V + E) log V) time, O(V + E) space.
//
// Errors:
//
//	ErrNilView              - nil view passed.
//	ErrStartVertexNotFound  - start/source vertex is absent.
//	ErrUnweightedView       - Dijkstra on an unweighted view.
//	ErrNegativeWeight       - Dijkstra found a negative edge weight.
//	ErrOptionViolation      - an invalid Option was supplied.
package traverse
