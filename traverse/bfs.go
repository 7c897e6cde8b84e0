package traverse

import (
	"context"
	"fmt"

	"github.com/vaskorr/collections/graph"
	"github.com/vaskorr/collections/hashtable"
	"github.com/vaskorr/collections/list"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// bfsWalker encapsulates mutable BFS state.
type bfsWalker struct {
	view    graph.View
	opts    Options
	ctx     context.Context
	queue   *list.List[queueItem]
	visited *hashtable.Set[string]
	res     *Result
}

// BFS runs breadth-first search on v starting from start, applying any
// number of functional Options. Vertices are visited in increasing
// distance from start, neighbors in ascending ID order.
//
// Returns ErrNilView or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
// Complexity: O(V + E)
func BFS(v graph.View, start string, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, ErrNilView
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !v.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := v.VertexCount()
	// static hash/eq arguments cannot fail validation
	visited, _ := hashtable.NewSet[string](hashtable.StringHash, hashtable.StringEq)
	w := &bfsWalker{
		view:    v,
		opts:    o,
		ctx:     o.Ctx,
		queue:   list.New[queueItem](),
		visited: visited,
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// seed the queue with the start vertex (no parent)
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, and appends
// it to the FIFO queue.
func (w *bfsWalker) enqueue(id string, d int, parent string) {
	w.visited.Add(id)
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue.PushBack(queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *bfsWalker) loop() error {
	for !w.queue.IsEmpty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, err := w.queue.PopFront()
		if err != nil {
			return err
		}
		if err = w.visit(item); err != nil {
			return err
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *bfsWalker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor of item in ascending ID order.
func (w *bfsWalker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.view.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("traverse: failed to get neighbors of %q: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if !w.visited.Contains(nbr) {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}

	return nil
}
