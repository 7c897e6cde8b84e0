package traverse

import (
	"context"
	"fmt"

	"github.com/vaskorr/collections/dynarr"
	"github.com/vaskorr/collections/graph"
	"github.com/vaskorr/collections/hashtable"
)

// stackFrame pairs a vertex ID with its depth and discovering parent.
type stackFrame struct {
	id     string
	depth  int
	parent string // empty for root
}

// dfsWalker encapsulates mutable DFS state.
type dfsWalker struct {
	view    graph.View
	opts    Options
	ctx     context.Context
	stack   *dynarr.Array[stackFrame]
	visited *hashtable.Set[string]
	res     *Result
}

// DFS runs iterative pre-order depth-first search on v starting from
// start. The explicit stack replaces recursion, so arbitrarily deep
// graphs cannot overflow the goroutine stack. Among unvisited neighbors
// the smallest ID is explored first, matching the recursive order.
//
// Returns ErrNilView or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
// Complexity: O(V + E)
func DFS(v graph.View, start string, opts ...Option) (*Result, error) {
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
	stack, _ := dynarr.New[stackFrame](n)
	w := &dfsWalker{
		view:    v,
		opts:    o,
		ctx:     o.Ctx,
		stack:   stack,
		visited: visited,
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.stack.Append(stackFrame{id: start, depth: 0})

	return w.res, w.loop()
}

// loop pops frames until the stack drains, an error occurs, or the
// context is cancelled. A vertex may sit on the stack several times;
// only its first pop visits it.
func (w *dfsWalker) loop() error {
	for !w.stack.IsEmpty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		frame, err := w.stack.RemoveAt(w.stack.Len() - 1)
		if err != nil {
			return err
		}
		if w.visited.Contains(frame.id) {
			continue // stale stack entry
		}
		if err = w.visit(frame); err != nil {
			return err
		}
		if err = w.pushNeighbors(frame); err != nil {
			return err
		}
	}

	return nil
}

// visit marks the frame's vertex, records it, and calls OnVisit.
func (w *dfsWalker) visit(frame stackFrame) error {
	w.visited.Add(frame.id)
	w.res.Order = append(w.res.Order, frame.id)
	w.res.Depth[frame.id] = frame.depth
	if frame.parent != "" {
		w.res.Parent[frame.id] = frame.parent
	}
	if err := w.opts.OnVisit(frame.id, frame.depth); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %q: %w", frame.id, err)
	}

	return nil
}

// pushNeighbors stacks the unvisited neighbors of frame in descending
// ID order, so the smallest ID is popped and explored first.
func (w *dfsWalker) pushNeighbors(frame stackFrame) error {
	neighbors, err := w.view.Neighbors(frame.id)
	if err != nil {
		return fmt.Errorf("traverse: failed to get neighbors of %q: %w", frame.id, err)
	}
	nextDepth := frame.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for i := len(neighbors) - 1; i >= 0; i-- {
		nbr := neighbors[i]
		if !w.opts.FilterNeighbor(frame.id, nbr) {
			continue
		}
		if !w.visited.Contains(nbr) {
			w.stack.Append(stackFrame{id: nbr, depth: nextDepth, parent: frame.id})
		}
	}

	return nil
}
