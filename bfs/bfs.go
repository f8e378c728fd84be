// Package bfs provides breadth-first search over a Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its BFS depth.
type queueItem[Node comparable] struct {
	node  Node
	depth int
}

// walker encapsulates mutable BFS state. Every call owns its own walker,
// so concurrent searches over a shared read-only Graph are safe.
type walker[Node comparable] struct {
	graph  Graph[Node]
	end    Node
	opts   Options[Node]
	ctx    context.Context
	queue  []queueItem[Node]
	depth  map[Node]int
	record bool // keep Order and Parent
	res    *Result[Node]
}

// ShortestPath returns the minimum number of edges from start to end in g,
// or Unreachable if end cannot be reached. ShortestPath(g, s, s) is 0.
// Returns ErrGraphNil, ErrOptionViolation, a context error, or a hook error.
func ShortestPath[Node comparable](g Graph[Node], start, end Node, opts ...Option[Node]) (int, error) {
	w, err := newWalker(g, start, end, false, opts)
	if err != nil {
		return Unreachable, err
	}
	if err := w.loop(); err != nil {
		return Unreachable, err
	}
	return w.res.Distance(end), nil
}

// Search runs the same traversal as ShortestPath and returns the full Result.
// On error the partial Result is returned alongside it.
func Search[Node comparable](g Graph[Node], start, end Node, opts ...Option[Node]) (*Result[Node], error) {
	w, err := newWalker(g, start, end, true, opts)
	if err != nil {
		return nil, err
	}
	return w.res, w.loop()
}

// newWalker validates input and options and seeds the queue with start.
func newWalker[Node comparable](g Graph[Node], start, end Node, record bool, opts []Option[Node]) (*walker[Node], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[Node]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	depth := make(map[Node]int)
	w := &walker[Node]{
		graph:  g,
		end:    end,
		opts:   o,
		ctx:    o.Ctx,
		depth:  depth,
		record: record,
		res:    &Result[Node]{Start: start, Depth: depth},
	}
	if record {
		w.res.Parent = make(map[Node]Node)
	}

	w.depth[start] = 0
	w.enqueue(start, 0)

	return w, nil
}

// enqueue calls OnEnqueue and adds n to the queue.
func (w *walker[Node]) enqueue(n Node, d int) {
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[Node]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[Node]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.relaxNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[Node]) dequeue() queueItem[Node] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)
	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[Node]) visit(item queueItem[Node]) error {
	if w.record {
		w.res.Order = append(w.res.Order, item.node)
	}
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}
	return nil
}

// relaxNeighbors records every neighbor that is unseen or now reachable in
// fewer steps, and queues it unless it is the end node.
func (w *walker[Node]) relaxNeighbors(item queueItem[Node]) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.node) {
		if d, seen := w.depth[nbr]; seen && next >= d {
			continue
		}
		w.depth[nbr] = next
		if w.record {
			w.res.Parent[nbr] = item.node
		}
		if nbr != w.end {
			w.enqueue(nbr, next)
		}
	}
}
