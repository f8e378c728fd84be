// Package bfs provides tunable options and error definitions
// for breadth-first search over a Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported when no path exists. It is strictly
// greater than any finite distance.
const Unreachable = math.MaxInt

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo when the destination was not reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Graph is a directed, unweighted adjacency relation.
// Neighbors must not be mutated by the search and may return nil.
type Graph[Node comparable] interface {
	Neighbors(n Node) []Node
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option[Node comparable] func(*Options[Node])

// Options holds parameters and callbacks to customize BFS execution.
type Options[Node comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is queued, with its depth from start.
	OnEnqueue func(n Node, depth int)

	// OnDequeue is called immediately before expanding a node.
	OnDequeue func(n Node, depth int)

	// OnVisit is called when expanding a node. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(n Node, depth int) error

	// MaxDepth, if > 0, stops relaxing neighbors beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[Node comparable]() Options[Node] {
	return Options[Node]{
		Ctx:       context.Background(),
		OnEnqueue: func(Node, int) {},
		OnDequeue: func(Node, int) {},
		OnVisit:   func(Node, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[Node comparable](ctx context.Context) Option[Node] {
	return func(o *Options[Node]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[Node comparable](fn func(n Node, depth int)) Option[Node] {
	return func(o *Options[Node]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[Node comparable](fn func(n Node, depth int)) Option[Node] {
	return func(o *Options[Node]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit[Node comparable](fn func(n Node, depth int) error) Option[Node] {
	return func(o *Options[Node]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth bounds the search: nodes farther than d edges from start are
// never recorded.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[Node comparable](d int) Option[Node] {
	return func(o *Options[Node]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a Search:
//   - Order: nodes expanded, in expansion sequence (the end node is never expanded).
//   - Depth: map from node to its distance (in edges) from the start.
//   - Parent: map from node to its predecessor on a shortest route.
type Result[Node comparable] struct {
	Start  Node
	Order  []Node
	Depth  map[Node]int
	Parent map[Node]Node
}

// Distance returns the recorded depth of dest, or Unreachable.
func (r *Result[Node]) Distance(dest Node) int {
	if d, ok := r.Depth[dest]; ok {
		return d
	}
	return Unreachable
}

// PathTo reconstructs the route from the start node to dest, inclusive.
// Returns ErrNoPath if dest was not reached.
func (r *Result[Node]) PathTo(dest Node) ([]Node, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// build reversed path
	path := make([]Node, 0, d+1)
	for cur := dest; ; {
		path = append(path, cur)
		if cur == r.Start {
			break
		}
		cur = r.Parent[cur]
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
