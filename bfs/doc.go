// Package bfs provides breadth-first shortest-path search over any directed,
// unweighted graph exposed through the Graph interface.
//
// What
//
//   - ShortestPath returns the fewest edge traversals from start to end, or
//     Unreachable when end cannot be reached.
//   - Search runs the same traversal and also returns a Result holding the
//     expansion Order, the Depth of every reached node, and Parent links for
//     route reconstruction via Result.PathTo.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is queued for expansion)
//   - OnDequeue (immediately before expansion)
//   - OnVisit   (during expansion; may abort with an error)
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Relaxation
//
//	A neighbor's depth is recorded when it is first reached or when a shorter
//	candidate arrives. The end node is recorded but never expanded: its
//	outgoing edges cannot shorten the answer. With uniform edge weights and a
//	FIFO queue, the first depth recorded for a node is already minimal.
//
// Determinism
//
//	Neighbors are relaxed in the order Graph.Neighbors returns them, so the
//	expansion order is reproducible for a deterministic graph.
//
// Complexity (V = reached nodes, E = their out-edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)  (queue plus Depth map; Parent and Order for Search)
//
// Usage
//
//	steps, err := bfs.ShortestPath(hm, hm.Start, hm.End)
//	if steps == bfs.Unreachable {
//		// no route
//	}
//
//	res, err := bfs.Search(g, start, end,
//		bfs.WithContext[string](ctx),
//		bfs.WithMaxDepth[string](30),
//		bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//	route, err := res.PathTo(end)
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNoPath           from Result.PathTo when dest was not reached.
//   - context errors, and wrapped user-supplied hook errors from OnVisit.
//
// An unreachable end is not an error.
package bfs
