// Package climb answers the two hill-climbing questions over a HeightMap:
// the fewest steps from the marked start to the goal, and the fewest steps
// from the best lowest-elevation cell to the goal.
//
// Each candidate search in BestStart only reads the shared HeightMap, so
// searches may run on a bounded worker pool (WithWorkers). The answer does
// not depend on the worker count: ties break on row-major candidate order.
package climb
