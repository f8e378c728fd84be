package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillclimb/bfs"
)

// adjMap is a directed test graph keyed by node name.
type adjMap map[string][]string

func (g adjMap) Neighbors(n string) []string { return g[n] }

// chain builds the directed path v0→v1→…→v(n-1).
func chain(names ...string) adjMap {
	g := adjMap{}
	for i := 0; i+1 < len(names); i++ {
		g[names[i]] = append(g[names[i]], names[i+1])
	}
	return g
}

// TestShortestPath_Errors verifies that invalid inputs and options are rejected.
func TestShortestPath_Errors(t *testing.T) {
	d, err := bfs.ShortestPath[string](nil, "A", "B")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	require.Equal(t, bfs.Unreachable, d)

	_, err = bfs.ShortestPath(chain("A", "B"), "A", "B", bfs.WithMaxDepth[string](-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	res, err := bfs.Search[string](nil, "A", "B")
	require.ErrorIs(t, err, bfs.ErrGraphNil)
	require.Nil(t, res)
}

// TestShortestPath_SameNode checks that a node is zero steps from itself,
// even when it has no edges at all.
func TestShortestPath_SameNode(t *testing.T) {
	g := adjMap{"A": {"B"}, "B": {"A"}}
	for _, n := range []string{"A", "B", "lonely"} {
		d, err := bfs.ShortestPath(g, n, n)
		require.NoError(t, err)
		require.Equal(t, 0, d, "ShortestPath(%s,%s)", n, n)
	}
}

// TestShortestPath_Unreachable covers a directed edge traversed backwards and
// an end node outside the graph's key domain.
func TestShortestPath_Unreachable(t *testing.T) {
	g := chain("A", "B", "C")

	d, err := bfs.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, 2, d)

	d, err = bfs.ShortestPath(g, "C", "A")
	require.NoError(t, err)
	require.Equal(t, bfs.Unreachable, d)
	require.Greater(t, d, 2)

	d, err = bfs.ShortestPath(g, "A", "Z")
	require.NoError(t, err)
	require.Equal(t, bfs.Unreachable, d)
}

// TestShortestPath_Shortcut checks that the fewest-hop route wins over a
// longer one discovered first.
func TestShortestPath_Shortcut(t *testing.T) {
	// A→B→C→D→E (4 hops) and A→X→E (2 hops)
	g := chain("A", "B", "C", "D", "E")
	g["A"] = append(g["A"], "X")
	g["X"] = []string{"E"}

	res, err := bfs.Search(g, "A", "E")
	require.NoError(t, err)
	require.Equal(t, 2, res.Distance("E"))

	path, err := res.PathTo("E")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "X", "E"}, path)
}

// TestSearch_EndNotExpanded verifies that the end node is recorded but its
// out-edges are never followed.
func TestSearch_EndNotExpanded(t *testing.T) {
	g := chain("A", "B", "C")
	g["B"] = append(g["B"], "D")

	res, err := bfs.Search(g, "A", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, res.Order)
	require.Equal(t, 1, res.Distance("B"))
	require.Equal(t, bfs.Unreachable, res.Distance("C"))
	require.NotContains(t, res.Depth, "D")
}

// TestSearch_OrderAndDepths checks level order on a small cycle.
func TestSearch_OrderAndDepths(t *testing.T) {
	// A↔B, A↔D, B↔C, D↔C
	g := adjMap{
		"A": {"B", "D"},
		"B": {"A", "C"},
		"C": {"B", "D"},
		"D": {"A", "C"},
	}
	res, err := bfs.Search(g, "A", "none")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	require.Equal(t, "B", res.Parent["C"])
	_, hasRootParent := res.Parent["A"]
	require.False(t, hasRootParent)
}

// TestSearch_PathToMissing verifies ErrNoPath and the trivial start route.
func TestSearch_PathToMissing(t *testing.T) {
	res, err := bfs.Search(chain("A", "B"), "A", "B")
	require.NoError(t, err)

	_, err = res.PathTo("Q")
	require.ErrorIs(t, err, bfs.ErrNoPath)

	path, err := res.PathTo("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, path)
}

// TestMaxDepth verifies that nodes beyond the limit are never recorded.
func TestMaxDepth(t *testing.T) {
	g := chain("A", "B", "C", "D")

	d, err := bfs.ShortestPath(g, "A", "C", bfs.WithMaxDepth[string](2))
	require.NoError(t, err)
	require.Equal(t, 2, d)

	d, err = bfs.ShortestPath(g, "A", "D", bfs.WithMaxDepth[string](2))
	require.NoError(t, err)
	require.Equal(t, bfs.Unreachable, d)

	// zero means no limit
	d, err = bfs.ShortestPath(g, "A", "D", bfs.WithMaxDepth[string](0))
	require.NoError(t, err)
	require.Equal(t, 3, d)
}

// TestHooks checks hook invocation counts and abort on OnVisit error.
func TestHooks(t *testing.T) {
	g := chain("A", "B", "C", "D")
	var enq, deq []string
	_, err := bfs.Search(g, "A", "D",
		bfs.WithOnEnqueue(func(n string, _ int) { enq = append(enq, n) }),
		bfs.WithOnDequeue(func(n string, _ int) { deq = append(deq, n) }),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, enq)
	require.Equal(t, enq, deq)

	stop := errors.New("stop")
	_, err = bfs.ShortestPath(g, "A", "D", bfs.WithOnVisit(func(n string, _ int) error {
		if n == "B" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

// TestContextCancel ensures a cancelled context aborts the search.
func TestContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d, err := bfs.ShortestPath(chain("A", "B"), "A", "B", bfs.WithContext[string](ctx))
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, bfs.Unreachable, d)
}
