package climb

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

var (
	// ErrNilHeightMap is returned when a nil *HeightMap is passed.
	ErrNilHeightMap = errors.New("climb: height map is nil")
	// ErrBadWorkers is returned for a worker count below one.
	ErrBadWorkers = errors.New("climb: workers must be at least 1")
)

// Report holds both answers for one height map. Unreachable results are
// bfs.Unreachable.
type Report struct {
	// FromStart is the fewest steps from the 'S' cell to the goal.
	FromStart int
	// BestStart is the fewest steps from any lowest-elevation cell.
	BestStart int
	// Best is the candidate achieving BestStart. It is the Start cell when
	// no candidate reaches the goal.
	Best heightmap.Cell
	// Candidates is the number of lowest-elevation cells searched.
	Candidates int
}

// FromStart returns the fewest steps from hm.Start to hm.End.
func FromStart(ctx context.Context, hm *heightmap.HeightMap) (int, error) {
	if hm == nil {
		return bfs.Unreachable, ErrNilHeightMap
	}
	return bfs.ShortestPath(hm, hm.Start, hm.End, bfs.WithContext[heightmap.Cell](ctx))
}

// BestStart searches from every lowest-elevation cell, including Start, and
// returns the minimum step count and the cell achieving it. Unreachable
// candidates never win; if none reaches the goal the result is
// bfs.Unreachable and hm.Start.
func BestStart(ctx context.Context, hm *heightmap.HeightMap, opts ...Option) (int, heightmap.Cell, error) {
	if hm == nil {
		return bfs.Unreachable, heightmap.Cell{}, ErrNilHeightMap
	}
	o, err := buildOptions(opts)
	if err != nil {
		return bfs.Unreachable, hm.Start, err
	}
	candidates := hm.CellsAt(heightmap.Lowest)

	var dist []int
	if o.workers > 1 {
		dist, err = searchParallel(ctx, hm, candidates, o.workers)
	} else {
		dist, err = searchSequential(ctx, hm, candidates)
	}
	if err != nil {
		return bfs.Unreachable, hm.Start, err
	}

	best, from := bfs.Unreachable, hm.Start
	for i, d := range dist {
		if d < best {
			best, from = d, candidates[i]
		}
	}
	o.logger.WithFields(log.Fields{
		"candidates": len(candidates),
		"workers":    o.workers,
		"best":       from,
		"steps":      best,
	}).Debug("searched lowest-elevation starts")

	return best, from, nil
}

// searchSequential runs one search per candidate in order. Each search is
// bounded by the best distance found so far, since a candidate that cannot
// beat it is never selected.
func searchSequential(ctx context.Context, hm *heightmap.HeightMap, candidates []heightmap.Cell) ([]int, error) {
	dist := make([]int, len(candidates))
	best := bfs.Unreachable
	for i, c := range candidates {
		opts := []bfs.Option[heightmap.Cell]{bfs.WithContext[heightmap.Cell](ctx)}
		if best != bfs.Unreachable && best > 1 {
			opts = append(opts, bfs.WithMaxDepth[heightmap.Cell](best-1))
		}
		d, err := bfs.ShortestPath(hm, c, hm.End, opts...)
		if err != nil {
			return nil, err
		}
		dist[i] = d
		if d < best {
			best = d
		}
	}
	return dist, nil
}

// searchParallel fans candidate searches out to at most workers goroutines.
// Each search writes only its own slot of the result.
func searchParallel(ctx context.Context, hm *heightmap.HeightMap, candidates []heightmap.Cell, workers int) ([]int, error) {
	dist := make([]int, len(candidates))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range candidates {
		g.Go(func() error {
			d, err := bfs.ShortestPath(hm, c, hm.End, bfs.WithContext[heightmap.Cell](ctx))
			dist[i] = d
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dist, nil
}

// Solve computes both answers for hm, in order.
func Solve(ctx context.Context, hm *heightmap.HeightMap, opts ...Option) (*Report, error) {
	if hm == nil {
		return nil, ErrNilHeightMap
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	first, err := FromStart(ctx, hm)
	if err != nil {
		return nil, err
	}
	o.logger.WithFields(log.Fields{"start": hm.Start, "end": hm.End, "steps": first}).
		Debug("searched from start")

	best, from, err := BestStart(ctx, hm, opts...)
	if err != nil {
		return nil, err
	}
	return &Report{
		FromStart:  first,
		BestStart:  best,
		Best:       from,
		Candidates: len(hm.CellsAt(heightmap.Lowest)),
	}, nil
}
