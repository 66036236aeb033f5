package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"gridwarden.com/gwd/pkg/primitives"
)

// ErrBadCandidate is returned when a candidate obstruction is the start
// cell, outside the grid, or already obstructed.
var ErrBadCandidate = errors.New("invalid obstruction candidate")

// VisitedCells runs the unobstructed patrol and returns the set of
// cells the agent visits before exiting.
func VisitedCells(g *primitives.Grid) *primitives.CellSet {
	visited := primitives.NewCellSet(g.Rows(), g.Cols())
	for p := range Walk(g, nil) {
		visited.Add(p)
	}
	return visited
}

// Candidates returns the obstruction placements worth testing: every
// visited cell except the start. A cell the unobstructed patrol never
// touches cannot change its outcome, so it is pruned up front.
func Candidates(g *primitives.Grid, visited *primitives.CellSet) []primitives.Position {
	candidates := make([]primitives.Position, 0, visited.Count())
	for p := range visited.All() {
		if p != g.Start() {
			candidates = append(candidates, p)
		}
	}
	return candidates
}

// CausesLoop reports whether obstructing the candidate cell traps the
// agent in a permanent cycle. The candidate must be an open, in-bounds
// cell other than the start; anything else is ErrBadCandidate.
func CausesLoop(g *primitives.Grid, candidate primitives.Position) (bool, error) {
	switch {
	case candidate == g.Start():
		return false, fmt.Errorf("%w: %s is the start cell", ErrBadCandidate, candidate)
	case !g.InBounds(candidate):
		return false, fmt.Errorf("%w: %s is out of bounds", ErrBadCandidate, candidate)
	case g.Obstructed(candidate):
		return false, fmt.Errorf("%w: %s is already obstructed", ErrBadCandidate, candidate)
	}
	return HasLoop(Steps(g, &candidate)), nil
}

// RunSearch evaluates every candidate obstruction on a pool of workers
// and returns how many of them cause a loop.
//
// Each evaluation is a pure function of (grid, candidate) with no state
// shared between candidates, so the count is identical for any worker
// count ≥ 1. If any evaluation fails, the whole search fails: a wrong
// aggregate is worse than no aggregate. Cancelling ctx abandons the
// remaining candidates and returns ctx's error.
func RunSearch(ctx context.Context, g *primitives.Grid, candidates []primitives.Position, workers int) (int, error) {
	if workers < 1 {
		workers = 1
	}

	tasks := make(chan primitives.Position)
	var loops atomic.Int64

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		// Closing the channel is the exhaustion sentinel each worker
		// consumes once before exiting.
		defer close(tasks)
		for _, candidate := range candidates {
			select {
			case tasks <- candidate:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for range workers {
		eg.Go(func() error {
			for candidate := range tasks {
				trapped, err := CausesLoop(g, candidate)
				if err != nil {
					return err
				}
				if trapped {
					loops.Add(1)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return int(loops.Load()), nil
}
