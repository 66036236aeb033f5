package gwd

import (
	"context"

	"gridwarden.com/gwd/patrol/engine"
	"gridwarden.com/gwd/pkg/primitives"
)

// Report holds the results of both passes over one patrol map.
type Report struct {
	Visited int `json:"visited"`
	Loops   int `json:"loops"`
}

// Solve runs the unobstructed patrol and then the candidate search on
// the given number of workers.
func Solve(ctx context.Context, g *primitives.Grid, workers int) (Report, error) {
	visited := engine.VisitedCells(g)
	loops, err := engine.RunSearch(ctx, g, engine.Candidates(g, visited), workers)
	if err != nil {
		return Report{}, err
	}
	return Report{Visited: visited.Count(), Loops: loops}, nil
}
