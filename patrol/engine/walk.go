// Package engine simulates a patrol agent on an obstructed grid and
// searches for obstruction placements that trap it in a loop.
//
// The agent starts on the grid's start cell facing up and walks straight
// until the next cell is obstructed, then turns 90° clockwise and
// continues. It leaves the simulation by walking off the grid edge.
package engine

import (
	"iter"

	"gridwarden.com/gwd/pkg/primitives"
)

// Steps returns the lazy sequence of (position, facing) states of an
// agent patrolling g, starting at the grid's start cell facing up. An
// extra obstruction may be supplied without modifying the grid; the
// agent treats it exactly like a real one. Turning in place yields a
// state, so an agent boxed in on all four sides presents as a repeating
// state cycle rather than an unbounded silence.
//
// The sequence is finite when the agent exits through the grid edge and
// infinite when it is trapped; callers bound it with HasLoop. For fixed
// inputs the sequence is identical on every invocation, and independent
// invocations are safe to run concurrently.
func Steps(g *primitives.Grid, obstruction *primitives.Position) iter.Seq[primitives.Step] {
	return func(yield func(primitives.Step) bool) {
		dir := primitives.Up
		anchor := g.Start()

		if !yield(primitives.Step{Pos: anchor, Dir: dir}) {
			return
		}

		for {
			turned := false
			prev := anchor
			head := true
			for cell := range g.WalkRay(anchor, dir) {
				if head {
					// The ray includes its own origin, which was already yielded.
					head = false
					continue
				}
				if g.Obstructed(cell) || (obstruction != nil && cell == *obstruction) {
					dir = dir.Turn()
					anchor = prev
					turned = true
					break
				}
				if !yield(primitives.Step{Pos: cell, Dir: dir}) {
					return
				}
				prev = cell
			}
			if !turned {
				// The ray reached the grid edge: the agent exits.
				return
			}
			if !yield(primitives.Step{Pos: anchor, Dir: dir}) {
				return
			}
		}
	}
}

// Walk returns the lazy sequence of cells an agent patrolling g visits,
// in order, starting with the start cell. Consecutive duplicates from
// turning in place are collapsed; a cell revisited later in the patrol
// is yielded again.
func Walk(g *primitives.Grid, obstruction *primitives.Position) iter.Seq[primitives.Position] {
	return func(yield func(primitives.Position) bool) {
		first := true
		var last primitives.Position
		for s := range Steps(g, obstruction) {
			if !first && s.Pos == last {
				continue
			}
			if !yield(s.Pos) {
				return
			}
			first = false
			last = s.Pos
		}
	}
}
