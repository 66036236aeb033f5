package engine

import "iter"

// HasLoop reports whether seq repeats an element before terminating.
// It consumes seq eagerly and returns true the moment any element is
// seen a second time, without draining the rest of the sequence.
//
// Fed with the (position, facing) states of Steps, a repeat means the
// deterministic patrol has entered a permanent cycle: the agent will
// never exit. Feeding positions alone would over-report — crossing a
// previously visited cell from a different direction is not a loop.
func HasLoop[T comparable](seq iter.Seq[T]) bool {
	visited := make(map[T]struct{})
	for e := range seq {
		if _, ok := visited[e]; ok {
			return true
		}
		visited[e] = struct{}{}
	}
	return false
}
