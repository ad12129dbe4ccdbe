package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreachable is returned when the frontier empties before any goal
	// state is reached. It means the state space was modeled wrong, not that
	// the answer is zero.
	ErrUnreachable = errors.New("aoc: goal unreachable")

	// ErrNegativeCost is returned when a seed or transition has a negative cost.
	ErrNegativeCost = errors.New("aoc: negative cost")
)

// Seed is a start state and the cost already paid to be there.
type Seed[S comparable] struct {
	State S
	Cost  int
}

// Weighted is a state space with non-negative transition costs, searched in
// order of cumulative cost (Dijkstra).
type Weighted[S comparable] struct {
	// Next calls yield with each successor of s and the cost of moving to it.
	// It must stop when yield returns false.
	Next func(s S, yield func(next S, cost int) bool)

	// Goal reports whether s ends the search.
	Goal func(s S) bool

	// Less, if non-nil, orders states of equal cumulative cost. Remaining
	// ties pop in insertion order.
	Less func(a, b S) bool
}

// Result is the outcome of a successful weighted search.
type Result[S comparable] struct {
	Cost     int // minimum cost of any goal state
	State    S   // the goal state reached at Cost
	Expanded int // states finalized before the goal was popped
}

type frontierEntry[S comparable] struct {
	state S
	seq   int
}

// Run returns the cheapest goal state reachable from starts. All seeds are
// queued before the first pop. It returns ErrUnreachable if no goal state can
// be reached.
func (w Weighted[S]) Run(starts ...Seed[S]) (Result[S], error) {
	var (
		res   Result[S]
		found bool
	)
	n, err := w.explore(starts, func(s S, cost int) bool {
		if w.Goal(s) {
			res.State, res.Cost = s, cost
			found = true
			return false
		}
		return true
	})
	res.Expanded = n
	if err != nil {
		return res, err
	}
	if !found {
		return res, ErrUnreachable
	}
	return res, nil
}

// Distances exhausts the state space reachable from starts and returns the
// minimum cost of every state in it. Goal is not consulted.
func (w Weighted[S]) Distances(starts ...Seed[S]) (map[S]int, error) {
	dist := make(map[S]int)
	_, err := w.explore(starts, func(s S, cost int) bool {
		dist[s] = cost
		return true
	})
	return dist, err
}

// explore pops states in cost order, calling visit once per state with its
// final cost. It stops when visit returns false or the frontier is empty, and
// returns the number of states expanded.
func (w Weighted[S]) explore(starts []Seed[S], visit func(s S, cost int) bool) (int, error) {
	frontier := NewPQ(func(a, b *PQI[frontierEntry[S]]) bool {
		if a.P != b.P {
			return a.P < b.P
		}
		if w.Less != nil {
			if w.Less(a.V.state, b.V.state) {
				return true
			}
			if w.Less(b.V.state, a.V.state) {
				return false
			}
		}
		return a.V.seq < b.V.seq
	})
	seq := 0
	push := func(s S, cost int) {
		frontier.Push(&PQI[frontierEntry[S]]{
			V: frontierEntry[S]{state: s, seq: seq},
			P: cost,
		})
		seq++
	}
	for _, st := range starts {
		if st.Cost < 0 {
			return 0, fmt.Errorf("%w: seed %v costs %d", ErrNegativeCost, st.State, st.Cost)
		}
		push(st.State, st.Cost)
	}

	var (
		finalized = make(map[S]bool)
		expanded  int
		err       error
	)
	for frontier.Len() > 0 {
		it := frontier.Pop()
		s, cost := it.V.state, it.P
		if finalized[s] {
			continue // stale entry
		}
		if !visit(s, cost) {
			return expanded, nil
		}
		finalized[s] = true
		expanded++
		w.Next(s, func(next S, c int) bool {
			if c < 0 {
				err = fmt.Errorf("%w: %v -> %v costs %d", ErrNegativeCost, s, next, c)
				return false
			}
			if !finalized[next] {
				push(next, cost+c)
			}
			return true
		})
		if err != nil {
			return expanded, err
		}
	}
	return expanded, nil
}
