package aoc

// ReachMode selects which states Reach reports.
type ReachMode int

const (
	// Within reports every state at most the given number of steps away.
	Within ReachMode = iota
	// Exact reports the states a walk of exactly the given number of steps
	// can end on, assuming every move can be undone: those at most that far
	// away whose distance has the same parity.
	Exact
)

func (m ReachMode) String() string {
	switch m {
	case Within:
		return "within"
	case Exact:
		return "exact"
	}
	return "unknown"
}

// BFS is an unweighted state space explored one layer at a time.
type BFS[S comparable] struct {
	// Next calls yield with each neighbor of s. It must stop when yield
	// returns false. Boundaries, including wrapping, are its concern.
	Next func(s S, yield func(next S) bool)
}

// Layers calls fn with each layer of states, in order of distance from
// starts. A state is marked seen when it is first enqueued, so it appears in
// exactly one layer. Layers stops when fn returns false or no states remain.
func (b BFS[S]) Layers(starts []S, fn func(depth int, layer []S) bool) {
	seen := make(map[S]bool, len(starts))
	q := NewQueue[S]()
	for _, s := range starts {
		if !seen[s] {
			seen[s] = true
			q.Push(s)
		}
	}
	for depth := 0; q.Len() > 0; depth++ {
		n := q.Len()
		layer := make([]S, 0, n)
		for i := 0; i < n; i++ {
			s, _ := q.Pop()
			layer = append(layer, s)
		}
		if !fn(depth, layer) {
			return
		}
		for _, s := range layer {
			b.Next(s, func(next S) bool {
				if !seen[next] {
					seen[next] = true
					q.Push(next)
				}
				return true
			})
		}
	}
}

// Distances returns the distance of every state at most limit steps from
// starts. A negative limit explores everything reachable.
func (b BFS[S]) Distances(limit int, starts ...S) map[S]int {
	dist := make(map[S]int)
	b.Layers(starts, func(depth int, layer []S) bool {
		for _, s := range layer {
			dist[s] = depth
		}
		return limit < 0 || depth < limit
	})
	return dist
}

// Reach returns the states reachable from starts in steps moves, as selected
// by mode, in order of distance.
func (b BFS[S]) Reach(steps int, mode ReachMode, starts ...S) []S {
	var out []S
	b.Layers(starts, func(depth int, layer []S) bool {
		if mode == Within || depth%2 == steps%2 {
			out = append(out, layer...)
		}
		return depth < steps
	})
	return out
}
