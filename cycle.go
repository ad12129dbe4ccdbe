package aoc

// Cycle is the orbit of a deterministic step function: States[i] is the state
// after i steps, and from step Start on the orbit repeats every Period steps.
type Cycle[S any] struct {
	Start  int
	Period int
	States []S
}

// DetectCycle steps from start until a state's key repeats. The state space
// reachable from start must be finite. step must not modify its argument.
func DetectCycle[S any, K comparable](start S, step func(S) S, key func(S) K) Cycle[S] {
	seen := make(map[K]int)
	var states []S
	s := start
	for i := 0; ; i++ {
		k := key(s)
		if j, ok := seen[k]; ok {
			return Cycle[S]{
				Start:  j,
				Period: i - j,
				States: states,
			}
		}
		seen[k] = i
		states = append(states, s)
		s = step(s)
	}
}

// At returns the state after n steps.
func (c Cycle[S]) At(n int) S {
	if n < len(c.States) {
		return c.States[n]
	}
	return c.States[c.Start+(n-c.Start)%c.Period]
}
