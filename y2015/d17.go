package main

import (
	aoc "github.com/maisem/aocsearch"
)

type fillKey struct {
	i, left int
}

// fillings tallies the subsets of sizes that add up to exactly target.
func fillings(sizes []int, target int) aoc.Tally {
	m := aoc.NewMemo(func(k fillKey) (aoc.Tally, bool) {
		switch {
		case k.left == 0:
			return aoc.Done(), true
		case k.left < 0 || k.i == len(sizes):
			return aoc.Tally{}, true
		}
		return aoc.Tally{}, false
	}, func(k fillKey, recurse func(fillKey) aoc.Tally) aoc.Tally {
		skip := recurse(fillKey{k.i + 1, k.left})
		take := recurse(fillKey{k.i + 1, k.left - sizes[k.i]}).Using(1)
		return skip.Merge(take)
	})
	return m.Get(fillKey{0, target})
}

func (s solver) containers() aoc.Tally {
	var sizes []int
	s.ForLines(func(line string) {
		sizes = append(sizes, aoc.Int(line))
	})
	target := 150
	if s.SampleMode {
		target = 25
	}
	t := fillings(sizes, target)
	s.Debugf("%d containers: %+v", len(sizes), t)
	return t
}

/*
want=4

20
15
10
5
5
*/
func (s solver) D17p1() any {
	return s.containers().Ways
}

// want=3
func (s solver) D17p2() any {
	return s.containers().AtFewest
}
