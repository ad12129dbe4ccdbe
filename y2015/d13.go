package main

import (
	"strings"

	aoc "github.com/maisem/aocsearch"
)

func (s solver) seating() *distances {
	var ds distances
	s.ForLines(func(line string) {
		// Alice would gain 54 happiness units by sitting next to Bob.
		f := strings.Fields(strings.TrimSuffix(line, "."))
		if len(f) != 11 {
			return
		}
		h := aoc.Int(f[3])
		if f[2] == "lose" {
			h = -h
		}
		// Both neighbors feel the pair, so store the sum both ways.
		ds.add(f[0], f[10], h)
		ds.add(f[10], f[0], h)
	})
	return &ds
}

func happiest(ds *distances) int {
	return ds.bestTour(true, func(a, b int) int { return max(a, b) })
}

/*
want=330

Alice would gain 54 happiness units by sitting next to Bob.
Alice would lose 79 happiness units by sitting next to Carol.
Alice would lose 2 happiness units by sitting next to David.
Bob would gain 83 happiness units by sitting next to Alice.
Bob would lose 7 happiness units by sitting next to Carol.
Bob would lose 63 happiness units by sitting next to David.
Carol would lose 62 happiness units by sitting next to Alice.
Carol would gain 60 happiness units by sitting next to Bob.
Carol would gain 55 happiness units by sitting next to David.
David would gain 46 happiness units by sitting next to Alice.
David would lose 7 happiness units by sitting next to Bob.
David would gain 41 happiness units by sitting next to Carol.
*/
func (s solver) D13p1() any {
	return happiest(s.seating())
}

// want=286
func (s solver) D13p2() any {
	ds := s.seating()
	ds.place("me")
	return happiest(ds)
}
