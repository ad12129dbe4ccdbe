package main

import (
	"math"
	"strings"

	aoc "github.com/maisem/aocsearch"
)

// winningHolds returns how many whole-millisecond button holds beat the
// record distance in a race lasting t. Holding h travels h*(t-h), so the
// winners lie strictly between the roots of h^2 - t*h + record.
func winningHolds(t, record int) int {
	if t*t < 4*record {
		return 0
	}
	hi, lo := aoc.SolveQuad(1, -t, record)
	n := int(math.Ceil(hi)) - int(math.Floor(lo)) - 1
	return max(n, 0)
}

func (s solver) races() (times, records []string) {
	s.ForLines(func(line string) {
		k, v, _ := strings.Cut(line, ":")
		switch k {
		case "Time":
			times = strings.Fields(v)
		case "Distance":
			records = strings.Fields(v)
		}
	})
	return times, records
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	times, records := s.races()
	product := 1
	for i := range times {
		product *= winningHolds(aoc.Int(times[i]), aoc.Int(records[i]))
	}
	return product
}

// want=71503
func (s solver) D6p2() any {
	times, records := s.races()
	return winningHolds(aoc.Int(strings.Join(times, "")), aoc.Int(strings.Join(records, "")))
}
