package main

import (
	"slices"
	"strings"

	aoc "github.com/maisem/aocsearch"
)

type almanac struct {
	seeds  []int
	layers [][]aoc.Shift
}

func (s solver) almanac() almanac {
	var a almanac
	blocks := strings.Split(s.Text(), "\n\n")
	a.seeds = aoc.Ints(strings.Fields(aoc.TrimPrefix(blocks[0], "seeds: "))...)
	for _, b := range blocks[1:] {
		lines := strings.Split(b, "\n")
		var rules []aoc.Shift
		for _, l := range lines[1:] { // skip "x-to-y map:"
			v := aoc.Ints(strings.Fields(l)...)
			dst, src, n := v[0], v[1], v[2]
			rules = append(rules, aoc.Shift{
				Src:    aoc.Interval{Lo: src, Hi: src + n},
				Offset: dst - src,
			})
		}
		a.layers = append(a.layers, rules)
	}
	return a
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := s.almanac()
	var locs []int
	for _, x := range a.seeds {
		for _, rules := range a.layers {
			x = aoc.MapPoint(x, rules)
		}
		locs = append(locs, x)
	}
	return slices.Min(locs)
}

// want=46
func (s solver) D5p2() any {
	a := s.almanac()
	var ivs []aoc.Interval
	for i := 0; i+1 < len(a.seeds); i += 2 {
		ivs = append(ivs, aoc.Interval{Lo: a.seeds[i], Hi: a.seeds[i] + a.seeds[i+1]})
	}
	total := aoc.TotalLen(ivs)
	for _, rules := range a.layers {
		ivs = aoc.ApplyShifts(ivs, rules)
	}
	s.Debugf("%d seeds across %d intervals", total, len(ivs))
	lowest := ivs[0].Lo
	for _, iv := range ivs[1:] {
		lowest = min(lowest, iv.Lo)
	}
	return lowest
}
