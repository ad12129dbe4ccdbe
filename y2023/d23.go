package main

import (
	"errors"

	aoc "github.com/maisem/aocsearch"
)

var errNoHike = errors.New("no downhill hike reaches the bottom row")

var slopes = map[byte]aoc.Direction{
	'^': aoc.Up,
	'>': aoc.Right,
	'v': aoc.Down,
	'<': aoc.Left,
}

type trails struct {
	g          aoc.Grid[byte]
	start, end aoc.Pt
}

func parseTrails(input string) trails {
	g := aoc.ParseGrid(input, func(r rune) byte { return byte(r) })
	size := g.Size()
	return trails{
		g:     g,
		start: aoc.Pt{X: 1, Y: 0},
		end:   aoc.Pt{X: size.X - 2, Y: size.Y - 1},
	}
}

// downhill returns the longest hike that never steps back and never climbs
// a slope. Hikes are memoized by tile and the direction they arrived from,
// which is only sound if the slopes rule out loops; if they do not, the memo
// reports the cycle.
func (t trails) downhill() (int, error) {
	m := aoc.NewMemo(func(p aoc.Path) (int, bool) {
		if p.Pt == t.end {
			return 0, true
		}
		return 0, false
	}, func(p aoc.Path, recurse func(aoc.Path) int) int {
		best := -1
		forced, onSlope := slopes[t.g.At(p.Pt)]
		for _, d := range aoc.Directions {
			if d == p.Dir.Reverse() || (onSlope && d != forced) {
				continue
			}
			n, ok := t.g.Move(aoc.Path{Pt: p.Pt, Dir: d})
			if !ok {
				continue
			}
			c := t.g.At(n.Pt)
			if c == '#' {
				continue
			}
			if sd, ok := slopes[c]; ok && sd != d {
				continue
			}
			if rest := recurse(n); rest >= 0 {
				best = max(best, rest+1)
			}
		}
		return best
	})
	n, err := m.Solve(aoc.Path{Pt: t.start, Dir: aoc.Down})
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errNoHike
	}
	return n, nil
}

// anyHike returns the longest hike that visits no tile twice, ignoring
// slopes. Corridors are contracted to single weighted edges first.
func (t trails) anyHike() (int, bool) {
	g := t.g.ToGraph(t.start, false, func(c byte) bool { return c == '#' })
	g.Collapse(func(a, b int) int { return max(a, b) })
	return g.LongestPath(t.start, t.end)
}

/*
want=94

#.#####################
#.......#########...###
#######.#########.#.###
###.....#.>.>.###.#.###
###v#####.#v#.###.#.###
###.>...#.#.#.....#...#
###v###.#.#.#########.#
###...#.#.#.......#...#
#####.#.#.#######.#.###
#.....#.#.#.......#...#
#.#####.#.#.#########v#
#.#...#...#...###...>.#
#.#.#v#######v###.###v#
#...#.>.#...>.>.#.###.#
#####v#.#.###v#.#.###.#
#.....#...#...#.#.#...#
#.#########.###.#.#.###
#...###...#...#...#.###
###.###.#.###v#####v###
#...#...#.#.>.>.#.>.###
#.###.###.#.###.#.#v###
#.....###...###...#...#
#####################.#
*/
func (s solver) D23p1() any {
	return aoc.MustGet(parseTrails(s.Text()).downhill())
}

// want=154
func (s solver) D23p2() any {
	n, ok := parseTrails(s.Text()).anyHike()
	if !ok {
		s.Log().Fatal("no path to the bottom row")
	}
	return n
}
