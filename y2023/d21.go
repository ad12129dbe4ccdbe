package main

import (
	"fmt"

	aoc "github.com/maisem/aocsearch"
)

type garden struct {
	rocks aoc.Grid[bool]
	start aoc.Pt
}

func parseGarden(input string) garden {
	g := garden{rocks: aoc.ParseGrid(input, func(r rune) bool { return r == '#' })}
	runes := aoc.ParseGrid(input, func(r rune) rune { return r })
	g.start, _ = runes.Find(func(r rune) bool { return r == 'S' })
	return g
}

// plots returns how many garden plots a walk of exactly steps can end on.
// If wrap is set, the map repeats forever in every direction.
func (g garden) plots(steps int, wrap bool) int {
	size := g.rocks.Size()
	b := aoc.BFS[aoc.Pt]{Next: func(p aoc.Pt, yield func(aoc.Pt) bool) {
		for _, d := range aoc.Directions {
			n := p.Add(d.Delta())
			at := n
			if wrap {
				at = aoc.StandardizePt(n, size)
			} else if !g.rocks.Contains(n) {
				continue
			}
			if !g.rocks.At(at) && !yield(n) {
				return
			}
		}
	}}
	return len(b.Reach(steps, aoc.Exact, g.start))
}

// farPlots counts the plots reachable in exactly steps on the repeating map.
// The count grows quadratically in whole map widths once the walk has left
// the first tile, so it is fitted from three samples at steps mod width plus
// 0, 1 and 2 widths.
func (g garden) farPlots(steps int) (int, error) {
	size := g.rocks.Size()
	if size.X != size.Y {
		return 0, fmt.Errorf("map is %v; want a square", size)
	}
	w := size.X
	rem, n := steps%w, steps/w
	if n < 2 {
		return g.plots(steps, true), nil
	}
	var y [3]int
	for i := range y {
		y[i] = g.plots(rem+i*w, true)
	}
	return y[0] + n*(y[1]-y[0]) + n*(n-1)/2*(y[2]-2*y[1]+y[0]), nil
}

/*
want=16

...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........
*/
func (s solver) D21p1() any {
	steps := 64
	if s.SampleMode {
		steps = 6
	}
	return parseGarden(s.Text()).plots(steps, false)
}

func (s solver) D21p2() any {
	return aoc.MustGet(parseGarden(s.Text()).farPlots(26501365))
}
