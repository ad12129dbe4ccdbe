package main

import (
	"fmt"

	aoc "github.com/maisem/aocsearch"
)

// pipe is the set of directions a tile connects to, one bit per direction.
type pipe uint8

func opens(ds ...aoc.Direction) pipe {
	var p pipe
	for _, d := range ds {
		p |= 1 << d
	}
	return p
}

func (p pipe) has(d aoc.Direction) bool {
	return p&(1<<d) != 0
}

var pipeRunes = map[rune]pipe{
	'|': opens(aoc.Up, aoc.Down),
	'-': opens(aoc.Left, aoc.Right),
	'L': opens(aoc.Up, aoc.Right),
	'J': opens(aoc.Up, aoc.Left),
	'7': opens(aoc.Down, aoc.Left),
	'F': opens(aoc.Down, aoc.Right),
}

// pipeMaze is a parsed sketch with the start tile replaced by the pipe that
// joins its two connected neighbors.
type pipeMaze struct {
	grid  aoc.Grid[pipe]
	start aoc.Pt
}

func parsePipes(input string) (pipeMaze, error) {
	var (
		m     pipeMaze
		found bool
	)
	m.grid = aoc.ParseGrid(input, func(r rune) pipe {
		return pipeRunes[r]
	})
	// The start tile parses as empty; find it by rune.
	runes := aoc.ParseGrid(input, func(r rune) rune { return r })
	m.start, found = runes.Find(func(r rune) bool { return r == 'S' })
	if !found {
		return m, fmt.Errorf("no start tile")
	}
	var sp pipe
	for _, d := range aoc.Directions {
		if n, ok := m.grid.AtOk(m.start.Add(d.Delta())); ok && n.has(d.Reverse()) {
			sp |= opens(d)
		}
	}
	if _, ok := m.shape(sp); !ok {
		return m, fmt.Errorf("start at %v joins %08b, not exactly two pipes", m.start, sp)
	}
	m.grid.Set(m.start, sp)
	return m, nil
}

func (m pipeMaze) shape(p pipe) (rune, bool) {
	for r, q := range pipeRunes {
		if p == q {
			return r, true
		}
	}
	return 0, false
}

// next yields the tiles joined to p by a pipe running both ways.
func (m pipeMaze) next(p aoc.Pt, yield func(aoc.Pt) bool) {
	here := m.grid.At(p)
	for _, d := range aoc.Directions {
		if !here.has(d) {
			continue
		}
		n := p.Add(d.Delta())
		if v, ok := m.grid.AtOk(n); ok && v.has(d.Reverse()) && !yield(n) {
			return
		}
	}
}

// loop returns the tiles of the start tile's loop in walking order.
func (m pipeMaze) loop() []aoc.Pt {
	path := []aoc.Pt{m.start}
	prev, cur := m.start, m.start
	for {
		var step aoc.Pt
		m.next(cur, func(n aoc.Pt) bool {
			if n == prev {
				return true
			}
			step = n
			return false
		})
		if step == m.start {
			return path
		}
		prev, cur = cur, step
		path = append(path, cur)
	}
}

func (s solver) pipes() pipeMaze {
	return aoc.MustGet(parsePipes(s.Text()))
}

func farthest(m pipeMaze) int {
	b := aoc.BFS[aoc.Pt]{Next: m.next}
	var far int
	for _, d := range b.Distances(-1, m.start) {
		far = max(far, d)
	}
	return far
}

/*
want=8

..F7.
.FJ|.
SJ.L7
|F--J
LJ...
*/
func (s solver) D10p1() any {
	return farthest(s.pipes())
}

/*
want=4

...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
*/
func (s solver) D10p2() any {
	return aoc.PolygonInteriorPoints(s.pipes().loop())
}
