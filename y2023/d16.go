package main

import (
	aoc "github.com/maisem/aocsearch"
)

// bounce returns the directions a beam heading d leaves tile c in.
func bounce(c byte, d aoc.Direction) []aoc.Direction {
	horizontal := d == aoc.Left || d == aoc.Right
	switch c {
	case '/':
		// Right <-> Up, Left <-> Down
		return []aoc.Direction{d.Turn(!horizontal)}
	case '\\':
		// Right <-> Down, Left <-> Up
		return []aoc.Direction{d.Turn(horizontal)}
	case '|':
		if horizontal {
			return []aoc.Direction{aoc.Up, aoc.Down}
		}
	case '-':
		if !horizontal {
			return []aoc.Direction{aoc.Left, aoc.Right}
		}
	}
	return []aoc.Direction{d}
}

// energized counts the tiles a beam entering at start passes through. Beam
// states are a tile and the direction the beam entered it with.
func energized(g aoc.Grid[byte], start aoc.Path) int {
	b := aoc.BFS[aoc.Path]{Next: func(p aoc.Path, yield func(aoc.Path) bool) {
		for _, d := range bounce(g.At(p.Pt), p.Dir) {
			if n, ok := g.Move(aoc.Path{Pt: p.Pt, Dir: d}); ok && !yield(n) {
				return
			}
		}
	}}
	lit := make(map[aoc.Pt]bool)
	for p := range b.Distances(-1, start) {
		lit[p.Pt] = true
	}
	return len(lit)
}

func (s solver) contraption() aoc.Grid[byte] {
	return aoc.ParseGrid(s.Text(), func(r rune) byte { return byte(r) })
}

/*
want=46

.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
*/
func (s solver) D16p1() any {
	return energized(s.contraption(), aoc.Path{Dir: aoc.Right})
}

// want=51
func (s solver) D16p2() any {
	g := s.contraption()
	return aoc.ParallelMapFold(g.EdgePaths(), func(p aoc.Path) int {
		return energized(g, p)
	}, func(best, n int) int {
		return max(best, n)
	}, 0)
}
