package main

import (
	aoc "github.com/maisem/aocsearch"
)

// tiltNorth rolls every round rock ('O') as far up as it goes, in place.
func tiltNorth(g aoc.Grid[byte]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		free := 0
		for y := 0; y < size.Y; y++ {
			switch g[y][x] {
			case '#':
				free = y + 1
			case 'O':
				g[y][x] = '.'
				g[free][x] = 'O'
				free++
			}
		}
	}
}

// spin tilts the dish north, west, south and east, returning a new grid.
func spin(g aoc.Grid[byte]) aoc.Grid[byte] {
	g = g.Clone()
	for i := 0; i < 4; i++ {
		tiltNorth(g)
		g = g.RotateClockwise()
	}
	return g
}

// northLoad sums, for each round rock, its distance from the south edge.
func northLoad(g aoc.Grid[byte]) int {
	var load int
	for y, row := range g {
		for _, c := range row {
			if c == 'O' {
				load += len(g) - y
			}
		}
	}
	return load
}

func (s solver) dish() aoc.Grid[byte] {
	return aoc.ParseGrid(s.Text(), func(r rune) byte { return byte(r) })
}

/*
want=136

O....#....
O.OO#....#
.....##...
OO.#O....O
.O.....O#.
O.#..O.#.#
..O..#O..O
.......O..
#....###..
#OO..#....
*/
func (s solver) D14p1() any {
	g := s.dish()
	tiltNorth(g)
	return northLoad(g)
}

// want=64
func (s solver) D14p2() any {
	c := aoc.DetectCycle(s.dish(), spin, aoc.Grid[byte].Hash)
	s.Debugf("spin cycle starts at %d with period %d", c.Start, c.Period)
	return northLoad(c.At(1_000_000_000))
}
