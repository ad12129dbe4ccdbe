package main

import (
	aoc "github.com/maisem/aocsearch"
)

// crucible is a position, the direction it last moved in, and how many
// blocks it has moved in a straight line.
type crucible struct {
	Pt  aoc.Pt
	Dir aoc.Direction
	Run int
}

// leastHeatLoss returns the least heat lost moving a crucible from the top
// left to the bottom right. It must move at least minRun blocks before
// turning or stopping, and at most maxRun in a straight line.
func leastHeatLoss(g aoc.Grid[int], minRun, maxRun int) (int, error) {
	size := g.Size()
	end := aoc.Pt{X: size.X - 1, Y: size.Y - 1}
	w := aoc.Weighted[crucible]{
		Goal: func(c crucible) bool {
			return c.Pt == end && c.Run >= minRun
		},
		Next: func(c crucible, yield func(crucible, int) bool) {
			dirs := make([]aoc.Direction, 0, 3)
			if c.Run < maxRun {
				dirs = append(dirs, c.Dir)
			}
			if c.Run >= max(minRun, 1) {
				dirs = append(dirs, c.Dir.Turn(true), c.Dir.Turn(false))
			}
			for _, d := range dirs {
				n := crucible{Pt: c.Pt.Add(d.Delta()), Dir: d, Run: 1}
				if d == c.Dir {
					n.Run = c.Run + 1
				}
				heat, ok := g.AtOk(n.Pt)
				if ok && !yield(n, heat) {
					return
				}
			}
		},
	}
	res, err := w.Run(
		aoc.Seed[crucible]{State: crucible{Dir: aoc.Right}},
		aoc.Seed[crucible]{State: crucible{Dir: aoc.Down}},
	)
	if err != nil {
		return 0, err
	}
	return res.Cost, nil
}

func (s solver) city() aoc.Grid[int] {
	return aoc.ParseGrid(s.Text(), aoc.Digit)
}

/*
want=102

2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
*/
func (s solver) D17p1() any {
	return aoc.MustGet(leastHeatLoss(s.city(), 1, 3))
}

// want=94
func (s solver) D17p2() any {
	return aoc.MustGet(leastHeatLoss(s.city(), 4, 10))
}
