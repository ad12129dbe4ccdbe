package aoc

import (
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

// ParseGrid builds a grid from the lines of input, converting each rune with f.
func ParseGrid[T any](input string, f func(rune) T) Grid[T] {
	var g Grid[T]
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		row := make([]T, 0, len(line))
		for _, r := range line {
			row = append(row, f(r))
		}
		g = append(g, row)
	}
	return g
}

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) Contains(p Pt) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < len(g) && p.X < len(g[p.Y])
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if !g.Contains(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// MakeGrid returns a grid x cells wide and y cells tall.
func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// Clone returns a copy of g that shares no rows with it.
func (g Grid[T]) Clone() Grid[T] {
	out := make(Grid[T], len(g))
	for i, row := range g {
		out[i] = append([]T(nil), row...)
	}
	return out
}

// Hash returns a digest of the grid contents, usable as a map key.
func (g Grid[T]) Hash() deephash.Sum {
	return deephash.Hash(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

// RotateClockwiseInto writes g turned a quarter clockwise into out, which
// must be g.Size().Y wide and g.Size().X tall.
func (g Grid[T]) RotateClockwiseInto(out Grid[T]) {
	size := g.Size()
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			out[x][size.Y-1-y] = g[y][x]
		}
	}
}

func (g Grid[T]) RotateClockwise() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.RotateClockwiseInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Find returns the first cell, in row order, for which match is true.
func (g Grid[T]) Find(match func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if match(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

// EdgePaths returns every border cell paired with the direction pointing into
// the grid from it.
func (g Grid[T]) EdgePaths() []Path {
	size := g.Size()
	var paths []Path
	for x := 0; x < size.X; x++ {
		paths = append(paths, Path{
			Pt:  Pt{x, 0},
			Dir: Down,
		}, Path{
			Pt:  Pt{x, size.Y - 1},
			Dir: Up,
		})
	}
	for y := 0; y < size.Y; y++ {
		paths = append(paths, Path{
			Pt:  Pt{0, y},
			Dir: Right,
		}, Path{
			Pt:  Pt{size.X - 1, y},
			Dir: Left,
		})
	}
	return paths
}

// ToGraph converts the part of the grid reachable from start into a graph
// with unit edges. If allowDiagonals is true, then diagonal neighbors are
// included. If disallowed is not nil, it is additionally called on each cell,
// and if it returns true, that cell is not included in the graph.
func (grid Grid[T]) ToGraph(start Pt, allowDiagonals bool, disallowed func(T) bool) Graph[Pt] {
	var g Graph[Pt]
	g.Nodes = make(map[Pt]bool)
	g.Edges = make(map[Pt]map[Pt]int)

	fn := Pt.ForImmediateNeighbors
	if allowDiagonals {
		fn = Pt.ForNeighbors
	}

	visited := make(map[Pt]bool)
	q := NewQueue[Pt](start)
	g.AddNode(start)
	q.While(func(p1 Pt) bool {
		if visited[p1] {
			return true
		}
		visited[p1] = true
		fn(p1, func(p2 Pt) (keepGoing bool) {
			v, ok := grid.AtOk(p2)
			if !ok || (disallowed != nil && disallowed(v)) {
				return true
			}
			if visited[p2] {
				return true
			}
			q.Push(p2)
			g.AddEdge(p1, p2, 1)
			return true
		})
		return true
	})
	return g
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Move steps p one cell in its direction. It reports false if that leaves
// the grid.
func (g Grid[T]) Move(p Path) (Path, bool) {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	if !g.Contains(p.Pt) {
		return Path{}, false
	}
	return p, true
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists the four directions clockwise from Up.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// Delta is the offset of one step in direction d; Y grows downward.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad direction")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// StandardizePt maps p on an infinitely tiled plane back onto the tile of
// the given size at the origin.
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
