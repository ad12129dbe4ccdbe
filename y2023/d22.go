package main

import (
	"slices"
	"strings"

	aoc "github.com/maisem/aocsearch"
)

type brick struct {
	lo, hi [3]int // inclusive corners, lo <= hi on every axis
}

func parseBricks(input string) []brick {
	var bs []brick
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		// 1,0,1~1,2,1
		a, b, _ := strings.Cut(line, "~")
		pa := aoc.Ints(strings.Split(a, ",")...)
		pb := aoc.Ints(strings.Split(b, ",")...)
		var br brick
		for i := 0; i < 3; i++ {
			br.lo[i], br.hi[i] = min(pa[i], pb[i]), max(pa[i], pb[i])
		}
		bs = append(bs, br)
	}
	return bs
}

// stack is a settled pile. below[i] lists the bricks brick i rests on and
// above[i] the bricks resting on it.
type stack struct {
	below, above [][]int
}

// settle drops every brick as far as it falls and records what rests on what.
func settle(bs []brick) stack {
	order := make([]int, len(bs))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int { return bs[a].lo[2] - bs[b].lo[2] })

	type top struct{ z, id int }
	heights := make(map[[2]int]top)
	st := stack{
		below: make([][]int, len(bs)),
		above: make([][]int, len(bs)),
	}
	for _, id := range order {
		b := bs[id]
		floor := 0
		var under []int
		for x := b.lo[0]; x <= b.hi[0]; x++ {
			for y := b.lo[1]; y <= b.hi[1]; y++ {
				t, ok := heights[[2]int{x, y}]
				if !ok {
					continue
				}
				switch {
				case t.z > floor:
					floor, under = t.z, []int{t.id}
				case t.z == floor && !slices.Contains(under, t.id):
					under = append(under, t.id)
				}
			}
		}
		z := floor + 1 + b.hi[2] - b.lo[2]
		for x := b.lo[0]; x <= b.hi[0]; x++ {
			for y := b.lo[1]; y <= b.hi[1]; y++ {
				heights[[2]int{x, y}] = top{z, id}
			}
		}
		st.below[id] = under
		for _, u := range under {
			st.above[u] = append(st.above[u], id)
		}
	}
	return st
}

// safe reports whether removing brick i lets nothing fall.
func (st stack) safe(i int) bool {
	for _, a := range st.above[i] {
		if len(st.below[a]) == 1 {
			return false
		}
	}
	return true
}

// chain returns how many other bricks fall when brick i is removed.
func (st stack) chain(i int) int {
	fallen := map[int]bool{i: true}
	q := aoc.NewQueue(i)
	q.While(func(b int) bool {
		for _, a := range st.above[b] {
			if fallen[a] {
				continue
			}
			if !slices.ContainsFunc(st.below[a], func(u int) bool { return !fallen[u] }) {
				fallen[a] = true
				q.Push(a)
			}
		}
		return true
	})
	return len(fallen) - 1
}

/*
want=5

1,0,1~1,2,1
0,0,2~2,0,2
0,2,3~2,2,3
0,0,4~0,2,4
2,0,5~2,2,5
0,1,6~2,1,6
1,1,8~1,1,9
*/
func (s solver) D22p1() any {
	st := settle(parseBricks(s.Text()))
	var n int
	for i := range st.below {
		if st.safe(i) {
			n++
		}
	}
	return n
}

// want=7
func (s solver) D22p2() any {
	st := settle(parseBricks(s.Text()))
	var n int
	for i := range st.below {
		n += st.chain(i)
	}
	return n
}
