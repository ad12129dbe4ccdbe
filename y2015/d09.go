package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aocsearch"
)

// distances holds a complete weighted graph over named places.
type distances struct {
	names []string
	ix    map[string]int
	d     [][]int
}

func (ds *distances) place(name string) int {
	aoc.InitMap(&ds.ix)
	if i, ok := ds.ix[name]; ok {
		return i
	}
	i := len(ds.names)
	ds.ix[name] = i
	ds.names = append(ds.names, name)
	for j := range ds.d {
		ds.d[j] = append(ds.d[j], 0)
	}
	ds.d = append(ds.d, make([]int, len(ds.names)))
	return i
}

// add sets the weight from a to b. Weights are directed; callers wanting an
// undirected graph add both ways.
func (ds *distances) add(a, b string, w int) {
	i, j := ds.place(a), ds.place(b)
	ds.d[i][j] += w
}

type tourKey struct {
	at      int
	visited uint32
}

// bestTour returns the best total weight of a route visiting every place
// once, as ranked by better. A closed tour returns to where it started and
// so only needs to start at place 0.
func (ds *distances) bestTour(closed bool, better func(a, b int) int) int {
	n := len(ds.names)
	if n == 0 {
		return 0
	}
	if n > 32 {
		panic(fmt.Sprintf("%d places do not fit in a visited mask", n))
	}
	full := uint32(1)<<n - 1
	m := aoc.NewMemo(func(k tourKey) (int, bool) {
		if k.visited != full {
			return 0, false
		}
		if closed {
			return ds.d[k.at][0], true
		}
		return 0, true
	}, func(k tourKey, recurse func(tourKey) int) int {
		var best int
		found := false
		for next := 0; next < n; next++ {
			bit := uint32(1) << next
			if k.visited&bit != 0 {
				continue
			}
			v := ds.d[k.at][next] + recurse(tourKey{next, k.visited | bit})
			if !found {
				best, found = v, true
			} else {
				best = better(best, v)
			}
		}
		return best
	})
	starts := n
	if closed {
		starts = 1
	}
	best := m.Get(tourKey{0, 1})
	for s := 1; s < starts; s++ {
		best = better(best, m.Get(tourKey{s, 1 << s}))
	}
	return best
}

func (s solver) routes() *distances {
	var ds distances
	s.ForLines(func(line string) {
		// London to Dublin = 464
		places, w, ok := strings.Cut(line, " = ")
		if !ok {
			return
		}
		a, b, _ := strings.Cut(places, " to ")
		ds.add(a, b, aoc.Int(w))
		ds.add(b, a, aoc.Int(w))
	})
	return &ds
}

/*
want=605

London to Dublin = 464
London to Belfast = 518
Dublin to Belfast = 141
*/
func (s solver) D9p1() any {
	return s.routes().bestTour(false, func(a, b int) int { return min(a, b) })
}

// want=982
func (s solver) D9p2() any {
	return s.routes().bestTour(false, func(a, b int) int { return max(a, b) })
}
