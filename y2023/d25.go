package main

import (
	"fmt"
	"strings"

	aoc "github.com/maisem/aocsearch"
	"golang.org/x/exp/maps"
)

func parseWiring(input string) *aoc.Graph[string] {
	var g aoc.Graph[string]
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		// jqt: rhn xhk nvd
		from, tos, _ := strings.Cut(line, ": ")
		for _, to := range strings.Fields(tos) {
			g.AddEdge(from, to, 1)
		}
	}
	return &g
}

// splitWiring cuts the wires that separate g into two groups and returns the
// product of the group sizes. Exactly want wires must be cut.
func splitWiring(g *aoc.Graph[string], want int) (int, error) {
	nodes := maps.Keys(g.Nodes)
	edges := g.EdgeList()
	if _, d := aoc.SpanningForest(nodes, edges); d.Sets() != 1 {
		return 0, fmt.Errorf("wiring is already in %d pieces", d.Sets())
	}

	cut := g.MinCut()
	if len(cut) != want {
		return 0, fmt.Errorf("minimum cut has %d wires, want %d", len(cut), want)
	}
	severed := make(map[aoc.Edge[string]]bool, 2*len(cut))
	for _, e := range cut {
		severed[e] = true
		severed[aoc.Edge[string]{A: e.B, B: e.A}] = true
	}
	d := aoc.NewDisjointSet(nodes...)
	for _, e := range edges {
		if !severed[e] {
			d.Union(e.A, e.B)
		}
	}
	if d.Sets() != 2 {
		return 0, fmt.Errorf("cutting %v leaves %d groups", cut, d.Sets())
	}
	sizes := d.Sizes()
	return sizes[0] * sizes[1], nil
}

/*
want=54

jqt: rhn xhk nvd
rsh: frs pzl lsr
xhk: hfx
cmg: qnr nvd lhk bvb
rhn: xhk bvb hfx
bvb: xhk hfx
pzl: lsr hfx nvd
qnr: nvd
ntq: jqt hfx bvb xhk
nvd: lhk
lsr: lhk
rzs: qnr cmg lsr rsh
frs: qnr lhk lsr
*/
func (s solver) D25p1() any {
	return aoc.MustGet(splitWiring(parseWiring(s.Text()), 3))
}
