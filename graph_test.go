package aoc

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinCut(t *testing.T) {
	var g Graph[int]
	for _, base := range []int{0, 4} {
		for a := base; a < base+4; a++ {
			for b := a + 1; b < base+4; b++ {
				g.AddEdge(a, b, 1)
			}
		}
	}
	g.AddEdge(0, 4, 1)
	g.AddEdge(1, 5, 1)

	cut := g.MinCut()
	for i, e := range cut {
		if e.A > e.B {
			cut[i] = Edge[int]{e.B, e.A}
		}
	}
	slices.SortFunc(cut, func(a, b Edge[int]) int { return a.A - b.A })
	assert.Equal(t, []Edge[int]{{0, 4}, {1, 5}}, cut)
	// MinCut works on a copy.
	assert.Len(t, g.Nodes, 8)
	assert.Len(t, g.EdgeList(), 14)
}

// thetaGraph joins hubs 0 and 9 through three corridors of different
// lengths. Each hub also has two leaves.
func thetaGraph() *Graph[int] {
	var g Graph[int]
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 9, 1)
	g.AddEdge(0, 2, 2)
	g.AddEdge(2, 9, 2)
	g.AddEdge(0, 3, 1)
	g.AddEdge(3, 9, 5)
	g.AddEdge(0, 100, 1)
	g.AddEdge(0, 101, 1)
	g.AddEdge(9, 200, 1)
	g.AddEdge(9, 201, 1)
	return &g
}

func TestCollapse(t *testing.T) {
	long := thetaGraph()
	got, ok := long.LongestPath(100, 200)
	require.True(t, ok)
	assert.Equal(t, 8, got)
	long.Collapse(func(a, b int) int { return max(a, b) })
	assert.Len(t, long.Nodes, 6)
	assert.Equal(t, 6, long.Edges[0][9])
	assert.Equal(t, 6, long.Edges[9][0])
	after, ok := long.LongestPath(100, 200)
	require.True(t, ok)
	assert.Equal(t, 8, after)

	short := thetaGraph()
	short.Collapse(func(a, b int) int { return min(a, b) })
	assert.Equal(t, 2, short.Edges[0][9])
	dist := short.AllShortestPaths()
	assert.Equal(t, 4, dist[Edge[int]{100, 200}])
}

func TestLongestPathDirected(t *testing.T) {
	var g Graph[string]
	g.AddArc("a", "b", 1)
	g.AddArc("b", "c", 1)
	g.AddArc("a", "c", 5)
	g.AddArc("c", "d", 1)
	got, ok := g.LongestPath("a", "d")
	require.True(t, ok)
	assert.Equal(t, 6, got)

	_, ok = g.LongestPath("d", "a")
	assert.False(t, ok)
	assert.Equal(t, map[string]bool{"c": true, "d": true}, g.ReachableNodes("c"))

	g.RemoveNode("c")
	_, ok = g.LongestPath("a", "d")
	assert.False(t, ok)
}
