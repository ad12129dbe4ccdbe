package aoc

import (
	"math"
	"slices"

	"golang.org/x/exp/maps"
)

// Graph is a weighted graph owned by its caller. Edges[a][b] is the length
// of the arc from a to b; undirected edges are stored in both directions.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

func (g *Graph[K]) RemoveEdge(a, b K) {
	delete(g.Edges[a], b)
	delete(g.Edges[b], a)
}

// AllShortestPaths returns the shortest distance between every ordered pair
// of nodes (Floyd–Warshall). Unreachable pairs are math.MaxInt.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	dist := map[key]int{}
	for k1 := range g.Nodes {
		for k2 := range g.Nodes {
			if k1 == k2 {
				dist[key{k1, k1}] = 0
			} else if v, ok := g.Edges[k1][k2]; ok {
				dist[key{k1, k2}] = v
			} else {
				dist[key{k1, k2}] = math.MaxInt
			}
		}
	}
	for via := range g.Nodes {
		for from := range g.Nodes {
			for to := range g.Nodes {
				a := dist[key{from, via}]
				b := dist[key{via, to}]
				if a == math.MaxInt || b == math.MaxInt {
					continue
				}
				if d := a + b; d < dist[key{from, to}] {
					dist[key{from, to}] = d
				}
			}
		}
	}
	return dist
}

// ReachableNodes returns the nodes reachable from a, a included.
func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	var q Queue[K]
	q.Push(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for e := range g.Edges[a] {
		delete(g.Edges[e], a)
	}
	for _, e := range g.Edges {
		delete(e, a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// AddEdge adds an undirected edge between a and b.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

// EdgeList returns each undirected edge once and each one-way arc once.
func (g *Graph[K]) EdgeList() []Edge[K] {
	seen := make(map[Edge[K]]bool)
	var out []Edge[K]
	for a, e := range g.Edges {
		for b := range e {
			if seen[Edge[K]{b, a}] {
				continue
			}
			seen[Edge[K]{a, b}] = true
			out = append(out, Edge[K]{a, b})
		}
	}
	return out
}

// LongestPath returns the length of the longest simple path from start to
// end. ok is false if end cannot be reached.
func (g Graph[K]) LongestPath(start, end K) (rp int, ok bool) {
	return g.longestPathHelper(start, end, make(map[K]bool))
}

func (g Graph[K]) longestPathHelper(start, end K, visited map[K]bool) (rp int, ok bool) {
	if start == end {
		return 0, true
	}

	visited[start] = true
	defer func() {
		visited[start] = false
	}()
	max := -1
	for k, v := range g.Edges[start] {
		if visited[k] {
			continue
		}
		got, ok := g.longestPathHelper(k, end, visited)
		got += v
		if ok && (max == -1 || got > max) {
			max = got
		}
	}
	if max != -1 {
		return max, true
	}
	return 0, false
}

// Collapse removes every node that sits in the middle of an undirected
// corridor (exactly two neighbors, linked both ways), joining the neighbors
// with an edge as long as the two it replaces. If the neighbors are already
// joined, prefer picks which length to keep.
func (g *Graph[K]) Collapse(prefer func(a, b int) int) {
	for {
		trimmed := false
		for k1, e := range g.Edges {
			if len(e) != 2 {
				continue
			}
			var (
				ns [2]K
				ds [2]int
				i  int
			)
			for k, v := range e {
				ns[i], ds[i] = k, v
				i++
			}
			if _, ok := g.Edges[ns[0]][k1]; !ok {
				continue
			}
			if _, ok := g.Edges[ns[1]][k1]; !ok {
				continue
			}
			g.RemoveNode(k1)
			d := ds[0] + ds[1]
			if old, ok := g.Edges[ns[0]][ns[1]]; ok {
				d = prefer(old, d)
			}
			g.AddEdge(ns[0], ns[1], d)
			trimmed = true
		}
		if !trimmed {
			break
		}
	}
}

// Edge is a pair of nodes.
type Edge[T comparable] struct {
	A, B T
}

// MinCut calculates a minimum cut of a connected, undirected graph using the
// Stoer–Wagner algorithm. It returns the edges crossing the cut, each once,
// oriented from the smaller side of the last best phase outward.
func (g *Graph[T]) MinCut() []Edge[T] {
	if len(g.Nodes) < 2 {
		return nil
	}
	var (
		g2 = g.Clone() // copy of graph to mutate

		// groups[n] holds the original nodes merged into n.
		groups = make(map[T][]T, len(g.Nodes))

		minCut = math.MaxInt
		side   []T
	)
	for k := range g.Nodes {
		groups[k] = []T{k}
	}
	for len(g2.Nodes) > 1 {
		s, t, w := g2.minCutPhase(AnyKey(g2.Nodes))
		if w < minCut {
			minCut = w
			side = slices.Clone(groups[t])
		}
		groups[s] = append(groups[s], groups[t]...)
		delete(groups, t)
		g2.merge(s, t)
	}

	in := make(map[T]bool, len(side))
	for _, v := range side {
		in[v] = true
	}
	var cuts []Edge[T]
	for _, v := range side {
		for e := range g.Edges[v] {
			if !in[e] {
				cuts = append(cuts, Edge[T]{v, e})
			}
		}
	}
	return cuts
}

// minCutPhase runs one phase of the min cut algorithm. It returns the last two
// nodes traversed and the weight of the cut.
//
// It is equivalent to running a max flow algorithm from start to any other node
// in the graph.
func (g *Graph[T]) minCutPhase(start T) (s, t T, wOut int) {
	pq := MaxQueue[T]()
	var pris = map[T]*PQI[T]{}
	for k := range g.Nodes {
		i := &PQI[T]{
			V: k,
			P: 0,
		}
		if k == start {
			i.P = 1
		}
		pris[k] = i
		pq.Push(i)
	}

	for pq.Len() > 0 {
		next := pq.Pop()

		for k, v := range g.Edges[next.V] {
			p := pris[k]
			if p.Index() != -1 {
				p.P += v
				pq.Update(p)
			}
		}
		s, t = t, next.V
		wOut = next.P
	}
	return
}

func (g *Graph[T]) merge(s, t T) {
	for k, tvk := range g.Edges[t] {
		svk := g.Edges[s][k]
		g.RemoveEdge(t, k)
		g.AddEdge(s, k, svk+tvk)
	}
	g.RemoveEdge(s, s)
	delete(g.Nodes, t)
	delete(g.Edges, t)
}
