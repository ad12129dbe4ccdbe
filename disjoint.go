package aoc

import (
	"slices"
)

// DisjointSet is a union-find forest over elements of type T, with path
// compression and union by rank. The zero value is not usable; use
// NewDisjointSet.
type DisjointSet[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	sets   int
}

// NewDisjointSet returns a forest with each of elems in its own set.
func NewDisjointSet[T comparable](elems ...T) *DisjointSet[T] {
	d := &DisjointSet[T]{
		parent: make(map[T]T, len(elems)),
		rank:   make(map[T]int, len(elems)),
	}
	for _, e := range elems {
		d.Add(e)
	}
	return d
}

// Add puts x in a set of its own. It reports false if x was already present.
func (d *DisjointSet[T]) Add(x T) bool {
	if _, ok := d.parent[x]; ok {
		return false
	}
	d.parent[x] = x
	d.rank[x] = 0
	d.sets++
	return true
}

// Find returns the representative of the set holding x, adding x first if
// needed. Every element on the way to the root is re-pointed at the root.
func (d *DisjointSet[T]) Find(x T) T {
	if d.Add(x) {
		return x
	}
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets holding a and b. It reports whether they were
// separate.
func (d *DisjointSet[T]) Union(a, b T) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}
	d.sets--
	return true
}

func (d *DisjointSet[T]) Connected(a, b T) bool {
	return d.Find(a) == d.Find(b)
}

// Sets returns the number of disjoint sets.
func (d *DisjointSet[T]) Sets() int {
	return d.sets
}

// Len returns the number of elements.
func (d *DisjointSet[T]) Len() int {
	return len(d.parent)
}

// Components returns the members of each set keyed by representative.
func (d *DisjointSet[T]) Components() map[T][]T {
	out := make(map[T][]T, d.sets)
	for x := range d.parent {
		r := d.Find(x)
		out[r] = append(out[r], x)
	}
	return out
}

// Sizes returns the size of each set, largest first.
func (d *DisjointSet[T]) Sizes() []int {
	counts := make(map[T]int, d.sets)
	for x := range d.parent {
		counts[d.Find(x)]++
	}
	out := make([]int, 0, len(counts))
	for _, n := range counts {
		out = append(out, n)
	}
	slices.Sort(out)
	slices.Reverse(out)
	return out
}

// SpanningForest runs Kruskal's algorithm over edges in the order given,
// keeping each edge that joins two separate sets. It returns the kept edges
// and the resulting forest.
func SpanningForest[T comparable](nodes []T, edges []Edge[T]) ([]Edge[T], *DisjointSet[T]) {
	d := NewDisjointSet(nodes...)
	var kept []Edge[T]
	for _, e := range edges {
		if d.Union(e.A, e.B) {
			kept = append(kept, e)
		}
	}
	return kept, d
}
