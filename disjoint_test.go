package aoc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisjointSet(t *testing.T) {
	d := NewDisjointSet("a", "b", "c", "d", "e")
	assert.Equal(t, 5, d.Sets())
	assert.False(t, d.Add("a"))

	assert.True(t, d.Union("a", "b"))
	assert.False(t, d.Union("b", "a"))
	assert.True(t, d.Union("c", "d"))
	assert.True(t, d.Union("b", "d"))
	assert.Equal(t, 2, d.Sets())
	assert.True(t, d.Connected("a", "c"))
	assert.False(t, d.Connected("a", "e"))
	assert.Equal(t, []int{4, 1}, d.Sizes())

	// Find adds unseen elements.
	assert.Equal(t, "f", d.Find("f"))
	assert.Equal(t, 6, d.Len())
	assert.Equal(t, 3, d.Sets())
	assert.Len(t, d.Components(), 3)
}

func TestDisjointSetProperties(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	const n = 30
	d := NewDisjointSet[int]()
	// label[x] names the set of x, relabelled by brute force on each merge.
	label := make([]int, n)
	for i := range label {
		label[i] = i
		d.Add(i)
	}
	for i := 0; i < 40; i++ {
		a, b := r.Intn(n), r.Intn(n)
		merged := d.Union(a, b)
		assert.Equal(t, label[a] != label[b], merged, "Union(%d, %d)", a, b)
		if old := label[b]; merged {
			for x := range label {
				if label[x] == old {
					label[x] = label[a]
				}
			}
		}
		assert.False(t, d.Union(a, b), "second Union(%d, %d)", a, b)
		assert.Equal(t, d.Find(a), d.Find(d.Find(a)))
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			assert.Equal(t, label[a] == label[b], d.Connected(a, b), "Connected(%d, %d)", a, b)
			assert.Equal(t, d.Connected(a, b), d.Connected(b, a))
		}
	}
	var total int
	for _, s := range d.Sizes() {
		total += s
	}
	assert.Equal(t, n, total)
	assert.Equal(t, len(d.Components()), d.Sets())
}

func TestSpanningForest(t *testing.T) {
	edges := []Edge[int]{
		{0, 1}, {1, 2}, {2, 0}, {3, 4}, {1, 0},
	}
	kept, d := SpanningForest([]int{0, 1, 2, 3, 4, 5}, edges)
	assert.Equal(t, []Edge[int]{{0, 1}, {1, 2}, {3, 4}}, kept)
	assert.Equal(t, 3, d.Sets())
	assert.Equal(t, []int{3, 2, 1}, d.Sizes())
}
