package aoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestGridTransforms(t *testing.T) {
	g := ParseGrid("abc\ndef", func(r rune) string { return string(r) })
	assert.Equal(t, Pt{3, 2}, g.Size())

	tests := []struct {
		name string
		got  Grid[string]
		want Grid[string]
	}{
		{"transpose", g.Transpose(), Grid[string]{{"a", "d"}, {"b", "e"}, {"c", "f"}}},
		{"rotate", g.RotateClockwise(), Grid[string]{{"d", "a"}, {"e", "b"}, {"f", "c"}}},
		{"rotate4", g.RotateClockwise().RotateClockwise().RotateClockwise().RotateClockwise(), g},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestGridHash(t *testing.T) {
	g := ParseGrid("#.\n.#", func(r rune) bool { return r == '#' })
	c := g.Clone()
	assert.Equal(t, g.Hash(), c.Hash())
	c.Set(Pt{1, 0}, true)
	assert.NotEqual(t, g.Hash(), c.Hash())
	assert.False(t, g.At(Pt{1, 0}))
}

func TestGridMove(t *testing.T) {
	g := MakeGrid[int](3, 2)
	tests := []struct {
		in   Path
		want Path
		ok   bool
	}{
		{Path{Pt{0, 0}, Right}, Path{Pt{1, 0}, Right}, true},
		{Path{Pt{0, 0}, Down}, Path{Pt{0, 1}, Down}, true},
		{Path{Pt{0, 0}, Up}, Path{}, false},
		{Path{Pt{2, 1}, Right}, Path{}, false},
		{Path{Pt{2, 1}, Left}, Path{Pt{1, 1}, Left}, true},
	}
	for _, tt := range tests {
		got, ok := g.Move(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Move(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	assert.Len(t, g.EdgePaths(), 2*3+2*2)
}

func TestDirection(t *testing.T) {
	for _, d := range Directions {
		assert.Equal(t, d, d.Turn(true).Turn(false))
		assert.Equal(t, d.Reverse(), d.Turn(true).Turn(true))
		assert.Equal(t, Pt{}, d.Delta().Add(d.Reverse().Delta()))
	}
	assert.Equal(t, Right, Up.Turn(true))
	assert.Equal(t, Left, Up.Turn(false))
	assert.Equal(t, "^>v<", Up.String()+Right.String()+Down.String()+Left.String())
}

func TestStandardizePt(t *testing.T) {
	size := Pt{5, 3}
	tests := []struct {
		in, want Pt
	}{
		{Pt{2, 1}, Pt{2, 1}},
		{Pt{5, 3}, Pt{0, 0}},
		{Pt{-1, -1}, Pt{4, 2}},
		{Pt{-11, 7}, Pt{4, 1}},
	}
	for _, tt := range tests {
		if got := StandardizePt(tt.in, size); got != tt.want {
			t.Errorf("StandardizePt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToGraph(t *testing.T) {
	g := ParseGrid("..#\n#..\n..#", func(r rune) rune { return r })
	gr := g.ToGraph(Pt{0, 0}, false, func(r rune) bool { return r == '#' })
	assert.Len(t, gr.Nodes, 6)
	assert.Equal(t, 1, gr.Edges[Pt{1, 0}][Pt{1, 1}])
	assert.NotContains(t, gr.Nodes, Pt{2, 0})

	all := g.ToGraph(Pt{0, 0}, true, nil)
	assert.Len(t, all.Nodes, 9)
	assert.Len(t, all.Edges[Pt{1, 1}], 8)
}
