package main

import (
	"testing"

	aoc "github.com/maisem/aocsearch"
)

func TestBounce(t *testing.T) {
	tests := []struct {
		c    byte
		in   aoc.Direction
		want []aoc.Direction
	}{
		{'.', aoc.Up, []aoc.Direction{aoc.Up}},
		{'/', aoc.Right, []aoc.Direction{aoc.Up}},
		{'/', aoc.Down, []aoc.Direction{aoc.Left}},
		{'\\', aoc.Right, []aoc.Direction{aoc.Down}},
		{'\\', aoc.Up, []aoc.Direction{aoc.Left}},
		{'|', aoc.Left, []aoc.Direction{aoc.Up, aoc.Down}},
		{'|', aoc.Up, []aoc.Direction{aoc.Up}},
		{'-', aoc.Down, []aoc.Direction{aoc.Left, aoc.Right}},
	}
	for _, tt := range tests {
		got := bounce(tt.c, tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("bounce(%c, %v) = %v, want %v", tt.c, tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("bounce(%c, %v) = %v, want %v", tt.c, tt.in, got, tt.want)
			}
		}
	}
}

func TestEnergizedLoop(t *testing.T) {
	// The beam circles the mirrors forever; each tile counts once.
	g := aoc.ParseGrid(`/-\
|.|
\-/`, func(r rune) byte { return byte(r) })
	if got := energized(g, aoc.Path{Pt: aoc.Pt{X: 1}, Dir: aoc.Right}); got != 8 {
		t.Errorf("energized = %d, want 8", got)
	}
}
