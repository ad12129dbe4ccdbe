package main

import (
	"testing"

	aoc "github.com/maisem/aocsearch"
)

func TestPipes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		far      int
		enclosed int
	}{
		{
			name: "square",
			input: `.....
.S-7.
.|.|.
.L-J.
.....`,
			far:      4,
			enclosed: 1,
		},
		{
			name: "scattered",
			input: `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`,
			far:      70,
			enclosed: 8,
		},
		{
			name: "junk",
			input: `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`,
			far:      80,
			enclosed: 10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := parsePipes(tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got := farthest(m); got != tt.far {
				t.Errorf("farthest = %d, want %d", got, tt.far)
			}
			if got := aoc.PolygonInteriorPoints(m.loop()); got != tt.enclosed {
				t.Errorf("enclosed = %d, want %d", got, tt.enclosed)
			}
		})
	}
}

func TestPipesNoStart(t *testing.T) {
	if _, err := parsePipes("F7\nLJ"); err == nil {
		t.Error("parsePipes succeeded without a start tile")
	}
}
