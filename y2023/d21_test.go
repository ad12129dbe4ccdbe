package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const gardenSample = `...........
.....###.#.
.###.##..#.
..#.#...#..
....#.#....
.##..S####.
.##..#...#.
.......##..
.##.#.####.
.##..##.##.
...........`

func TestPlots(t *testing.T) {
	g := parseGarden(gardenSample)
	tests := []struct {
		steps int
		wrap  bool
		want  int
	}{
		{6, false, 16},
		{6, true, 16},
		{10, true, 50},
		{50, true, 1594},
		{100, true, 6536},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.plots(tt.steps, tt.wrap), "plots(%d, wrap=%v)", tt.steps, tt.wrap)
	}
}

func TestFarPlotsOpenField(t *testing.T) {
	// With no rocks the reachable plots form a diamond, so the fit is exact.
	g := parseGarden(".....\n.....\n..S..\n.....\n.....")
	for _, steps := range []int{12, 17, 42} {
		got, err := g.farPlots(steps)
		assert.NoError(t, err)
		assert.Equal(t, g.plots(steps, true), got, "steps %d", steps)
		assert.Equal(t, (steps+1)*(steps+1), got, "steps %d", steps)
	}
}
