package main

import (
	"errors"
	"testing"

	aoc "github.com/maisem/aocsearch"
)

func TestDownhillCycle(t *testing.T) {
	// Without slopes the open square lets a hike circle forever.
	tr := parseTrails(`#.###
#...#
#...#
###.#`)
	_, err := tr.downhill()
	var ce *aoc.CycleError
	if !errors.As(err, &ce) {
		t.Fatalf("downhill = %v, want a CycleError", err)
	}
	if n, ok := tr.anyHike(); !ok || n != 7 {
		t.Errorf("anyHike = %d, %v; want 7, true", n, ok)
	}
}

func TestDownhillBlocked(t *testing.T) {
	// The only way down climbs a slope.
	tr := parseTrails(`#.#
#^#
#.#`)
	if n, err := tr.downhill(); !errors.Is(err, errNoHike) {
		t.Errorf("downhill = %d, %v; want %v", n, err, errNoHike)
	}
	if n, ok := tr.anyHike(); !ok || n != 2 {
		t.Errorf("anyHike = %d, %v; want 2, true", n, ok)
	}
}
