package main

import "testing"

func TestBestTour(t *testing.T) {
	var ds distances
	// A square with cheap sides and an expensive diagonal.
	for _, e := range []struct {
		a, b string
		w    int
	}{
		{"a", "b", 1}, {"b", "c", 1}, {"c", "d", 1}, {"d", "a", 1},
		{"a", "c", 10}, {"b", "d", 10},
	} {
		ds.add(e.a, e.b, e.w)
		ds.add(e.b, e.a, e.w)
	}
	lo := func(a, b int) int { return min(a, b) }
	hi := func(a, b int) int { return max(a, b) }
	tests := []struct {
		name   string
		closed bool
		better func(a, b int) int
		want   int
	}{
		{"shortest path", false, lo, 3},
		{"longest path", false, hi, 21},
		{"shortest cycle", true, lo, 4},
		{"longest cycle", true, hi, 22},
	}
	for _, tt := range tests {
		if got := ds.bestTour(tt.closed, tt.better); got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, got, tt.want)
		}
	}
}
