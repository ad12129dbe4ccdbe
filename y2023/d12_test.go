package main

import (
	"strings"
	"testing"

	aoc "github.com/maisem/aocsearch"
)

func TestArrangements(t *testing.T) {
	tests := []struct {
		line     string
		once     int
		unfolded int
	}{
		{"???.### 1,1,3", 1, 1},
		{".??..??...?##. 1,1,3", 4, 16384},
		{"?#?#?#?#?#?#?#? 1,3,1,6", 1, 1},
		{"????.#...#... 4,1,1", 1, 16},
		{"????.######..#####. 1,6,5", 4, 2500},
		{"?###???????? 3,2,1", 10, 506250},
	}
	for _, tt := range tests {
		row, list, _ := strings.Cut(tt.line, " ")
		groups := aoc.Ints(strings.Split(list, ",")...)
		if got := arrangements(row, groups); got != tt.once {
			t.Errorf("arrangements(%q) = %d, want %d", tt.line, got, tt.once)
		}
		var all []int
		for i := 0; i < 5; i++ {
			all = append(all, groups...)
		}
		unfolded := strings.Repeat(row+"?", 4) + row
		if got := arrangements(unfolded, all); got != tt.unfolded {
			t.Errorf("arrangements(%q x5) = %d, want %d", tt.line, got, tt.unfolded)
		}
	}
}
