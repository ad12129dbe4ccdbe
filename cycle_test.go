package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCycle(t *testing.T) {
	// 3 -> 10 -> 5 -> 16 -> 8 -> 4 -> 2 -> 1 -> 4 -> ...
	collatz := func(n int) int {
		if n%2 == 0 {
			return n / 2
		}
		return 3*n + 1
	}
	c := DetectCycle(3, collatz, func(n int) int { return n })
	assert.Equal(t, 5, c.Start)
	assert.Equal(t, 3, c.Period)
	n := 3
	for i := 0; i < 50; i++ {
		assert.Equal(t, n, c.At(i), "At(%d)", i)
		n = collatz(n)
	}
	assert.Equal(t, 4, c.At(1_000_000_001))
}

func TestDetectCycleGrid(t *testing.T) {
	g := ParseGrid("ab\ncd", func(r rune) rune { return r })
	c := DetectCycle(g, Grid[rune].RotateClockwise, Grid[rune].Hash)
	assert.Equal(t, 0, c.Start)
	assert.Equal(t, 4, c.Period)
	assert.Equal(t, Grid[rune]{{'d', 'c'}, {'b', 'a'}}, c.At(6))
}
