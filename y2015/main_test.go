package main

import (
	"testing"

	aoc "github.com/maisem/aocsearch"
)

func TestSamples(t *testing.T) {
	if err := aoc.CheckSamples(2015, sources, &solver{}); err != nil {
		t.Error(err)
	}
}
