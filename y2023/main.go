// Command y2023 solves the 2023 puzzles built on the search toolkit.
package main

import (
	"embed"

	aoc "github.com/maisem/aocsearch"
)

func main() {
	aoc.Run(2023, sources, &solver{})
}

//go:embed d*.go
var sources embed.FS

type solver struct {
	*aoc.Puzzle
}
