package main

import (
	"strings"

	aoc "github.com/maisem/aocsearch"
)

// arrangements counts the ways to fill the unknown springs ('?') in row so
// that its runs of damaged springs ('#') have the lengths in groups. The memo
// is keyed by how far into row and groups the count has got.
func arrangements(row string, groups []int) int {
	m := aoc.NewMemo(func(k [2]int) (int, bool) {
		if k[0] < len(row) {
			return 0, false
		}
		if k[1] == len(groups) {
			return 1, true
		}
		return 0, true
	}, func(k [2]int, recurse func([2]int) int) int {
		i, j := k[0], k[1]
		var n int
		if row[i] != '#' {
			n += recurse([2]int{i + 1, j})
		}
		if row[i] == '.' || j == len(groups) {
			return n
		}
		end := i + groups[j]
		if end > len(row) || strings.Contains(row[i:end], ".") {
			return n
		}
		if end < len(row) && row[end] == '#' {
			return n
		}
		// Skip the operational spring that ends the run.
		return n + recurse([2]int{min(end+1, len(row)), j + 1})
	})
	return m.Get([2]int{0, 0})
}

func (s solver) springs(copies int) int {
	var sum int
	s.ForLines(func(line string) {
		row, list, _ := strings.Cut(line, " ")
		groups := aoc.Ints(strings.Split(list, ",")...)
		rows := make([]string, copies)
		var all []int
		for i := range rows {
			rows[i] = row
			all = append(all, groups...)
		}
		sum += arrangements(strings.Join(rows, "?"), all)
	})
	return sum
}

/*
want=21

???.### 1,1,3
.??..??...?##. 1,1,3
?#?#?#?#?#?#?#? 1,3,1,6
????.#...#... 4,1,1
????.######..#####. 1,6,5
?###???????? 3,2,1
*/
func (s solver) D12p1() any {
	return s.springs(1)
}

// want=525152
func (s solver) D12p2() any {
	return s.springs(5)
}
