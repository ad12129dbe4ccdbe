package aoc

import "fmt"

// Interval is the half-open range [Lo, Hi). It is empty when Hi <= Lo.
type Interval struct {
	Lo, Hi int
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d,%d)", i.Lo, i.Hi)
}

// Len returns the number of integers in i.
func (i Interval) Len() int {
	if i.Hi <= i.Lo {
		return 0
	}
	return i.Hi - i.Lo
}

func (i Interval) Empty() bool {
	return i.Hi <= i.Lo
}

func (i Interval) Contains(x int) bool {
	return i.Lo <= x && x < i.Hi
}

// Translate returns i moved by d.
func (i Interval) Translate(d int) Interval {
	return Interval{i.Lo + d, i.Hi + d}
}

// Split partitions i into the parts below, inside and above domain. Empty
// parts are returned as the zero Interval. The lengths of the three parts
// always add up to i.Len().
func (i Interval) Split(domain Interval) (before, overlap, after Interval) {
	if i.Empty() {
		return Interval{}, Interval{}, Interval{}
	}
	if domain.Empty() {
		return i, Interval{}, Interval{}
	}
	before = nonEmpty(Interval{i.Lo, min(i.Hi, domain.Lo)})
	overlap = nonEmpty(Interval{max(i.Lo, domain.Lo), min(i.Hi, domain.Hi)})
	after = nonEmpty(Interval{max(i.Lo, domain.Hi), i.Hi})
	return before, overlap, after
}

// Cut splits i at x into [Lo, x) and [x, Hi), clamped to i.
func (i Interval) Cut(x int) (lo, hi Interval) {
	c := min(max(x, i.Lo), i.Hi)
	return nonEmpty(Interval{i.Lo, c}), nonEmpty(Interval{c, i.Hi})
}

func nonEmpty(i Interval) Interval {
	if i.Empty() {
		return Interval{}
	}
	return i
}

// Shift is a rewrite rule moving the values in Src by Offset.
type Shift struct {
	Src    Interval
	Offset int
}

// MapPoint applies the first rule whose source contains x. Values no rule
// covers map to themselves.
func MapPoint(x int, rules []Shift) int {
	for _, r := range rules {
		if r.Src.Contains(x) {
			return x + r.Offset
		}
	}
	return x
}

// ApplyShifts returns the image of in under rules. Rules are tried in order;
// the part of an interval a rule covers is translated and not offered to
// later rules, while the parts before and after it carry on. What is left
// after the last rule passes through unchanged. TotalLen of the result
// equals TotalLen of in.
func ApplyShifts(in []Interval, rules []Shift) []Interval {
	var carried, out []Interval
	for _, iv := range in {
		if !iv.Empty() {
			carried = append(carried, iv)
		}
	}
	for _, r := range rules {
		var left []Interval
		for _, iv := range carried {
			before, overlap, after := iv.Split(r.Src)
			if !overlap.Empty() {
				out = append(out, overlap.Translate(r.Offset))
			}
			if !before.Empty() {
				left = append(left, before)
			}
			if !after.Empty() {
				left = append(left, after)
			}
		}
		carried = left
	}
	return append(out, carried...)
}

// TotalLen returns the sum of the lengths of ivs.
func TotalLen(ivs []Interval) int {
	var n int
	for _, iv := range ivs {
		n += iv.Len()
	}
	return n
}
