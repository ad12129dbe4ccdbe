package aoc

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sortIntervals(ivs []Interval) []Interval {
	slices.SortFunc(ivs, func(a, b Interval) int { return a.Lo - b.Lo })
	return ivs
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in, domain            Interval
		before, overlap, after Interval
	}{
		{Interval{10, 20}, Interval{12, 15}, Interval{10, 12}, Interval{12, 15}, Interval{15, 20}},
		{Interval{10, 20}, Interval{0, 5}, Interval{}, Interval{}, Interval{10, 20}},
		{Interval{10, 20}, Interval{25, 30}, Interval{10, 20}, Interval{}, Interval{}},
		{Interval{10, 20}, Interval{5, 30}, Interval{}, Interval{10, 20}, Interval{}},
		{Interval{10, 20}, Interval{15, 30}, Interval{10, 15}, Interval{15, 20}, Interval{}},
		{Interval{10, 20}, Interval{3, 3}, Interval{10, 20}, Interval{}, Interval{}},
		{Interval{}, Interval{0, 5}, Interval{}, Interval{}, Interval{}},
	}
	for _, tt := range tests {
		b, o, a := tt.in.Split(tt.domain)
		if b != tt.before || o != tt.overlap || a != tt.after {
			t.Errorf("%v.Split(%v) = %v, %v, %v; want %v, %v, %v", tt.in, tt.domain, b, o, a, tt.before, tt.overlap, tt.after)
		}
	}
}

func TestCut(t *testing.T) {
	tests := []struct {
		in     Interval
		x      int
		lo, hi Interval
	}{
		{Interval{1, 4001}, 2000, Interval{1, 2000}, Interval{2000, 4001}},
		{Interval{1, 10}, 0, Interval{}, Interval{1, 10}},
		{Interval{1, 10}, 10, Interval{1, 10}, Interval{}},
		{Interval{1, 10}, 50, Interval{1, 10}, Interval{}},
	}
	for _, tt := range tests {
		lo, hi := tt.in.Cut(tt.x)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("%v.Cut(%d) = %v, %v; want %v, %v", tt.in, tt.x, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestApplyShifts(t *testing.T) {
	got := ApplyShifts([]Interval{{10, 20}}, []Shift{{Src: Interval{12, 15}, Offset: 100}})
	want := []Interval{{10, 12}, {15, 20}, {112, 115}}
	if diff := cmp.Diff(want, sortIntervals(got)); diff != "" {
		t.Errorf("ApplyShifts mismatch (-want +got):\n%s", diff)
	}

	// A translated piece is not offered to later rules.
	got = ApplyShifts([]Interval{{0, 10}}, []Shift{
		{Src: Interval{0, 5}, Offset: 5},
		{Src: Interval{5, 10}, Offset: 100},
	})
	want = []Interval{{5, 10}, {105, 110}}
	if diff := cmp.Diff(want, sortIntervals(got)); diff != "" {
		t.Errorf("ApplyShifts mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyShiftsMatchesPoints(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	randInterval := func() Interval {
		lo := r.Intn(40)
		return Interval{lo, lo + r.Intn(15)}
	}
	for i := 0; i < 500; i++ {
		var in []Interval
		for n := r.Intn(4); n > 0; n-- {
			in = append(in, randInterval())
		}
		var rules []Shift
		for n := r.Intn(5); n > 0; n-- {
			rules = append(rules, Shift{Src: randInterval(), Offset: r.Intn(200) - 100})
		}
		out := ApplyShifts(in, rules)
		if TotalLen(out) != TotalLen(in) {
			t.Fatalf("ApplyShifts(%v, %v) = %v: length %d, want %d", in, rules, out, TotalLen(out), TotalLen(in))
		}

		var want, got []int
		for _, iv := range in {
			for x := iv.Lo; x < iv.Hi; x++ {
				want = append(want, MapPoint(x, rules))
			}
		}
		for _, iv := range out {
			if iv.Empty() {
				t.Fatalf("ApplyShifts(%v, %v) returned empty %v", in, rules, iv)
			}
			for x := iv.Lo; x < iv.Hi; x++ {
				got = append(got, x)
			}
		}
		slices.Sort(want)
		slices.Sort(got)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("ApplyShifts(%v, %v) points mismatch (-want +got):\n%s", in, rules, diff)
		}
	}
}
