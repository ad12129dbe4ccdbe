package main

import (
	"strings"

	aoc "github.com/maisem/aocsearch"
)

// rule sends a part to target when its rating in category cat compares to
// val by op. A rule with op 0 always matches.
type rule struct {
	cat    int
	op     byte
	val    int
	target string
}

func (r rule) matches(part [4]int) bool {
	switch r.op {
	case '<':
		return part[r.cat] < r.val
	case '>':
		return part[r.cat] > r.val
	}
	return true
}

// split divides iv into the values this rule sends on and those it passes
// to the next rule.
func (r rule) split(iv aoc.Interval) (match, rest aoc.Interval) {
	switch r.op {
	case '<':
		return iv.Cut(r.val)
	case '>':
		rest, match = iv.Cut(r.val + 1)
		return match, rest
	}
	return iv, aoc.Interval{}
}

const categories = "xmas"

func parseRule(s string) rule {
	cond, target, ok := strings.Cut(s, ":")
	if !ok {
		return rule{target: s}
	}
	return rule{
		cat:    strings.IndexByte(categories, cond[0]),
		op:     cond[1],
		val:    aoc.Int(cond[2:]),
		target: target,
	}
}

type system struct {
	workflows map[string][]rule
	parts     [][4]int
}

func parseSystem(input string) system {
	flows, parts, _ := strings.Cut(strings.TrimSpace(input), "\n\n")
	sys := system{workflows: make(map[string][]rule)}
	for _, line := range strings.Split(flows, "\n") {
		// px{a<2006:qkq,m>2090:A,rfg}
		name, body, _ := strings.Cut(strings.TrimSuffix(line, "}"), "{")
		for _, r := range strings.Split(body, ",") {
			sys.workflows[name] = append(sys.workflows[name], parseRule(r))
		}
	}
	for _, line := range strings.Split(parts, "\n") {
		// {x=787,m=2655,a=1222,s=2876}
		var p [4]int
		for _, kv := range strings.Split(strings.Trim(line, "{}"), ",") {
			k, v, _ := strings.Cut(kv, "=")
			p[strings.Index(categories, k)] = aoc.Int(v)
		}
		sys.parts = append(sys.parts, p)
	}
	return sys
}

func (sys system) accepts(p [4]int) bool {
	at := "in"
	for at != "A" && at != "R" {
		for _, r := range sys.workflows[at] {
			if r.matches(p) {
				at = r.target
				break
			}
		}
	}
	return at == "A"
}

// acceptedRatings sums every rating of the listed parts that sys accepts.
func (sys system) acceptedRatings() int {
	var sum int
	for _, p := range sys.parts {
		if sys.accepts(p) {
			sum += aoc.Sum(p[:]...)
		}
	}
	return sum
}

// box is a set of parts given as one rating range per category.
type box [4]aoc.Interval

func (b box) size() int {
	n := 1
	for _, iv := range b {
		n *= iv.Len()
	}
	return n
}

// combinations counts the parts with ratings in [1, 4000] that sys accepts.
func (sys system) combinations() int {
	type job struct {
		at string
		b  box
	}
	full := aoc.Interval{Lo: 1, Hi: 4001}
	var st aoc.Stack[job]
	st.Push(job{"in", box{full, full, full, full}})
	var total int
	st.While(func(j job) bool {
		switch j.at {
		case "A":
			total += j.b.size()
			return true
		case "R":
			return true
		}
		b := j.b
		for _, r := range sys.workflows[j.at] {
			match, rest := r.split(b[r.cat])
			if !match.Empty() {
				nb := b
				nb[r.cat] = match
				st.Push(job{r.target, nb})
			}
			if rest.Empty() {
				break
			}
			b[r.cat] = rest
		}
		return true
	})
	return total
}

/*
want=19114

px{a<2006:qkq,m>2090:A,rfg}
pv{a>1716:R,A}
lnx{m>1548:A,A}
rfg{s<537:gd,x>2440:R,A}
qs{s>3448:A,lnx}
qkq{x<1416:A,crn}
crn{x>2662:A,R}
in{s<1351:px,qqz}
qqz{s>2770:qs,m<1801:hdj,R}
gd{a>3333:R,R}
hdj{m>838:A,pv}

{x=787,m=2655,a=1222,s=2876}
{x=1679,m=44,a=2067,s=496}
{x=2036,m=264,a=79,s=2244}
{x=2461,m=1339,a=466,s=291}
{x=2127,m=1623,a=2188,s=1013}
*/
func (s solver) D19p1() any {
	return parseSystem(s.Text()).acceptedRatings()
}

// want=167409079868000
func (s solver) D19p2() any {
	return parseSystem(s.Text()).combinations()
}
