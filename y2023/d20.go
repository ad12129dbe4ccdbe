package main

import (
	"fmt"
	"slices"
	"strings"

	aoc "github.com/maisem/aocsearch"
	"golang.org/x/exp/maps"
)

type pulse struct {
	from, to string
	high     bool
}

type moduleKind byte

const (
	broadcast moduleKind = iota
	flipFlop
	conjunction
	sink // named only as a destination
)

type module struct {
	kind  moduleKind
	name  string
	outs  []string
	on    bool            // flip-flop state
	last  map[string]bool // conjunction memory, by input
	order []string        // conjunction inputs, in wiring order
}

// Process handles an incoming pulse and returns the pulses it sends.
func (m *module) Process(p pulse) []pulse {
	var high bool
	switch m.kind {
	case broadcast:
		high = p.high
	case flipFlop:
		if p.high {
			return nil
		}
		m.on = !m.on
		high = m.on
	case conjunction:
		m.last[p.from] = p.high
		high = false
		for _, in := range m.order {
			if !m.last[in] {
				high = true
				break
			}
		}
	default:
		return nil
	}
	out := make([]pulse, 0, len(m.outs))
	for _, o := range m.outs {
		out = append(out, pulse{from: m.name, to: o, high: high})
	}
	return out
}

type network map[string]*module

func parseNetwork(input string) network {
	n := make(network)
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		// %a -> inv, con
		name, outs, _ := strings.Cut(line, " -> ")
		m := &module{kind: broadcast, name: name}
		switch name[0] {
		case '%':
			m.kind, m.name = flipFlop, name[1:]
		case '&':
			m.kind, m.name = conjunction, name[1:]
			m.last = make(map[string]bool)
		}
		m.outs = strings.Split(outs, ", ")
		n[m.name] = m
	}
	names := maps.Keys(n)
	slices.Sort(names)
	for _, name := range names {
		for _, o := range n[name].outs {
			dst, ok := n[o]
			if !ok {
				dst = &module{kind: sink, name: o}
				n[o] = dst
			}
			if dst.kind == conjunction {
				dst.order = append(dst.order, name)
			}
		}
	}
	return n
}

// press sends one low pulse to the broadcaster and delivers every pulse it
// causes, in order. watch, if not nil, sees each pulse before delivery.
func (n network) press(watch func(pulse)) (low, high int) {
	q := aoc.NewQueue(pulse{from: "button", to: "broadcaster"})
	q.While(func(p pulse) bool {
		if p.high {
			high++
		} else {
			low++
		}
		if watch != nil {
			watch(p)
		}
		if m, ok := n[p.to]; ok {
			for _, np := range m.Process(p) {
				q.Push(np)
			}
		}
		return true
	})
	return low, high
}

func pulseProduct(input string, presses int) int {
	n := parseNetwork(input)
	var low, high int
	for i := 0; i < presses; i++ {
		l, h := n.press(nil)
		low += l
		high += h
	}
	return low * high
}

// pressesToActivate returns how many presses it takes for target to receive a
// low pulse. target must be fed by exactly one conjunction whose inputs each
// send their first high pulse on a fixed period; the answer is the least
// common multiple of those first presses. Each input is timed on a freshly
// wired network.
func pressesToActivate(input, target string, limit int) (int, error) {
	n := parseNetwork(input)
	var feeders []string
	for name, m := range n {
		if slices.Contains(m.outs, target) {
			feeders = append(feeders, name)
		}
	}
	if len(feeders) != 1 || n[feeders[0]].kind != conjunction {
		return 0, fmt.Errorf("%s is fed by %v; want a single conjunction", target, feeders)
	}
	feeder := feeders[0]
	var periods []int
	for _, in := range n[feeder].order {
		fresh := parseNetwork(input)
		found := 0
		for i := 1; found == 0 && i <= limit; i++ {
			fresh.press(func(p pulse) {
				if found == 0 && p.from == in && p.to == feeder && p.high {
					found = i
				}
			})
		}
		if found == 0 {
			return 0, fmt.Errorf("%s never sent a high pulse to %s in %d presses", in, feeder, limit)
		}
		periods = append(periods, found)
	}
	return aoc.LCM(periods...), nil
}

/*
want=32000000

broadcaster -> a, b, c
%a -> b
%b -> c
%c -> inv
&inv -> a
*/
func (s solver) D20p1() any {
	return pulseProduct(s.Text(), 1000)
}

func (s solver) D20p2() any {
	return aoc.MustGet(pressesToActivate(s.Text(), "rx", 1<<16))
}
