package aoc

import (
	"fmt"
)

// CycleError reports a memoized key whose value depends on itself.
type CycleError struct {
	Key any
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("aoc: memo key %v depends on itself", e.Key)
}

// Memo is a top-down dynamic program. Keys must capture everything a
// sub-result depends on; anything left out of K silently corrupts the table.
type Memo[K comparable, V any] struct {
	// Base returns the value of terminal keys. It is consulted before the
	// table, and its values are never stored.
	Base func(k K) (V, bool)

	// Step computes the value of a non-terminal key. Sub-results must come
	// from recurse.
	Step func(k K, recurse func(K) V) V

	table    map[K]V
	active   map[K]bool
	uncached bool
}

// NewMemo returns a Memo with the given base case and step functions. base
// may be nil.
func NewMemo[K comparable, V any](base func(K) (V, bool), step func(K, func(K) V) V) *Memo[K, V] {
	return &Memo[K, V]{
		Base: base,
		Step: step,
	}
}

// Uncached turns off the table, so every Get recomputes by plain recursion.
// It returns m.
func (m *Memo[K, V]) Uncached() *Memo[K, V] {
	m.uncached = true
	m.table = nil
	return m
}

// Get returns the value of k. It panics with a *CycleError if computing k
// requires k.
func (m *Memo[K, V]) Get(k K) V {
	if m.Base != nil {
		if v, ok := m.Base(k); ok {
			return v
		}
	}
	if v, ok := m.table[k]; ok {
		return v
	}
	if m.active[k] {
		panic(&CycleError{Key: k})
	}
	InitMap(&m.active)
	m.active[k] = true
	v := m.Step(k, m.Get)
	delete(m.active, k)
	if !m.uncached {
		InitMap(&m.table)
		m.table[k] = v
	}
	return v
}

// Solve is like Get but returns a *CycleError instead of panicking.
func (m *Memo[K, V]) Solve(k K) (v V, err error) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*CycleError)
			if !ok {
				panic(r)
			}
			clear(m.active)
			err = ce
		}
	}()
	return m.Get(k), nil
}

// Len returns the number of stored entries.
func (m *Memo[K, V]) Len() int {
	return len(m.table)
}

// Tally counts the ways to finish a search while tracking the fewest items
// any of those ways uses, so both come out of a single traversal.
type Tally struct {
	Ways     int // number of ways
	Fewest   int // fewest items used by any way; zero when Ways is zero
	AtFewest int // ways that use exactly Fewest items
}

// Done is the tally of the single way that needs nothing more.
func Done() Tally {
	return Tally{Ways: 1, AtFewest: 1}
}

// Using returns t with n more items used by every way.
func (t Tally) Using(n int) Tally {
	if t.Ways == 0 {
		return t
	}
	t.Fewest += n
	return t
}

// Merge combines the tallies of two disjoint sets of ways.
func (t Tally) Merge(o Tally) Tally {
	switch {
	case t.Ways == 0:
		return o
	case o.Ways == 0:
		return t
	}
	out := Tally{Ways: t.Ways + o.Ways}
	switch {
	case t.Fewest < o.Fewest:
		out.Fewest, out.AtFewest = t.Fewest, t.AtFewest
	case o.Fewest < t.Fewest:
		out.Fewest, out.AtFewest = o.Fewest, o.AtFewest
	default:
		out.Fewest, out.AtFewest = t.Fewest, t.AtFewest+o.AtFewest
	}
	return out
}
