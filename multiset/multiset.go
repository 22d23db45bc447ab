package multiset

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
)

// Multiset counts occurrences of comparable values. Iteration follows the
// order in which keys were first added. Every stored count is positive.
type Multiset[K comparable] struct {
	counts map[K]int
	order  []K
}

func New[K comparable]() *Multiset[K] {
	return &Multiset[K]{counts: make(map[K]int)}
}

// Of tallies items into a new multiset.
func Of[K comparable](items ...K) *Multiset[K] {
	m := New[K]()
	for _, item := range items {
		m.Add(item)
	}
	return m
}

func (m *Multiset[K]) Add(k K) {
	m.AddN(k, 1)
}

// AddN adds n occurrences of k. Non-positive n is ignored.
func (m *Multiset[K]) AddN(k K, n int) {
	if n <= 0 {
		return
	}
	if _, ok := m.counts[k]; !ok {
		m.order = append(m.order, k)
	}
	m.counts[k] += n
}

func (m *Multiset[K]) Count(k K) int {
	return m.counts[k]
}

// Len returns the number of distinct keys.
func (m *Multiset[K]) Len() int {
	return len(m.counts)
}

// Total returns the sum of all counts.
func (m *Multiset[K]) Total() int {
	total := 0
	for _, n := range m.counts {
		total += n
	}
	return total
}

// Keys returns the distinct keys in first-seen order.
func (m *Multiset[K]) Keys() []K {
	return append([]K(nil), m.order...)
}

func (m *Multiset[K]) Each(fn func(k K, n int)) {
	for _, k := range m.order {
		fn(k, m.counts[k])
	}
}

// Equal reports whether a and b hold the same keys with the same counts.
func Equal[K comparable](a, b *Multiset[K]) bool {
	return maps.Equal(a.counts, b.counts)
}

// Subtract returns the keys of a whose count in a exceeds their count in b,
// mapped to the excess, in a's order.
func Subtract[K comparable](a, b *Multiset[K]) *Multiset[K] {
	out := New[K]()
	for _, k := range a.order {
		out.AddN(k, clippedSub(a.counts[k], b.counts[k]))
	}
	return out
}

func clippedSub[T constraints.Integer](x, y T) T {
	if x > y {
		return x - y
	}
	return 0
}
