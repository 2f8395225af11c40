// Package region implements the refined region equivalence of spec.md §3/§4.1:
// a Region summarizes every real-valued clock valuation equivalent under a
// relation finer than the classical one, distinguishing the order in which
// clocks crossed their max constants so that backward reachability can
// reconstruct predecessors correctly (spec.md §3 "Rationale for the
// ordering in unbounded").
//
// Grounded on internal/race/epoch and internal/race/shadowmem for the
// "small owned value type with explicit clone/equal/hash" shape; the actual
// operator bodies are ported from spec.md §4.1 since
// original_source/TARZAN/regions/Region.h/.cpp only carries declarations,
// not algorithm bodies.
package region

import (
	"hash/fnv"

	"github.com/kolkov/tarzan/internal/bitset"
)

// Region is a single automaton's clock-equivalence class plus control
// location, per spec.md §3.
type Region struct {
	// Q is the current location index.
	Q int
	// H holds, per clock, its integer part. A clock in Unbounded carries
	// the sentinel MaxConstant[clock]+1, per spec.md §3's "clamped sentinel
	// above the automaton's max constant for that clock".
	H []int
	// X0 is the set of clocks whose fractional part is exactly zero.
	X0 bitset.Set
	// Bounded is the ordered sequence of pairwise-disjoint, non-empty
	// groups of clocks sharing a fractional value strictly between 0 and
	// 1, ascending: front is the smallest fraction, back the largest.
	Bounded []bitset.Set
	// Unbounded is the ordered sequence of pairwise-disjoint, non-empty
	// groups of clocks whose integer part has exceeded their max
	// constant, ordered by recency: front is most-recently-unbounded,
	// back is first-unbounded.
	Unbounded []bitset.Set
}

// NewInitial builds the initial region for location q over n clocks: every
// clock at integer zero, fractional zero (all clocks in X0).
func NewInitial(n, q int) Region {
	return Region{
		Q:  q,
		H:  make([]int, n),
		X0: bitset.FromSlice(n, allIndices(n)),
	}
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// NumClocks reports the clock count this region was built over.
func (r Region) NumClocks() int { return len(r.H) }

// Clone returns a deep copy: no shared backing arrays with r, so mutating
// the clone never aliases the original (spec.md §9 "Mutable indirection for
// the h array" — h is an owned vector, never a raw/shared pointer).
func (r Region) Clone() Region {
	c := Region{
		Q:  r.Q,
		H:  append([]int(nil), r.H...),
		X0: r.X0.Clone(),
	}
	c.Bounded = cloneGroups(r.Bounded)
	c.Unbounded = cloneGroups(r.Unbounded)
	return c
}

func cloneGroups(groups []bitset.Set) []bitset.Set {
	if groups == nil {
		return nil
	}
	out := make([]bitset.Set, len(groups))
	for i, g := range groups {
		out[i] = g.Clone()
	}
	return out
}

// hasFraction reports whether clock ci currently carries a nonzero
// fractional part: false when ci ∈ X0, true when ci is in some Bounded
// group. Clocks in Unbounded report false — harmless, since every guard
// constant a clock is ever compared against is ≤ its max constant, and the
// sentinel integer part alone already decides every such comparison
// (region.go's Region.H doc, spec.md §3).
func (r Region) hasFraction(ci int) bool {
	if r.X0.Test(ci) {
		return false
	}
	for _, g := range r.Unbounded {
		if g.Test(ci) {
			return false
		}
	}
	return true
}

// Valuation returns clock ci's (integer_part, has_fraction) pair, the
// signature spec.md §3's ClockConstraint.Satisfied evaluates against.
func (r Region) Valuation(ci int) (int, bool) {
	return r.H[ci], r.hasFraction(ci)
}

// Equal implements spec.md §4.1 "Equality and hashing": q, h (componentwise),
// x0, Bounded (as an ordered sequence) and Unbounded (as an ordered
// sequence) must all match.
func (r Region) Equal(o Region) bool {
	if r.Q != o.Q || len(r.H) != len(o.H) {
		return false
	}
	for i := range r.H {
		if r.H[i] != o.H[i] {
			return false
		}
	}
	if !r.X0.Equal(o.X0) {
		return false
	}
	return groupsEqual(r.Bounded, o.Bounded) && groupsEqual(r.Unbounded, o.Unbounded)
}

func groupsEqual(a, b []bitset.Set) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Hash combines every field Equal compares, so equal regions always hash
// equal (used as the single-automaton RTS's visited-set key, spec.md §4.2).
func (r Region) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	writeUint := func(v uint64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeUint(uint64(r.Q))
	for _, v := range r.H {
		writeUint(uint64(v))
	}
	writeUint(r.X0.Hash())
	for _, g := range r.Bounded {
		writeUint(g.Hash())
	}
	for _, g := range r.Unbounded {
		writeUint(g.Hash())
	}
	return h.Sum64()
}
