package region

import (
	"github.com/kolkov/tarzan/internal/automaton"
	"github.com/kolkov/tarzan/internal/bitset"
	"github.com/kolkov/tarzan/internal/partition"
)

// DiscreteSuccessor applies a single outgoing transition to r, per spec.md
// §4.1 "Immediate discrete successors": guard check, variable assignment,
// clock reset, location update, target-invariant check. ok is false when
// the guard is unsatisfied or the target invariant rejects the result — per
// spec.md §4.6 that is a normal "skip", never an error.
//
// vars is the current integer-variable store (read-only); the returned map
// is a fresh store reflecting tr's assignments, evaluated against vars
// (not against each other — spec.md §3 describes assignments as a single
// expression block over "current network_variables").
func DiscreteSuccessor(r Region, tr automaton.Transition, clockIdx map[string]int, targetQ int, targetInvariant []automaton.ClockConstraint, vars map[string]int) (Region, map[string]int, bool) {
	for _, g := range tr.Guard {
		ci, ok := clockIdx[g.Clock]
		if !ok {
			return Region{}, nil, false
		}
		ip, hf := r.Valuation(ci)
		if !g.Satisfied(ip, hf) {
			return Region{}, nil, false
		}
	}

	newVars := make(map[string]int, len(vars))
	for k, v := range vars {
		newVars[k] = v
	}
	for _, a := range tr.Assignments {
		newVars[a.Var] = a.Expr(vars)
	}

	c := r.Clone()
	c.Q = targetQ
	for _, name := range tr.Resets {
		ci, ok := clockIdx[name]
		if !ok {
			continue
		}
		removeFromGroups(&c, ci)
		c.H[ci] = 0
		c.X0.Set(ci)
	}

	for _, inv := range targetInvariant {
		ci, ok := clockIdx[inv.Clock]
		if !ok {
			return Region{}, nil, false
		}
		ip, hf := c.Valuation(ci)
		if !inv.Satisfied(ip, hf) {
			return Region{}, nil, false
		}
	}

	return c, newVars, true
}

// removeFromGroups clears ci from X0 and drops it from whichever Bounded or
// Unbounded group currently contains it, pruning the group if it becomes
// empty (groups must stay non-empty, spec.md §3 invariants).
func removeFromGroups(c *Region, ci int) {
	c.X0.Clear(ci)
	c.Bounded = removeFromGroupSlice(c.Bounded, ci)
	c.Unbounded = removeFromGroupSlice(c.Unbounded, ci)
}

func removeFromGroupSlice(groups []bitset.Set, ci int) []bitset.Set {
	out := groups[:0:0]
	for _, g := range groups {
		if g.Test(ci) {
			g = g.Clone()
			g.Clear(ci)
			if g.None() {
				continue
			}
		}
		out = append(out, g)
	}
	return out
}

// DiscretePredecessors computes every region tr could have produced r from,
// per spec.md §4.1 "Immediate discrete predecessors". tr must be a
// transition whose Target is r's location.
//
// Integer-variable state is not reconstructed: spec.md §9 "Integer
// variables in discrete predecessors" states backward reachability ignores
// variable state entirely, so this operator has no vars parameter.
func DiscretePredecessors(r Region, tr automaton.Transition, clockIdx map[string]int, sourceQ int, sourceInvariant []automaton.ClockConstraint, maxConstant []int) []Region {
	n := r.NumClocks()

	resetIdx := make([]int, 0, len(tr.Resets))
	resetSet := bitset.New(n)
	for _, name := range tr.Resets {
		ci, ok := clockIdx[name]
		if !ok {
			return nil
		}
		resetIdx = append(resetIdx, ci)
		resetSet.Set(ci)
	}

	// Non-reset clocks pass through untouched: same h, same group
	// membership as in r.
	base := r.Clone()
	base.Q = sourceQ
	for _, ci := range resetIdx {
		removeFromGroups(&base, ci)
	}

	guardByClock := make(map[int][]automaton.ClockConstraint)
	for _, g := range tr.Guard {
		ci, ok := clockIdx[g.Clock]
		if !ok {
			return nil
		}
		guardByClock[ci] = append(guardByClock[ci], g)
	}

	// Non-reset clocks must already satisfy the guard under their
	// inherited (unchanged) valuation.
	for ci, cs := range guardByClock {
		if resetSet.Test(ci) {
			continue
		}
		ip, hf := r.Valuation(ci)
		for _, g := range cs {
			if !g.Satisfied(ip, hf) {
				return nil
			}
		}
	}

	if len(resetIdx) == 0 {
		return filterByInvariant([]Region{base}, clockIdx, sourceInvariant)
	}

	// Each reset clock's pre-image integer part ranges over [0, maxConstant],
	// and independently of that value its fractional part could have been
	// exactly zero (kindX0 — the clock simply sat in x0 before the reset, a
	// no-op on its fraction), strictly positive (kindBounded — needs the
	// ordered-partition placement below), or the clock could already have
	// been past its max constant (kindUnbounded, sentinel maxConstant+1,
	// fraction irrelevant). Guard satisfaction depends on which of these
	// holds, so every (value, kind) pair is a distinct candidate.
	candidateLists := make([][]resetCandidate, len(resetIdx))
	for i, ci := range resetIdx {
		var opts []resetCandidate
		for v := 0; v <= maxConstant[ci]; v++ {
			opts = append(opts, resetCandidate{value: v, kind: kindX0})
			opts = append(opts, resetCandidate{value: v, kind: kindBounded})
		}
		opts = append(opts, resetCandidate{value: maxConstant[ci] + 1, kind: kindUnbounded})
		candidateLists[i] = opts
	}

	var out []Region
	for _, combo := range cartesianResetCandidates(candidateLists) {
		x0clocks := bitset.New(n)
		finite := bitset.New(n)
		unbounded := bitset.New(n)
		values := make(map[int]int, len(resetIdx))
		ok := true
		for i, ci := range resetIdx {
			cand := combo[i]
			var hf bool
			switch cand.kind {
			case kindX0:
				x0clocks.Set(ci)
				values[ci] = cand.value
			case kindBounded:
				finite.Set(ci)
				values[ci] = cand.value
				hf = true
			case kindUnbounded:
				unbounded.Set(ci)
			}
			for _, g := range guardByClock[ci] {
				if !g.Satisfied(cand.value, hf) {
					ok = false
				}
			}
		}
		if !ok {
			continue
		}

		for _, region := range placeResetClocks(base, x0clocks, finite, unbounded, values, maxConstant) {
			out = append(out, region)
		}
	}

	return filterByInvariant(out, clockIdx, sourceInvariant)
}

// resetCandidate is one admissible pre-image valuation for a single reset
// clock.
type resetCandidate struct {
	value int
	kind  int
}

const (
	kindX0 = iota
	kindBounded
	kindUnbounded
)

// cartesianResetCandidates is the n-ary cartesian product of per-clock
// candidate lists (the partition package's VectorProduct works only over
// plain ints, so resetCandidate gets its own small product here).
func cartesianResetCandidates(lists [][]resetCandidate) [][]resetCandidate {
	if len(lists) == 0 {
		return nil
	}
	result := [][]resetCandidate{{}}
	for _, opts := range lists {
		next := make([][]resetCandidate, 0, len(result)*len(opts))
		for _, combo := range result {
			for _, o := range opts {
				nc := make([]resetCandidate, len(combo)+1)
				copy(nc, combo)
				nc[len(combo)] = o
				next = append(next, nc)
			}
		}
		result = next
	}
	return result
}

// placeResetClocks folds the x0-kind reset clocks directly into the base
// region's x0 set, adds a new front-of-Unbounded group for the
// unbounded-kind clocks, and enumerates every ordered partition of the
// bounded-kind clocks into Bounded groups (spec.md §4.5 restricted-growth
// strings), inserted as one contiguous run at every possible position in
// the existing Bounded sequence.
func placeResetClocks(base Region, x0clocks, finite, unbounded bitset.Set, values map[int]int, maxConstant []int) []Region {
	withValues := base.Clone()
	for ci, v := range values {
		withValues.H[ci] = v
	}
	for _, ci := range unbounded.Slice() {
		withValues.H[ci] = maxConstant[ci] + 1
	}

	withValues.X0 = withValues.X0.Or(x0clocks)
	if unbounded.Any() {
		withValues.Unbounded = append([]bitset.Set{unbounded.Clone()}, withValues.Unbounded...)
	}

	if finite.None() {
		return []Region{withValues}
	}

	var out []Region
	for _, ordered := range partition.EnumerateOrdered(finite) {
		for pos := 0; pos <= len(withValues.Bounded); pos++ {
			c := withValues.Clone()
			nb := make([]bitset.Set, 0, len(c.Bounded)+len(ordered))
			nb = append(nb, cloneGroups(c.Bounded[:pos])...)
			nb = append(nb, cloneGroups(ordered)...)
			nb = append(nb, cloneGroups(c.Bounded[pos:])...)
			c.Bounded = nb
			out = append(out, c)
		}
	}
	return out
}

func filterByInvariant(regions []Region, clockIdx map[string]int, invariant []automaton.ClockConstraint) []Region {
	if len(invariant) == 0 {
		return regions
	}
	var out []Region
	for _, r := range regions {
		ok := true
		for _, inv := range invariant {
			ci, known := clockIdx[inv.Clock]
			if !known {
				ok = false
				break
			}
			ip, hf := r.Valuation(ci)
			if !inv.Satisfied(ip, hf) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}
