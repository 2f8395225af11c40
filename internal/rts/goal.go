package rts

import (
	"github.com/kolkov/tarzan/internal/automaton"
	"github.com/kolkov/tarzan/internal/region"
)

// Goal is the forward-reachability target, per spec.md §4.2 "target
// location (or target clock-constraint set, or 'explore all')".
type Goal struct {
	// Location, when non-nil, requires the region's location to match.
	Location *int
	// Constraints, when non-empty, are conjoined with the location match.
	Constraints []automaton.ClockConstraint
	// ExploreAll, when true, makes Matches never succeed: the driver then
	// runs until the worklist is exhausted and reports the full reachable
	// set instead of stopping at a witness.
	ExploreAll bool
}

// AtLocation builds a Goal matching any region at location q.
func AtLocation(q int) Goal { return Goal{Location: &q} }

// ExploreAllGoal builds a Goal that never matches, forcing full
// exploration of the reachable state space.
func ExploreAllGoal() Goal { return Goal{ExploreAll: true} }

// Matches reports whether r satisfies the goal's location and clock
// constraints.
func (g Goal) Matches(idx *automaton.Index, r region.Region) bool {
	if g.ExploreAll {
		return false
	}
	if g.Location != nil && r.Q != *g.Location {
		return false
	}
	for _, c := range g.Constraints {
		ci, ok := idx.ClockIndex[c.Clock]
		if !ok {
			return false
		}
		ip, hf := r.Valuation(ci)
		if !c.Satisfied(ip, hf) {
			return false
		}
	}
	return true
}
