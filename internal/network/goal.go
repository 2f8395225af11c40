package network

import "github.com/kolkov/tarzan/internal/automaton"

// ComponentGoal is one component's contribution to a network Goal: a
// location index (nil means "don't care") plus clock constraints conjoined
// to the location match.
type ComponentGoal struct {
	Location    *int
	Constraints []automaton.ClockConstraint
}

// Goal is expressed per component, per spec.md §4.4: "a per-component
// optional location index (None = don't-care) plus optional per-component
// clock constraints (conjoined to location match)".
type Goal struct {
	Components []ComponentGoal
	ExploreAll bool
}

// Matches reports whether nr satisfies every non-don't-care component goal.
func (g Goal) Matches(components []Component, nr NetworkRegion) bool {
	if g.ExploreAll {
		return false
	}
	for i, cg := range g.Components {
		if cg.Location == nil && len(cg.Constraints) == 0 {
			continue
		}
		if cg.Location != nil && nr.Regions[i].Q != *cg.Location {
			return false
		}
		for _, c := range cg.Constraints {
			ci, ok := components[i].Index.ClockIndex[c.Clock]
			if !ok {
				return false
			}
			ip, hf := nr.Regions[i].Valuation(ci)
			if !c.Satisfied(ip, hf) {
				return false
			}
		}
	}
	return true
}
