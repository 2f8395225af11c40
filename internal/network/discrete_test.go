package network

import "testing"

func TestDiscreteSuccessorsSynchronizesOutputBeforeInput(t *testing.T) {
	components := twoComponentToy(t)
	rn := New(components, nil)
	cur := rn.InitialRegions[0]

	// Advance both clocks past 1 (guard x>=1) so the sync transition is
	// enabled on both sides: x0 -> bounded -> x0 (h=1).
	cur = DelaySuccessor(cur, rn.MaxConstant)
	cur = DelaySuccessor(cur, rn.MaxConstant)

	succs := DiscreteSuccessors(components, cur)
	if len(succs) == 0 {
		t.Fatalf("expected at least one synchronized discrete successor")
	}

	found := false
	for _, s := range succs {
		if s.Regions[0].Q == 1 && s.Regions[1].Q == 1 {
			found = true
			if !s.Regions[0].X0.Test(0) || !s.Regions[1].X0.Test(0) {
				t.Fatalf("expected both components' clocks to be reset into x0 after the sync fires, got %+v", s.Regions)
			}
			if s.ClassAorC.Test(0) != true || s.ClassAorC.Test(1) != true {
				t.Fatalf("expected both synchronized components to rejoin ClassAorC, got %v", s.ClassAorC.Slice())
			}
		}
	}
	if !found {
		t.Fatalf("expected a successor with both components in location 1 (busy), got %+v", succs)
	}
}

func TestDiscreteSuccessorsNoneBeforeGuardSatisfied(t *testing.T) {
	components := twoComponentToy(t)
	rn := New(components, nil)
	cur := rn.InitialRegions[0] // x == 0 everywhere, guard x>=1 not yet satisfied

	succs := DiscreteSuccessors(components, cur)
	if len(succs) != 0 {
		t.Fatalf("expected no discrete successors before the guard is satisfiable, got %d", len(succs))
	}
}
