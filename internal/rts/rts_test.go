package rts

import (
	"testing"

	"github.com/kolkov/tarzan/internal/automaton"
	"github.com/kolkov/tarzan/internal/region"
)

// toy builds a 2-location, 1-clock automaton: idle --(x>=1, reset x)--> busy,
// with an invariant x<=3 on busy.
func toy(t *testing.T) *automaton.Index {
	t.Helper()
	a := automaton.Automaton{
		Name:   "toy",
		Clocks: []string{"x"},
		Locations: []automaton.Location{
			{Name: "idle", Initial: true},
			{Name: "busy"},
		},
		Transitions: []automaton.Transition{
			{
				Source: "idle",
				Action: automaton.Action{Name: "go"},
				Guard:  []automaton.ClockConstraint{{Clock: "x", Op: automaton.GreaterEq, K: 1}},
				Resets: []string{"x"},
				Target: "busy",
			},
		},
		Invariants: map[string][]automaton.ClockConstraint{
			"busy": {{Clock: "x", Op: automaton.LessEq, K: 3}},
		},
	}
	idx, err := automaton.BuildIndex(a)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	return idx
}

func TestForwardReachabilityFindsGoal(t *testing.T) {
	idx := toy(t)
	r := New(idx)

	goal := AtLocation(idx.LocationIndex["busy"])
	res := r.ForwardReachability(goal, BFS)
	if !res.Reachable {
		t.Fatalf("expected busy to be forward-reachable")
	}
	if res.Witness == nil || res.Witness.Q != idx.LocationIndex["busy"] {
		t.Fatalf("expected witness region at busy, got %v", res.Witness)
	}
}

func TestForwardReachabilityUnreachableGoal(t *testing.T) {
	idx := toy(t)
	r := New(idx)

	ghostLoc := len(idx.LocationNames)
	goal := AtLocation(ghostLoc)
	res := r.ForwardReachability(goal, DFS)
	if res.Reachable {
		t.Fatalf("expected a location outside the automaton to be unreachable")
	}
}

func TestBackwardReachabilityFindsInitial(t *testing.T) {
	idx := toy(t)
	r := New(idx)

	goal := AtLocation(idx.LocationIndex["busy"])
	fwd := r.ForwardReachability(goal, BFS)
	if !fwd.Reachable {
		t.Fatalf("setup: expected forward reachability to find busy")
	}

	back := r.BackwardReachability([]region.Region{*fwd.Witness}, BFS)
	if !back.Reachable {
		t.Fatalf("expected an initial region to be backward-reachable from the busy witness")
	}
}

func TestExploreAllCollectsEveryRegion(t *testing.T) {
	idx := toy(t)
	r := New(idx)

	res := r.ForwardReachability(ExploreAllGoal(), BFS)
	if res.Reachable {
		t.Fatalf("ExploreAll should never report Reachable=true")
	}
	if len(res.Reached) == 0 {
		t.Fatalf("expected ExploreAll to collect at least the initial region")
	}
}
