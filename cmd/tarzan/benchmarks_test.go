package main

import (
	"testing"

	"github.com/kolkov/tarzan/internal/automaton"
	"github.com/kolkov/tarzan/tarzan"
)

func TestEveryCatalogEntryForwardRuns(t *testing.T) {
	for name, bench := range catalog() {
		rep, err := bench.run(dirForward, tarzan.BFS)
		if err != nil {
			t.Fatalf("%s: forward run error: %v", name, err)
		}
		if !rep.Reachable {
			t.Errorf("%s: expected forward reachability to succeed", name)
		}
		if rep.RegionsExplored <= 0 {
			t.Errorf("%s: expected at least one region explored", name)
		}
	}
}

func TestFlowerBackwardReturnsToInitial(t *testing.T) {
	bench := flowerBenchmark()
	rep, err := bench.run(dirBackward, tarzan.BFS)
	if err != nil {
		t.Fatalf("backward run error: %v", err)
	}
	if !rep.Reachable {
		t.Fatalf("expected backward reachability from the witness to reach an initial region")
	}
}

func TestFischerGoalConstraintsAreSatisfiableAtWitness(t *testing.T) {
	bench := fischerBenchmark(3)
	idx, err := bench.buildIndex()
	if err != nil {
		t.Fatalf("buildIndex: %v", err)
	}
	goal := bench.forwardGoal(idx)
	res := tarzan.Forward(idx, goal, tarzan.BFS)
	if !res.Reachable {
		t.Fatalf("expected the fischer3 goal to be reachable")
	}
}

func TestLynchForwardFindsBothProcessesInCS(t *testing.T) {
	entry := &lynchEntry{k: 3}
	rep, err := entry.run(dirForward, tarzan.BFS)
	if err != nil {
		t.Fatalf("lynch run error: %v", err)
	}
	if !rep.Reachable {
		t.Fatalf("expected lynch3 to reach both P(1).cs and P(2).cs")
	}
}

func TestLynchBackwardUnsupported(t *testing.T) {
	entry := &lynchEntry{k: 3}
	if _, err := entry.run(dirBackward, tarzan.BFS); err == nil {
		t.Fatalf("expected an error requesting backward reachability over a network")
	}
}

func TestFlattenProductBuildsCartesianLocationSpace(t *testing.T) {
	procs := []automaton.Automaton{fischerProcess("p1"), fischerProcess("p2")}
	flat := flattenProduct("toy", procs, nil)

	// 3 locations per process, 2 processes => 9 product locations.
	if len(flat.Locations) != 9 {
		t.Fatalf("expected 9 product locations, got %d", len(flat.Locations))
	}
	// Each process has 2 transitions; flattening process i holds the
	// other process's 3 locations fixed, so 2 transitions * 3 holds * 2
	// processes = 12 product transitions.
	if len(flat.Transitions) != 12 {
		t.Fatalf("expected 12 product transitions, got %d", len(flat.Transitions))
	}
	if len(flat.Clocks) != 2 {
		t.Fatalf("expected one renamed clock per process, got %d: %v", len(flat.Clocks), flat.Clocks)
	}

	idx, err := automaton.BuildIndex(flat)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	initial := comboName(procs, []int{0, 0})
	if idx.LocationIndex[initial] != idx.Initial[0] {
		t.Fatalf("expected the all-idle combo to be the single initial location")
	}
}
