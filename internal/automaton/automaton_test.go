package automaton

import "testing"

func TestClockConstraintSatisfied(t *testing.T) {
	cases := []struct {
		name        string
		c           ClockConstraint
		integerPart int
		hasFraction bool
		want        bool
	}{
		{"eq holds on exact integer", ClockConstraint{Op: Equal, K: 2}, 2, false, true},
		{"eq fails with fraction", ClockConstraint{Op: Equal, K: 2}, 2, true, false},
		{"leq holds below", ClockConstraint{Op: LessEq, K: 2}, 1, false, true},
		{"leq fails with fraction at boundary", ClockConstraint{Op: LessEq, K: 2}, 2, true, false},
		{"lt holds strictly below", ClockConstraint{Op: Less, K: 2}, 1, true, true},
		{"lt holds at boundary without fraction", ClockConstraint{Op: Less, K: 2}, 2, false, true},
		{"lt fails above", ClockConstraint{Op: Less, K: 2}, 3, false, false},
		{"gt holds with fraction at boundary", ClockConstraint{Op: Greater, K: 2}, 2, true, true},
		{"gt fails at boundary without fraction", ClockConstraint{Op: Greater, K: 2}, 2, false, false},
		{"geq holds at boundary without fraction", ClockConstraint{Op: GreaterEq, K: 2}, 2, false, true},
		{"geq holds above", ClockConstraint{Op: GreaterEq, K: 2}, 3, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Satisfied(tc.integerPart, tc.hasFraction); got != tc.want {
				t.Errorf("Satisfied(%d, %v) = %v, want %v", tc.integerPart, tc.hasFraction, got, tc.want)
			}
		})
	}
}

func TestActionMatches(t *testing.T) {
	out := Action{Name: "sync", Tag: SyncOutput}
	in := Action{Name: "sync", Tag: SyncInput}
	other := Action{Name: "other", Tag: SyncInput}

	if !out.Matches(in) {
		t.Fatalf("expected matching input/output pair to match")
	}
	if !in.Matches(out) {
		t.Fatalf("Matches should be symmetric")
	}
	if out.Matches(other) {
		t.Fatalf("actions with different names must not match")
	}
	if out.Matches(Action{Name: "sync", Tag: SyncOutput}) {
		t.Fatalf("two outputs must not match")
	}
}

func twoLocationAutomaton() Automaton {
	return Automaton{
		Name:   "toy",
		Clocks: []string{"x"},
		Locations: []Location{
			{Name: "idle", Initial: true},
			{Name: "busy", Urgent: true},
		},
		Transitions: []Transition{
			{
				Source: "idle",
				Action: Action{Name: "go", Tag: SyncNone},
				Guard:  []ClockConstraint{{Clock: "x", Op: GreaterEq, K: 1}},
				Resets: []string{"x"},
				Target: "busy",
			},
		},
		Invariants: map[string][]ClockConstraint{
			"busy": {{Clock: "x", Op: LessEq, K: 5}},
		},
		Variables: map[string]int{"count": 0},
	}
}

func TestBuildIndex(t *testing.T) {
	idx, err := BuildIndex(twoLocationAutomaton())
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	idleIdx := idx.LocationIndex["idle"]
	busyIdx := idx.LocationIndex["busy"]

	if len(idx.OutTransitions[idleIdx]) != 1 {
		t.Fatalf("expected 1 outgoing transition from idle, got %d", len(idx.OutTransitions[idleIdx]))
	}
	if len(idx.InTransitions[busyIdx]) != 1 {
		t.Fatalf("expected 1 incoming transition to busy, got %d", len(idx.InTransitions[busyIdx]))
	}
	if !idx.Urgent[busyIdx] {
		t.Fatalf("busy should be urgent")
	}
	if len(idx.Initial) != 1 || idx.LocationNames[idx.Initial[0]] != "idle" {
		t.Fatalf("expected idle as the sole initial location")
	}
	if idx.MaxConstant[idx.ClockIndex["x"]] != 5 {
		t.Fatalf("expected max constant for x to be 5 (from the busy invariant), got %d", idx.MaxConstant[idx.ClockIndex["x"]])
	}
	if len(idx.Invariant[busyIdx]) != 1 {
		t.Fatalf("expected 1 invariant constraint on busy")
	}
}

func TestBuildIndexUnknownLocation(t *testing.T) {
	a := twoLocationAutomaton()
	a.Transitions[0].Target = "missing"
	if _, err := BuildIndex(a); err == nil {
		t.Fatalf("expected error for transition referencing unknown target location")
	}
}

func TestBuildIndexUnknownClock(t *testing.T) {
	a := twoLocationAutomaton()
	a.Transitions[0].Resets = []string{"y"}
	if _, err := BuildIndex(a); err == nil {
		t.Fatalf("expected error for transition resetting unknown clock")
	}
}

func TestBuildIndexUnknownInvariantLocation(t *testing.T) {
	a := twoLocationAutomaton()
	a.Invariants["ghost"] = []ClockConstraint{{Clock: "x", Op: LessEq, K: 1}}
	if _, err := BuildIndex(a); err == nil {
		t.Fatalf("expected error for invariant referencing unknown location")
	}
}
