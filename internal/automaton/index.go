package automaton

import "fmt"

// Index is the derived, name-free view of an Automaton that the region
// kernel actually operates over: dense integer indices for clocks and
// locations, per-location transition lists, invariants keyed by location
// index, the urgent and initial location sets, and the maximum constant
// each clock is ever compared against (used to bound region enumeration,
// spec.md §4.1 "clocks beyond their max constant are indistinguishable").
//
// Grounded on internal/race/goroutine/context.go's shape: a small record
// that pairs raw identifiers with derived lookup state computed once at
// construction, not recomputed per query.
type Index struct {
	Name string

	ClockIndex    map[string]int
	ClockNames    []string
	LocationIndex map[string]int
	LocationNames []string

	// OutTransitions[i] lists every transition whose Source is location i.
	OutTransitions [][]Transition
	// InTransitions[i] lists every transition whose Target is location i.
	InTransitions [][]Transition

	// Invariant[i] is the conjunction of clock constraints attached to
	// location i.
	Invariant [][]ClockConstraint

	// MaxConstant[i] is the largest integer constant clock i is ever
	// compared against, across every guard and invariant in the automaton.
	MaxConstant []int

	Urgent  []bool
	Initial []int

	Variables map[string]int
}

// BuildIndex computes an Index from an Automaton. It returns an error if a
// transition or invariant references an unknown clock or location name —
// callers (cmd/tarzan's benchmark loader, region/rts construction) should
// treat that as a structural input error, not a panic.
func BuildIndex(a Automaton) (*Index, error) {
	idx := &Index{
		Name:          a.Name,
		ClockIndex:    make(map[string]int, len(a.Clocks)),
		ClockNames:    append([]string(nil), a.Clocks...),
		LocationIndex: make(map[string]int, len(a.Locations)),
		LocationNames: make([]string, len(a.Locations)),
		Variables:     copyVars(a.Variables),
	}

	for i, c := range a.Clocks {
		idx.ClockIndex[c] = i
	}
	for i, loc := range a.Locations {
		idx.LocationIndex[loc.Name] = i
		idx.LocationNames[i] = loc.Name
	}

	n := len(a.Locations)
	idx.OutTransitions = make([][]Transition, n)
	idx.InTransitions = make([][]Transition, n)
	idx.Invariant = make([][]ClockConstraint, n)
	idx.MaxConstant = make([]int, len(a.Clocks))
	idx.Urgent = make([]bool, n)
	idx.Initial = nil

	for i, loc := range a.Locations {
		idx.Urgent[i] = loc.Urgent
		if loc.Initial {
			idx.Initial = append(idx.Initial, i)
		}
	}

	for name, guard := range a.Invariants {
		li, ok := idx.LocationIndex[name]
		if !ok {
			return nil, fmt.Errorf("automaton %q: invariant references unknown location %q", a.Name, name)
		}
		idx.Invariant[li] = guard
		for _, c := range guard {
			if err := idx.touchConstraint(c); err != nil {
				return nil, err
			}
		}
	}

	for _, tr := range a.Transitions {
		si, ok := idx.LocationIndex[tr.Source]
		if !ok {
			return nil, fmt.Errorf("automaton %q: transition references unknown source location %q", a.Name, tr.Source)
		}
		ti, ok := idx.LocationIndex[tr.Target]
		if !ok {
			return nil, fmt.Errorf("automaton %q: transition references unknown target location %q", a.Name, tr.Target)
		}
		for _, c := range tr.Guard {
			if err := idx.touchConstraint(c); err != nil {
				return nil, err
			}
		}
		for _, r := range tr.Resets {
			if _, ok := idx.ClockIndex[r]; !ok {
				return nil, fmt.Errorf("automaton %q: transition resets unknown clock %q", a.Name, r)
			}
		}
		idx.OutTransitions[si] = append(idx.OutTransitions[si], tr)
		idx.InTransitions[ti] = append(idx.InTransitions[ti], tr)
	}

	return idx, nil
}

func (idx *Index) touchConstraint(c ClockConstraint) error {
	ci, ok := idx.ClockIndex[c.Clock]
	if !ok {
		return fmt.Errorf("automaton %q: constraint references unknown clock %q", idx.Name, c.Clock)
	}
	if c.K > idx.MaxConstant[ci] {
		idx.MaxConstant[ci] = c.K
	}
	return nil
}

func copyVars(v map[string]int) map[string]int {
	if v == nil {
		return map[string]int{}
	}
	out := make(map[string]int, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
