// flatten.go builds a single flattened automaton out of several smaller
// "process" automata composed by shared integer variables, not by explicit
// synchronization. This is how the benchmark catalog reproduces spec.md
// §8's "flat" scenarios (Fischer flat 3-process, Train-AHV93 flat 2-train):
// the original implementation's flat variants are a single-automaton
// product view of a network, chosen specifically so that backward
// reachability — which internal/rts supports and internal/network does not
// (see DESIGN.md) — has something to run against.
//
// Clocks are namespaced per process ("p1_x") to keep them disjoint in the
// product. Locations are joined tuples; a transition on process i holds
// every other process's location fixed and only moves i's slot. Only
// SyncNone actions are supported here (flattening synchronized pairs is
// internal/network's job, not this driver's), which is exactly what
// Fischer/Train-AHV93's shared-variable style needs: per spec.md §9,
// integer variables here are write-only effects, never guard conditions,
// so mutual exclusion in these catalog entries comes from the clock
// structure alone, not from a variable-guarded critical section. That is a
// known simplification relative to the textbook protocols; see DESIGN.md.
package main

import (
	"fmt"
	"strings"

	"github.com/kolkov/tarzan/internal/automaton"
)

// flattenProduct composes procs into one automaton.Automaton whose clock
// and location space is the cartesian product of the inputs.
func flattenProduct(name string, procs []automaton.Automaton, sharedVars map[string]int) automaton.Automaton {
	n := len(procs)
	clockRename := make([]map[string]string, n)
	var allClocks []string
	for i, p := range procs {
		clockRename[i] = make(map[string]string, len(p.Clocks))
		for _, c := range p.Clocks {
			renamed := fmt.Sprintf("%s_%s", p.Name, c)
			clockRename[i][c] = renamed
			allClocks = append(allClocks, renamed)
		}
	}

	locLists := make([][]int, n)
	for i, p := range procs {
		locLists[i] = make([]int, len(p.Locations))
		for j := range p.Locations {
			locLists[i][j] = j
		}
	}

	var locations []automaton.Location
	invariants := make(map[string][]automaton.ClockConstraint)
	for _, combo := range cartesianInts(locLists) {
		locName := comboName(procs, combo)
		initial, urgent := true, false
		var inv []automaton.ClockConstraint
		for i, li := range combo {
			loc := procs[i].Locations[li]
			if !loc.Initial {
				initial = false
			}
			if loc.Urgent {
				urgent = true
			}
			for _, c := range procs[i].Invariants[loc.Name] {
				inv = append(inv, renameConstraint(c, clockRename[i]))
			}
		}
		locations = append(locations, automaton.Location{Name: locName, Initial: initial, Urgent: urgent})
		if len(inv) > 0 {
			invariants[locName] = inv
		}
	}

	var transitions []automaton.Transition
	for i, p := range procs {
		for _, tr := range p.Transitions {
			srcIdx, tgtIdx := -1, -1
			for j, loc := range p.Locations {
				if loc.Name == tr.Source {
					srcIdx = j
				}
				if loc.Name == tr.Target {
					tgtIdx = j
				}
			}
			others := make([][]int, n)
			for k := range others {
				if k == i {
					others[k] = []int{0}
				} else {
					others[k] = locLists[k]
				}
			}
			for _, combo := range cartesianInts(others) {
				srcCombo := append([]int(nil), combo...)
				srcCombo[i] = srcIdx
				tgtCombo := append([]int(nil), combo...)
				tgtCombo[i] = tgtIdx
				transitions = append(transitions, automaton.Transition{
					Source:      comboName(procs, srcCombo),
					Action:      tr.Action,
					Guard:       renameConstraints(tr.Guard, clockRename[i]),
					Resets:      renameResets(tr.Resets, clockRename[i]),
					Assignments: tr.Assignments,
					Target:      comboName(procs, tgtCombo),
				})
			}
		}
	}

	return automaton.Automaton{
		Name:        name,
		Clocks:      allClocks,
		Locations:   locations,
		Transitions: transitions,
		Invariants:  invariants,
		Variables:   sharedVars,
	}
}

// comboName names the product location whose i'th process sits at
// combo[i], e.g. "p1:req,p2:cs,p3:cs".
func comboName(procs []automaton.Automaton, combo []int) string {
	parts := make([]string, len(combo))
	for i, li := range combo {
		parts[i] = fmt.Sprintf("%s:%s", procs[i].Name, procs[i].Locations[li].Name)
	}
	return strings.Join(parts, ",")
}

func renameConstraint(c automaton.ClockConstraint, rename map[string]string) automaton.ClockConstraint {
	c.Clock = rename[c.Clock]
	return c
}

func renameConstraints(cs []automaton.ClockConstraint, rename map[string]string) []automaton.ClockConstraint {
	if len(cs) == 0 {
		return nil
	}
	out := make([]automaton.ClockConstraint, len(cs))
	for i, c := range cs {
		out[i] = renameConstraint(c, rename)
	}
	return out
}

func renameResets(rs []string, rename map[string]string) []string {
	if len(rs) == 0 {
		return nil
	}
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = rename[r]
	}
	return out
}

// cartesianInts is the n-ary cartesian product of candidate index lists,
// grounded on the same mixed-radix counter shape as
// internal/network's cartesianLocations (spec.md §4.5 "vector cartesian
// product"), kept as a package-local copy here since this is benchmark
// tooling, not core kernel code.
func cartesianInts(lists [][]int) [][]int {
	result := [][]int{{}}
	for _, opts := range lists {
		next := make([][]int, 0, len(result)*len(opts))
		for _, combo := range result {
			for _, o := range opts {
				nc := make([]int, len(combo)+1)
				copy(nc, combo)
				nc[len(combo)] = o
				next = append(next, nc)
			}
		}
		result = next
	}
	return result
}
