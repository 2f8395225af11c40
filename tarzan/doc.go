// Package tarzan is the public entry point for the region-based reachability
// engine described in spec.md: given one or a network of timed automata, it
// loads their derived index tables and drives forward or backward
// reachability over the refined region transition system.
//
// # Quick start
//
//	idx, err := automaton.BuildIndex(myAutomaton)
//	if err != nil {
//		// a structural error: unknown clock/location name, etc.
//	}
//	result := tarzan.Forward(idx, tarzan.GoalAtLocation(targetLoc), tarzan.BFS)
//	if result.Reachable {
//		fmt.Printf("reached in %d regions\n", result.RegionsExplored)
//	}
//
// # What this package does not do
//
// Parsing automaton descriptions from text is an explicit out-of-scope
// collaborator (spec.md §1) — callers build automaton.Automaton values
// themselves, or use cmd/tarzan's benchmark catalog, which does exactly
// that for a fixed set of named systems.
//
// # Links
//
// Region transition system kernel: [github.com/kolkov/tarzan/internal/rts].
// Network composition: [github.com/kolkov/tarzan/internal/network].
package tarzan
