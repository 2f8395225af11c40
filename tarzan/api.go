package tarzan

import (
	"github.com/kolkov/tarzan/internal/automaton"
	"github.com/kolkov/tarzan/internal/bitset"
	"github.com/kolkov/tarzan/internal/formula"
	"github.com/kolkov/tarzan/internal/network"
	"github.com/kolkov/tarzan/internal/region"
	"github.com/kolkov/tarzan/internal/rts"
)

// Strategy selects the exploration order a reachability run uses.
type Strategy = rts.Strategy

const (
	BFS = rts.BFS
	DFS = rts.DFS
)

// Goal is a single automaton's reachability target; see rts.Goal.
type Goal = rts.Goal

// GoalAtLocation builds a Goal matching any region at location q.
func GoalAtLocation(q int) Goal { return rts.AtLocation(q) }

// GoalExploreAll builds a Goal that forces full exploration of the
// reachable state space instead of stopping at a witness.
func GoalExploreAll() Goal { return rts.ExploreAllGoal() }

// Result reports a single-automaton reachability run's outcome.
type Result = rts.Result

// BuildIndex computes the derived index tables a reachability run needs
// from a parsed automaton.
func BuildIndex(a automaton.Automaton) (*automaton.Index, error) {
	return automaton.BuildIndex(a)
}

// Forward drives forward reachability over idx's region transition system.
func Forward(idx *automaton.Index, goal Goal, strategy Strategy) Result {
	return rts.New(idx).ForwardReachability(goal, strategy)
}

// Backward drives backward reachability from the given starting regions,
// using idx's derived transition/invariant tables to compute predecessors.
// Starting regions are typically the pure-subformula region sets a
// [ExtractGoalRegions] call returns, or a witness region from a prior
// Forward run over the same index.
func Backward(idx *automaton.Index, startingRegions []region.Region, strategy Strategy) Result {
	return rts.New(idx).BackwardReachability(startingRegions, strategy)
}

// Formula is the CLTL-style formula tree; see package formula.
type Formula = formula.Formula

// NewPureFormula, NewUnaryFormula, and NewBinaryFormula build a Formula
// node. See package formula for the full Prop/UnaryOp/BinaryOp vocabulary.
func NewPureFormula(p formula.Prop) *Formula { return formula.NewPure(p) }
func NewUnaryFormula(op formula.UnaryOp, child *Formula) *Formula {
	return formula.NewUnary(op, child)
}
func NewBinaryFormula(op formula.BinaryOp, left, right *Formula) *Formula {
	return formula.NewBinary(op, left, right)
}

// ExtractGoalRegions turns f's pure subformulas into the starting region
// sets backward verification begins from.
func ExtractGoalRegions(f *Formula, idx *automaton.Index, universe []region.Region) ([][]region.Region, error) {
	return formula.ExtractRegionSets(f, idx, universe)
}

// Component pairs an automaton's derived Index for network composition; see
// package network.
type Component = network.Component

// NetworkGoal is a per-component reachability target; see network.Goal.
type NetworkGoal = network.Goal

// ComponentGoal is one component's contribution to a NetworkGoal.
type ComponentGoal = network.ComponentGoal

// NetworkResult reports a network reachability run's outcome.
type NetworkResult = network.Result

// SymmetryGroups declares interchangeable component indices for
// canonicalization; see network.SymmetryGroups.
type SymmetryGroups = network.SymmetryGroups

// NewSymmetryGroups validates a set of pairwise-disjoint component-index
// groups.
func NewSymmetryGroups(groups []bitset.Set, numComponents int) (SymmetryGroups, error) {
	return network.NewSymmetryGroups(groups, numComponents)
}

// NewNetwork builds an RTSNetwork driver from already-indexed components,
// optionally with symmetry reduction.
func NewNetwork(components []Component, symmetry SymmetryGroups) *network.RTSNetwork {
	return network.New(components, symmetry)
}

// NetworkForward drives forward reachability over a composed network.
// Backward reachability has no network-level analogue: spec.md §8's worked
// backward scenarios, and the original implementation this was ported from,
// both only ever run backward reachability against a single automaton (see
// DESIGN.md).
func NetworkForward(rn *network.RTSNetwork, goal NetworkGoal, strategy Strategy) NetworkResult {
	return rn.ForwardReachability(goal, network.Strategy(strategy))
}
