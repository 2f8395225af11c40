// Package formula implements the CLTL-style temporal-formula sum type and
// its depth-limited visitor (spec.md §3 "External collaborators", §4.6,
// §6 "Temporal-formula format", §9 "Variant formulae (pure / unary /
// binary)").
//
// The grammar that turns formula text into this tree is out of scope
// (spec.md §1) — this package only carries the tree and the one operation
// the core needs from it: turning its pure subformulas into the starting
// region sets for backward verification.
package formula

import (
	"github.com/kolkov/tarzan/internal/automaton"
	"github.com/kolkov/tarzan/internal/region"
	"github.com/kolkov/tarzan/internal/tarzanerr"
)

// Kind tags a Formula's shape.
type Kind int

const (
	Pure Kind = iota
	Unary
	Binary
)

// UnaryOp names a unary temporal operator.
type UnaryOp int

const (
	Box UnaryOp = iota
	Diamond
)

// BinaryOp names a binary temporal operator.
type BinaryOp int

const (
	Until BinaryOp = iota
)

// Prop is an atomic (pure) proposition: a location match plus conjoined
// clock constraints, exactly the shape rts.Goal uses to test a region.
type Prop struct {
	Location    *int
	Constraints []automaton.ClockConstraint
}

// Matches reports whether r satisfies the proposition.
func (p Prop) Matches(idx *automaton.Index, r region.Region) bool {
	if p.Location != nil && r.Q != *p.Location {
		return false
	}
	for _, c := range p.Constraints {
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

// Formula is a tagged sum with owned children, per spec.md §9: a visitor
// descends recursively, passing current depth by value.
type Formula struct {
	Kind Kind

	Pure Prop // valid when Kind == Pure

	UnaryOp UnaryOp  // valid when Kind == Unary
	Child   *Formula // valid when Kind == Unary

	BinaryOp BinaryOp // valid when Kind == Binary
	Left     *Formula // valid when Kind == Binary
	Right    *Formula // valid when Kind == Binary
}

// NewPure builds a pure (atomic) formula.
func NewPure(p Prop) *Formula { return &Formula{Kind: Pure, Pure: p} }

// NewUnary builds a unary formula (BOX/DIAMOND) over child.
func NewUnary(op UnaryOp, child *Formula) *Formula {
	return &Formula{Kind: Unary, UnaryOp: op, Child: child}
}

// NewBinary builds a binary formula (UNTIL) over left and right.
func NewBinary(op BinaryOp, left, right *Formula) *Formula {
	return &Formula{Kind: Binary, BinaryOp: op, Left: left, Right: right}
}

// Depth computes the formula's nesting depth: 0 for a pure leaf, 1 plus the
// deepest child otherwise.
func Depth(f *Formula) int {
	switch f.Kind {
	case Pure:
		return 0
	case Unary:
		return 1 + Depth(f.Child)
	case Binary:
		ld, rd := Depth(f.Left), Depth(f.Right)
		if ld > rd {
			return 1 + ld
		}
		return 1 + rd
	default:
		return 0
	}
}

// ExtractRegionSets walks f, collecting one region set per pure subformula
// (the regions in universe matching that subformula), as the starting set
// for backward verification (spec.md §3).
//
// Per spec.md §9 "Exception-based control flow for formula nesting depth",
// a formula nested deeper than 1 is rejected at this boundary with
// *tarzanerr.UnsupportedFormulaNesting — propagated upward without any
// catch-all, never panicked.
func ExtractRegionSets(f *Formula, idx *automaton.Index, universe []region.Region) ([][]region.Region, error) {
	if d := Depth(f); d > 1 {
		return nil, &tarzanerr.UnsupportedFormulaNesting{Depth: d}
	}

	var sets [][]region.Region
	var visit func(*Formula)
	visit = func(ff *Formula) {
		switch ff.Kind {
		case Pure:
			sets = append(sets, matchingRegions(idx, universe, ff.Pure))
		case Unary:
			visit(ff.Child)
		case Binary:
			visit(ff.Left)
			visit(ff.Right)
		}
	}
	visit(f)
	return sets, nil
}

func matchingRegions(idx *automaton.Index, universe []region.Region, p Prop) []region.Region {
	var out []region.Region
	for _, r := range universe {
		if p.Matches(idx, r) {
			out = append(out, r)
		}
	}
	return out
}
