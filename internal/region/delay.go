package region

import "github.com/kolkov/tarzan/internal/bitset"

// DelaySuccessor computes the unique immediate delay successor: "let time
// elapse infinitesimally" (spec.md §4.1). Callers must not invoke this for
// a region whose location is urgent — per spec.md §4.6 that case suppresses
// the delay successor entirely and is the RTS driver's responsibility, not
// this operator's.
//
// maxConstant[c] is the largest integer constant clock c is ever compared
// against (automaton.Index.MaxConstant); it decides when an incrementing
// clock crosses into Unbounded.
func DelaySuccessor(r Region, maxConstant []int) Region {
	n := r.NumClocks()

	// Case A: x0 non-empty — those clocks take on the smallest positive
	// fraction, becoming the new front of Bounded.
	if r.X0.Any() {
		c := r.Clone()
		c.Bounded = append([]bitset.Set{r.X0.Clone()}, c.Bounded...)
		c.X0 = bitset.New(n)
		return c
	}

	// Case B: x0 empty, Bounded non-empty — the back (largest-fraction)
	// group reaches fractional 1. Each clock either re-enters x0 (integer
	// part now within range) or becomes newly unbounded.
	if len(r.Bounded) > 0 {
		c := r.Clone()
		back := c.Bounded[len(c.Bounded)-1]
		c.Bounded = c.Bounded[:len(c.Bounded)-1]

		newX0 := bitset.New(n)
		newUnbounded := bitset.New(n)
		for _, ci := range back.Slice() {
			c.H[ci]++
			if c.H[ci] > maxConstant[ci] {
				c.H[ci] = maxConstant[ci] + 1 // sentinel: above max
				newUnbounded.Set(ci)
			} else {
				newX0.Set(ci)
			}
		}
		c.X0 = newX0
		if newUnbounded.Any() {
			c.Unbounded = append([]bitset.Set{newUnbounded}, c.Unbounded...)
		}
		return c
	}

	// Case C: both empty — fixed point of delay.
	return r.Clone()
}

// DelayPredecessors computes every region r could be an immediate delay
// successor of. The relation is multi-valued; spec.md §4.1 describes two
// independent reversals that may each apply, plus their combination when
// both groups originated in the same forward delay step:
//
//   - undoing Case A: the front of Bounded was x0 one step ago (only
//     possible when the current x0 is empty, since Case A always clears it);
//   - undoing Case B: clocks now in x0, and/or the front group of
//     Unbounded, were the back-of-Bounded group one step ago. When both are
//     present they may have co-originated in the same step (one merged back
//     group) or originated in separate steps (two independent candidates) —
//     spec.md §4.1 asks to "enumerate the admissible splits"; we enumerate
//     exactly these three shapes (x0-only, unbounded-front-only, merged) and
//     reject any whose integer part cannot be decremented.
func DelayPredecessors(r Region, maxConstant []int) []Region {
	n := r.NumClocks()
	var out []Region

	if r.X0.None() && len(r.Bounded) > 0 {
		c := r.Clone()
		c.X0 = c.Bounded[0].Clone()
		c.Bounded = cloneGroups(r.Bounded[1:])
		out = append(out, c)
	}

	hasX0 := r.X0.Any()
	hasUnboundedFront := len(r.Unbounded) > 0

	if hasX0 {
		if c, ok := reflectGroup(r, r.X0, bitset.New(n), maxConstant, n); ok {
			out = append(out, c)
		}
	}
	if hasUnboundedFront && !hasX0 {
		if c, ok := reflectGroup(r, bitset.New(n), r.Unbounded[0], maxConstant, n); ok {
			out = append(out, c)
		}
	}
	if hasX0 && hasUnboundedFront {
		if c, ok := reflectGroup(r, r.X0, r.Unbounded[0], maxConstant, n); ok {
			out = append(out, c)
		}
	}

	return out
}

// reflectGroup undoes a Case B step for the clocks in fromX0 (previously
// re-entered x0, so decrement their integer part) and fromUnbounded
// (previously just became unbounded, so restore their integer part to
// exactly maxConstant), merging both into one new back-of-Bounded group.
func reflectGroup(r Region, fromX0, fromUnbounded bitset.Set, maxConstant []int, n int) (Region, bool) {
	c := r.Clone()

	for _, ci := range fromX0.Slice() {
		if c.H[ci] == 0 {
			return Region{}, false
		}
		c.H[ci]--
	}
	for _, ci := range fromUnbounded.Slice() {
		c.H[ci] = maxConstant[ci]
	}

	merged := fromX0.Clone()
	if fromUnbounded.Any() {
		merged = merged.Or(fromUnbounded)
		c.Unbounded = cloneGroups(r.Unbounded[1:])
	}

	if fromX0.Any() {
		c.X0 = bitset.New(n)
	}
	c.Bounded = append(c.Bounded, merged)
	return c, true
}
