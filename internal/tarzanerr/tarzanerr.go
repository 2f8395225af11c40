// Package tarzanerr collects TARZAN's error taxonomy (spec.md §7).
//
// Grounded on cmd/racedetector/run.go's fmt.Errorf("...: %w", err) +
// errors.As idiom: plain typed errors wrapped at each boundary, inspected
// with errors.As by callers that need to branch on error kind. cmd/tarzan's
// exit codes do not consult these types.
package tarzanerr

import "fmt"

// ParseError reports a rejected textual input, with source location.
// Fatal to the current invocation (spec.md §7).
type ParseError struct {
	Line, Col int
	Msg       string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Col, e.Msg)
}

// UnsupportedFormulaNesting reports a CLTL formula nested deeper than the
// supported depth ≤ 1 (spec.md §4.6, §9 "Exception-based control flow").
type UnsupportedFormulaNesting struct {
	Depth int
}

func (e *UnsupportedFormulaNesting) Error() string {
	return fmt.Sprintf("formula nesting depth %d exceeds the supported maximum of 1", e.Depth)
}

// InvalidRegion reports a constructed region that violates the partition
// invariant (spec.md §3 "Invariants"). This is a programming bug, not a
// recoverable condition — callers should treat it as a fatal assertion.
type InvalidRegion struct {
	Reason string
}

func (e *InvalidRegion) Error() string {
	return fmt.Sprintf("invalid region: %s", e.Reason)
}

// GoalUnreachable is deliberately absent from this package: spec.md §7 is
// explicit that an exhausted reachability frontier is "not an error; it is
// a first-class negative result, reported with counts and timing" — that
// is rts.Result with Reachable == false, never something satisfying the
// error interface.
