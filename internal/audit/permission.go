// Package audit implements the audit procedure of spec 4.8: a linear
// replay of the trace that computes a Permission for every enacted action,
// grounded in original_source/src/auditing.rs's Audit.
package audit

import "justact/internal/policy"

// Permission is the four-component verdict computed for one enactment
// (spec 4.8), plus the denotation's truths and effects for display.
type Permission struct {
	// Stated: every message in the justification was stated before the
	// enactment.
	Stated bool
	// Based: the basis message is explicitly present in the justification.
	Based bool
	// Valid: the justification's denotation (with the actor injected and the
	// audit's effect pattern) contains no error.
	Valid bool
	// Current: the basis agreement's time equals the audit's current time
	// at the moment of enactment.
	Current bool

	// Truths, sorted per spec 4.8: the bare error constant first, then
	// error-tagged tuples alphabetically, then the remainder alphabetically.
	Truths []policy.GroundAtom
	// Effects, sorted alphabetically by string form.
	Effects []policy.Effect
}

// IsPermitted is the conjunction of the four components (spec 8's testable
// property 3).
func (p Permission) IsPermitted() bool {
	return p.Stated && p.Based && p.Valid && p.Current
}
