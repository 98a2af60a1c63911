// Package collections implements the four coordinating collections shared
// by every agent and the synchronizer: Times, Agreements, Statements, and
// Enactments.
package collections

import "justact/internal/wire"

// Times is the global view on timestamps (spec 4.4): a monotone set of
// every timestamp ever added, plus a "current" subset the synchronizer
// advances. Per the decision recorded for this implementation (source left
// it open), AddCurrent always replaces current with a new singleton — the
// same overwrite behavior as the Rust dictator variant — while Add alone
// never touches current, so a scenario can advance current past an old
// time and later re-add that old time to current (spec 8.5's S4).
type Times struct {
	all     map[wire.Timestamp]struct{}
	current wire.Timestamp
	hasCur  bool
}

// NewTimes returns an empty Times set.
func NewTimes() *Times {
	return &Times{all: make(map[wire.Timestamp]struct{})}
}

// Add records t in the full set, returning whether it was already present.
func (t *Times) Add(ts wire.Timestamp) bool {
	_, present := t.all[ts]
	t.all[ts] = struct{}{}
	return present
}

// AddCurrent adds ts to the full set and replaces the current subset with
// the singleton {ts}.
func (t *Times) AddCurrent(ts wire.Timestamp) {
	t.Add(ts)
	t.current = ts
	t.hasCur = true
}

// Current returns the current subset: zero or one timestamp.
func (t *Times) Current() []wire.Timestamp {
	if !t.hasCur {
		return nil
	}
	return []wire.Timestamp{t.current}
}

// Contains reports whether ts was ever added.
func (t *Times) Contains(ts wire.Timestamp) bool {
	_, ok := t.all[ts]
	return ok
}
