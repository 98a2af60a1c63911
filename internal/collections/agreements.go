package collections

import "justact/internal/wire"

// Agreements is the global set of agreements, writable only by the
// synchronizer (spec 4.4). Unlike Statements/Enactments it has no per-agent
// views: every agent reads the same set, and only the synchronizer mutates
// it (original_source/src/agreements.rs's GlobalAgreementsDictator).
type Agreements struct {
	byID map[wire.MessageID]*wire.Agreement
	// order preserves insertion order for deterministic iteration.
	order []wire.MessageID
}

// NewAgreements returns an empty Agreements set.
func NewAgreements() *Agreements {
	return &Agreements{byID: make(map[wire.MessageID]*wire.Agreement)}
}

// Add records agr, returning the previous agreement at the same id, if
// any. Per the decision recorded for this implementation (source leaves it
// open), duplicate ids are allowed and always overwrite; the caller sees
// the replaced value via the returned pointer.
func (a *Agreements) Add(agr *wire.Agreement) (previous *wire.Agreement, hadPrevious bool) {
	id := agr.ID()
	previous, hadPrevious = a.byID[id]
	if !hadPrevious {
		a.order = append(a.order, id)
	}
	a.byID[id] = agr
	return previous, hadPrevious
}

// Get looks up the agreement with the given id.
func (a *Agreements) Get(id wire.MessageID) (*wire.Agreement, bool) {
	agr, ok := a.byID[id]
	return agr, ok
}

// ContainsKey reports whether an agreement exists for id.
func (a *Agreements) ContainsKey(id wire.MessageID) bool {
	_, ok := a.byID[id]
	return ok
}

// Iter returns every agreement in insertion order.
func (a *Agreements) Iter() []*wire.Agreement {
	out := make([]*wire.Agreement, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.byID[id])
	}
	return out
}
