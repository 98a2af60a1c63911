// Package runtime implements the cooperative, single-threaded, round-robin
// scheduler described in spec 4.7, grounded in
// original_source/src/runtime.rs's System::run.
package runtime

import (
	"justact/internal/collections"
	"justact/internal/dataplane"
	"justact/internal/trace"
	"justact/internal/wire"
)

// TimesReader is the read-only view of Times an ordinary agent gets.
type TimesReader interface {
	Current() []wire.Timestamp
	Contains(wire.Timestamp) bool
}

// AgreementsReader is the read-only view of Agreements an ordinary agent
// gets.
type AgreementsReader interface {
	Get(id wire.MessageID) (*wire.Agreement, bool)
	ContainsKey(id wire.MessageID) bool
	Iter() []*wire.Agreement
}

// PollResult is what an agent or the synchronizer returns from one poll
// (spec 4.7's suspension points).
type PollResult int

const (
	// Pending means reschedule this agent for the next round.
	Pending PollResult = iota
	// Ready means retire; this agent is never polled again.
	Ready
)

// AgentView is what a registered agent sees on each poll: read access to
// Times and Agreements, read+write access to its own Statements and
// Enactments slices, and a data plane handle scoped to its own id.
type AgentView struct {
	ID         string
	Times      TimesReader
	Agreements AgreementsReader
	Statements trace.StatementsView
	Enactments trace.EnactmentsView
	Data       *dataplane.Scoped
}

// SynchronizerView extends AgentView with write access to Times and
// Agreements, the two collections only the synchronizer may mutate (spec
// 4.4, 4.7, 9's "synchronizer as privileged agent").
type SynchronizerView struct {
	AgentView
	WriteTimes      trace.Times
	WriteAgreements trace.Agreements
}

// Agent is polled once per round until it returns Ready.
type Agent interface {
	ID() string
	Poll(view AgentView) (PollResult, error)
}

// Synchronizer is polled last in every round, with elevated write access.
type Synchronizer interface {
	ID() string
	Poll(view SynchronizerView) (PollResult, error)
}

// Collections bundles the four coordinating collections a System owns.
type Collections struct {
	Times       trace.Times
	Agreements  trace.Agreements
	Statements  *collections.Statements
	Enactments  *collections.Enactments
	Data        *dataplane.Store
}

// NewCollections constructs a fresh, empty set of collections wired to
// emit trace events (spec 4.5); the data plane reports Read/Write to
// trace.DataSink{}.
func NewCollections() *Collections {
	return &Collections{
		Times:      trace.NewTimes(),
		Agreements: trace.NewAgreements(),
		Statements: collections.NewStatements(),
		Enactments: collections.NewEnactments(),
		Data:       dataplane.New(trace.DataSink{}),
	}
}
