package runtime

import (
	"fmt"

	"justact/internal/trace"
)

// AgentError wraps a failing agent's error with its id (spec 4.7
// Cancellation).
type AgentError struct {
	ID  string
	Err error
}

func (e *AgentError) Error() string { return fmt.Sprintf("agent %q failed: %v", e.ID, e.Err) }
func (e *AgentError) Unwrap() error { return e.Err }

// SynchronizerError wraps a failing synchronizer's error with its id.
type SynchronizerError struct {
	ID  string
	Err error
}

func (e *SynchronizerError) Error() string { return fmt.Sprintf("synchronizer %q failed: %v", e.ID, e.Err) }
func (e *SynchronizerError) Unwrap() error { return e.Err }

// System owns the four coordinating collections and the data plane, and
// runs the cooperative round-robin scheduler over a set of agents plus one
// synchronizer (spec 4.7).
type System struct {
	*Collections
}

// NewSystem constructs a System with fresh, empty collections.
func NewSystem() *System {
	return &System{Collections: NewCollections()}
}

// Run registers every agent and the synchronizer, then polls them in
// registration order once per round (synchronizer last), terminating in
// the first round where the synchronizer has returned Ready and the agent
// list is empty (spec 4.7). An agent or synchronizer error aborts the run,
// wrapped with the offending id; partial effects already recorded in the
// trace remain.
func (s *System) Run(agents []Agent, sync Synchronizer) error {
	s.Statements.Register(sync.ID())
	s.Enactments.Register(sync.ID())
	for _, a := range agents {
		s.Statements.Register(a.ID())
		s.Enactments.Register(a.ID())
	}

	active := make([]Agent, len(agents))
	copy(active, agents)
	syncDone := false

	for !syncDone || len(active) > 0 {
		next := active[:0:0]
		for _, a := range active {
			view := s.agentView(a.ID())
			res, err := a.Poll(view)
			if err != nil {
				return &AgentError{ID: a.ID(), Err: err}
			}
			if res == Pending {
				next = append(next, a)
			}
		}
		active = next

		if !syncDone {
			view := s.synchronizerView(sync.ID())
			res, err := sync.Poll(view)
			if err != nil {
				return &SynchronizerError{ID: sync.ID(), Err: err}
			}
			if res == Ready {
				syncDone = true
			}
		}
	}
	return nil
}

func (s *System) agentView(id string) AgentView {
	return AgentView{
		ID:         id,
		Times:      s.Times.Times,
		Agreements: s.Agreements.Agreements,
		Statements: trace.NewStatementsView(id, s.Statements.View(id)),
		Enactments: trace.NewEnactmentsView(id, s.Enactments.View(id)),
		Data:       s.Data.Scope(id),
	}
}

func (s *System) synchronizerView(id string) SynchronizerView {
	return SynchronizerView{
		AgentView:       s.agentView(id),
		WriteTimes:      s.Times,
		WriteAgreements: s.Agreements,
	}
}
