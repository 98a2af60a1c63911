package collections

import "justact/internal/wire"

// ActionElem adapts wire.Action to Keyed so it can live in a
// SetAsync[wire.ActionID, ActionElem].
type ActionElem struct{ wire.Action }

// Key returns the action's id.
func (a ActionElem) Key() wire.ActionID { return a.ID() }

// AgentID returns the action's actor.
func (a ActionElem) AgentID() string { return a.ActorID }

// Enactments is the per-agent inbox of enacted actions (spec 4.4). Unlike
// Statements it carries no gossip restriction: "the actor_id field is set
// by the caller; the audit determines validity later."
type Enactments = SetAsync[wire.ActionID, ActionElem]

// NewEnactments returns an empty Enactments collection with no add
// restriction.
func NewEnactments() *Enactments { return NewSetAsync[wire.ActionID, ActionElem](false) }

// EnactmentsView is one agent's scoped view on Enactments.
type EnactmentsView = SetAsyncView[wire.ActionID, ActionElem]
