package collections

import "justact/internal/wire"

// MessageElem adapts *wire.Message to Keyed so it can live in a
// SetAsync[wire.MessageID, MessageElem].
type MessageElem struct{ *wire.Message }

// Key returns the message's id.
func (m MessageElem) Key() wire.MessageID { return m.ID() }

// AgentID returns the message's author, the agent entitled to state it
// without already holding it.
func (m MessageElem) AgentID() string { return m.AuthorID() }

// Statements is the per-agent inbox of stated messages (spec 4.4).
type Statements = SetAsync[wire.MessageID, MessageElem]

// NewStatements returns an empty Statements collection with gossip
// discipline enforced.
func NewStatements() *Statements { return NewSetAsync[wire.MessageID, MessageElem](true) }

// StatementsView is one agent's scoped view on Statements.
type StatementsView = SetAsyncView[wire.MessageID, MessageElem]
