// Package wire defines the immutable, reference-counted wire types that
// flow between agents: Message, Action, and Agreement (spec 4.3).
package wire

import "fmt"

// MessageID identifies a Message by its author and a per-author sequence
// number (spec 3: "id = (author_id, seq)"; two messages with equal id must
// have equal payload, authorship is asserted by the caller per spec 1's
// Non-goals).
type MessageID struct {
	Author string
	Seq    uint32
}

func (id MessageID) String() string { return fmt.Sprintf("(%s, %d)", id.Author, id.Seq) }

// Message is an immutable, authored policy fragment. Once constructed all
// fields are frozen; holders share it by pointer (shared ownership,
// lifetime = longest holder per spec 3's Ownership section), so Message is
// always passed around as *Message.
type Message struct {
	id      MessageID
	author  string
	payload string
}

// NewMessage constructs a Message. author must equal id.Author; this is a
// caller invariant (spec 3), not re-validated here.
func NewMessage(id MessageID, author, payload string) *Message {
	return &Message{id: id, author: author, payload: payload}
}

// ID returns the message's identifier.
func (m *Message) ID() MessageID { return m.id }

// AuthorID satisfies policy.Message.
func (m *Message) AuthorID() string { return m.author }

// Payload satisfies policy.Message: the raw policy source text.
func (m *Message) Payload() string { return m.payload }
