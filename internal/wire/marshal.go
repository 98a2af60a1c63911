package wire

import "encoding/json"

// MarshalJSON renders a MessageID as [author, seq] (spec 6.1).
func (id MessageID) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{id.Author, id.Seq})
}

// MarshalJSON renders an ActionID as [actor, tag] (spec 6.1).
func (id ActionID) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{id.Actor, string(id.Tag)})
}

type messageJSON struct {
	ID      MessageID `json:"id"`
	Author  string    `json:"author"`
	Payload string    `json:"payload"`
}

// MarshalJSON renders a Message's wire form.
func (m *Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageJSON{ID: m.id, Author: m.author, Payload: m.payload})
}

type actionJSON struct {
	ID            ActionID   `json:"id"`
	ActorID       string     `json:"actor_id"`
	Basis         *Agreement `json:"basis,omitempty"`
	Justification []*Message `json:"justification"`
}

// MarshalJSON renders an Action's wire form.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(actionJSON{ID: a.id, ActorID: a.ActorID, Basis: a.Basis, Justification: a.Justification})
}

type agreementJSON struct {
	Message *Message  `json:"message"`
	At      Timestamp `json:"at"`
}

// MarshalJSON renders an Agreement as {message, at} (spec 4.3).
func (a *Agreement) MarshalJSON() ([]byte, error) {
	return json.Marshal(agreementJSON{Message: a.Message, At: a.At})
}
