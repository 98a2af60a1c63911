// Package trace defines the event stream emitted by every mutation of the
// four coordinating collections and the data plane (spec 4.5, 6.1), plus
// the tracing wrapper that intercepts those mutations and the process-wide
// handler registration they're dispatched to.
package trace

import (
	"encoding/json"

	"justact/internal/dataplane"
	"justact/internal/wire"
)

// Kind tags an Event's variant for JSON serialization (spec 6.1).
type Kind string

const (
	KindAddAgreement Kind = "AddAgreement"
	KindAdvanceTime  Kind = "AdvanceTime"
	KindEnactAction  Kind = "EnactAction"
	KindStateMessage Kind = "StateMessage"
	KindRead         Kind = "Read"
	KindWrite        Kind = "Write"
)

// Event is any of the six trace record variants.
type Event interface {
	EventKind() Kind
}

// AddAgreementEvent records Agreements.Add.
type AddAgreementEvent struct {
	Agree *wire.Agreement
}

func (AddAgreementEvent) EventKind() Kind { return KindAddAgreement }
func (e AddAgreementEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  Kind            `json:"kind"`
		Agree *wire.Agreement `json:"agree"`
	}{KindAddAgreement, e.Agree})
}

// AdvanceTimeEvent records Times.AddCurrent.
type AdvanceTimeEvent struct {
	Timestamp wire.Timestamp
}

func (AdvanceTimeEvent) EventKind() Kind { return KindAdvanceTime }
func (e AdvanceTimeEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind      Kind          `json:"kind"`
		Timestamp wire.Timestamp `json:"timestamp"`
	}{KindAdvanceTime, e.Timestamp})
}

// EnactActionEvent records an EnactmentsView.Add.
type EnactActionEvent struct {
	Who    string
	To     wire.Recipient
	Action wire.Action
}

func (EnactActionEvent) EventKind() Kind { return KindEnactAction }
func (e EnactActionEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   Kind          `json:"kind"`
		Who    string        `json:"who"`
		To     wire.Recipient `json:"to"`
		Action wire.Action   `json:"action"`
	}{KindEnactAction, e.Who, e.To, e.Action})
}

// StateMessageEvent records a StatementsView.Add.
type StateMessageEvent struct {
	Who string
	To  wire.Recipient
	Msg *wire.Message
}

func (StateMessageEvent) EventKind() Kind { return KindStateMessage }
func (e StateMessageEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind Kind          `json:"kind"`
		Who  string        `json:"who"`
		To   wire.Recipient `json:"to"`
		Msg  *wire.Message `json:"msg"`
	}{KindStateMessage, e.Who, e.To, e.Msg})
}

// ReadEvent records a data plane read, including attempts to read
// nonexistent variables (Contents is nil in that case).
type ReadEvent struct {
	Who      string
	ID       dataplane.ID
	Context  wire.ActionID
	Contents []byte
}

func (ReadEvent) EventKind() Kind { return KindRead }
func (e ReadEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     Kind          `json:"kind"`
		Who      string        `json:"who"`
		ID       dataplane.ID  `json:"id"`
		Context  wire.ActionID `json:"context"`
		Contents []byte        `json:"contents"`
	}{KindRead, e.Who, e.ID, e.Context, e.Contents})
}

// WriteEvent records a data plane write.
type WriteEvent struct {
	Who      string
	ID       dataplane.ID
	Context  wire.ActionID
	New      bool
	Contents []byte
}

func (WriteEvent) EventKind() Kind { return KindWrite }
func (e WriteEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind     Kind          `json:"kind"`
		Who      string        `json:"who"`
		ID       dataplane.ID  `json:"id"`
		Context  wire.ActionID `json:"context"`
		New      bool          `json:"new"`
		Contents []byte        `json:"contents"`
	}{KindWrite, e.Who, e.ID, e.Context, e.New, e.Contents})
}
