package trace

import (
	"justact/internal/collections"
	"justact/internal/dataplane"
	"justact/internal/wire"
)

// Times wraps collections.Times, emitting AdvanceTimeEvent on AddCurrent
// (spec 4.5's table — Add alone is untraced, only add_current is).
type Times struct{ *collections.Times }

// NewTimes wraps a fresh Times collection.
func NewTimes() Times { return Times{collections.NewTimes()} }

// AddCurrent advances current and emits AdvanceTimeEvent.
func (t Times) AddCurrent(ts wire.Timestamp) error {
	t.Times.AddCurrent(ts)
	return Emit(AdvanceTimeEvent{Timestamp: ts})
}

// Agreements wraps collections.Agreements, emitting AddAgreementEvent on
// Add.
type Agreements struct{ *collections.Agreements }

// NewAgreements wraps a fresh Agreements collection.
func NewAgreements() Agreements { return Agreements{collections.NewAgreements()} }

// Add records agr and emits AddAgreementEvent.
func (a Agreements) Add(agr *wire.Agreement) (previous *wire.Agreement, hadPrevious bool, err error) {
	previous, hadPrevious = a.Agreements.Add(agr)
	err = Emit(AddAgreementEvent{Agree: agr})
	return previous, hadPrevious, err
}

// StatementsView wraps collections.StatementsView, emitting
// StateMessageEvent on Add.
type StatementsView struct {
	who string
	v   *collections.StatementsView
}

// NewStatementsView wraps an agent's StatementsView.
func NewStatementsView(who string, v *collections.StatementsView) StatementsView {
	return StatementsView{who: who, v: v}
}

// Add routes m per to, then emits StateMessageEvent. Gossip violations
// (returned by the inner Add) are surfaced before any event is emitted, per
// spec 8's property 5 ("otherwise the operation fails and no event is
// emitted").
func (v StatementsView) Add(to wire.Recipient, m *wire.Message) error {
	if err := v.v.Add(to, collections.MessageElem{Message: m}); err != nil {
		return err
	}
	return Emit(StateMessageEvent{Who: v.who, To: to, Msg: m})
}

// EnactmentsView wraps collections.EnactmentsView, emitting
// EnactActionEvent on Add.
type EnactmentsView struct {
	who string
	v   *collections.EnactmentsView
}

// NewEnactmentsView wraps an agent's EnactmentsView.
func NewEnactmentsView(who string, v *collections.EnactmentsView) EnactmentsView {
	return EnactmentsView{who: who, v: v}
}

// Add routes action per to, then emits EnactActionEvent.
func (v EnactmentsView) Add(to wire.Recipient, action wire.Action) error {
	if err := v.v.Add(to, collections.ActionElem{Action: action}); err != nil {
		return err
	}
	return Emit(EnactActionEvent{Who: v.who, To: to, Action: action})
}

// DataSink implements dataplane.EventSink by emitting ReadEvent/WriteEvent.
type DataSink struct{}

// Read emits a ReadEvent, whether or not the variable existed.
func (DataSink) Read(who string, id dataplane.ID, context wire.ActionID, contents []byte, found bool) error {
	var c []byte
	if found {
		c = contents
	}
	return Emit(ReadEvent{Who: who, ID: id, Context: context, Contents: c})
}

// Write emits a WriteEvent before the store applies the mutation
// (dataplane.Store calls the sink first, matching dataplane.rs's
// log-then-mutate ordering).
func (DataSink) Write(who string, id dataplane.ID, context wire.ActionID, isNew bool, contents []byte) error {
	return Emit(WriteEvent{Who: who, ID: id, Context: context, New: isNew, Contents: contents})
}
