package collections

import (
	"errors"
	"testing"

	"justact/internal/wire"
)

func newTestMessage(author string, seq uint32, payload string) *wire.Message {
	return wire.NewMessage(wire.MessageID{Author: author, Seq: seq}, author, payload)
}

func TestStatementsGossipDiscipline(t *testing.T) {
	s := NewStatements()
	s.Register("a")
	s.Register("d")

	msgByA := newTestMessage("a", 1, "p.")

	// d has never seen msg_by_a and is not its author: illegal.
	viewD := s.View("d")
	err := viewD.Add(wire.RecipientAll(), MessageElem{msgByA})
	var illegal *ErrIllegalStatement
	if !errors.As(err, &illegal) {
		t.Fatalf("expected ErrIllegalStatement, got %v", err)
	}
	if viewD.ContainsKey(msgByA.ID()) {
		t.Fatalf("gossip violation must not have added the message")
	}

	// a is the author: legal.
	viewA := s.View("a")
	if err := viewA.Add(wire.RecipientAll(), MessageElem{msgByA}); err != nil {
		t.Fatalf("author adding own message should succeed: %v", err)
	}

	// now d holds it, so d may re-gossip it.
	if err := viewD.Add(wire.RecipientAll(), MessageElem{msgByA}); err != nil {
		t.Fatalf("d should be able to gossip a message it now holds: %v", err)
	}
}

func TestStatementsIdempotentAdd(t *testing.T) {
	s := NewStatements()
	s.Register("a")
	msg := newTestMessage("a", 1, "p.")
	view := s.View("a")
	if err := view.Add(wire.RecipientAll(), MessageElem{msg}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := view.Add(wire.RecipientAll(), MessageElem{msg}); err != nil {
		t.Fatalf("duplicate add should be a no-op, not an error: %v", err)
	}
	if len(view.Iter()) != 1 {
		t.Fatalf("expected exactly one entry after duplicate add, got %d", len(view.Iter()))
	}
}

func TestStatementsRecipientOne(t *testing.T) {
	s := NewStatements()
	s.Register("a")
	s.Register("b")
	msg := newTestMessage("a", 1, "p.")
	view := s.View("a")
	if err := view.Add(wire.RecipientOne("b"), MessageElem{msg}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if s.View("a").ContainsKey(msg.ID()) {
		t.Fatalf("a should not have received its own One(b)-addressed message")
	}
	if !s.View("b").ContainsKey(msg.ID()) {
		t.Fatalf("b should have received the message")
	}
}

func TestEnactmentsNoGossipRestriction(t *testing.T) {
	e := NewEnactments()
	e.Register("a")
	e.Register("d")
	action := wire.NewAction(wire.ActionID{Actor: "a", Tag: 'a'}, "a", nil, nil)
	viewD := e.View("d")
	if err := viewD.Add(wire.RecipientAll(), ActionElem{action}); err != nil {
		t.Fatalf("enactments carry no authorship restriction, got error: %v", err)
	}
}
