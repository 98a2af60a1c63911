package policy

import "testing"

type fakeMessage struct {
	author  string
	payload string
}

func (m fakeMessage) AuthorID() string { return m.author }
func (m fakeMessage) Payload() string  { return m.payload }

func TestExtractReflection(t *testing.T) {
	e := Extractor{}
	pol, serr := e.Extract([]Message{fakeMessage{author: "a", payload: "foo."}})
	if serr != nil {
		t.Fatalf("extract: %v", serr)
	}
	d := pol.Truths()

	if isTrue, known := d.TruthOf(Constant("foo")); !isTrue || !known {
		t.Fatalf("expected foo true, got isTrue=%v known=%v", isTrue, known)
	}
	says := NewGroundTuple(Constant("a"), Constant("says"), Constant("foo"))
	if isTrue, known := d.TruthOf(says); !isTrue || !known {
		t.Fatalf("expected (a, says, foo) true, got isTrue=%v known=%v", isTrue, known)
	}
}

func TestExtractInvalidPolicy(t *testing.T) {
	e := Extractor{}
	pol, serr := e.Extract([]Message{fakeMessage{author: "a", payload: "error."}})
	if serr != nil {
		t.Fatalf("extract: %v", serr)
	}
	if pol.Truths().IsValid() {
		t.Fatalf("expected invalid denotation when a message derives error")
	}
}

func TestExtractWithActorInjectsActorFact(t *testing.T) {
	e := Extractor{}
	pol, serr := e.ExtractWithActor("a", []Message{fakeMessage{author: "a", payload: "p."}})
	if serr != nil {
		t.Fatalf("extract: %v", serr)
	}
	d := pol.Truths()
	actorFact := NewGroundTuple(Constant("actor"), Constant("a"))
	if isTrue, known := d.TruthOf(actorFact); !isTrue || !known {
		t.Fatalf("expected (actor, a) true, got isTrue=%v known=%v", isTrue, known)
	}
}

func TestExtractSyntaxErrorPropagates(t *testing.T) {
	e := Extractor{}
	_, serr := e.Extract([]Message{fakeMessage{author: "a", payload: "p(X) :- q."}})
	if serr == nil || serr.Kind != ErrUnboundVariable {
		t.Fatalf("expected ErrUnboundVariable, got %v", serr)
	}
}
