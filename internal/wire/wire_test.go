package wire

import (
	"encoding/json"
	"testing"
)

func TestMessageIDJSONShape(t *testing.T) {
	id := MessageID{Author: "a", Seq: 3}
	b, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `["a",3]` {
		t.Fatalf(`expected ["a",3], got %s`, b)
	}
}

func TestActionIDJSONUsesSingleCharTag(t *testing.T) {
	id := ActionID{Actor: "a", Tag: 'a'}
	b, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `["a","a"]` {
		t.Fatalf(`expected ["a","a"], got %s`, b)
	}
}

func TestMessageRoundTripFields(t *testing.T) {
	id := MessageID{Author: "c", Seq: 1}
	m := NewMessage(id, "c", "p.")
	if m.ID() != id {
		t.Fatalf("ID() mismatch")
	}
	if m.AuthorID() != "c" {
		t.Fatalf("AuthorID() mismatch")
	}
	if m.Payload() != "p." {
		t.Fatalf("Payload() mismatch")
	}

	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["author"] != "c" || decoded["payload"] != "p." {
		t.Fatalf("unexpected decoded message: %+v", decoded)
	}
}

func TestAgreementIDDelegatesToMessage(t *testing.T) {
	m := NewMessage(MessageID{Author: "c", Seq: 1}, "c", "p.")
	agr := NewAgreement(m, 5)
	if agr.ID() != m.ID() {
		t.Fatalf("expected agreement ID to delegate to its message's ID")
	}
	if agr.At != 5 {
		t.Fatalf("expected At to be preserved")
	}
}

func TestActionPayloadIncludesJustificationAndBasis(t *testing.T) {
	basisMsg := NewMessage(MessageID{Author: "c", Seq: 1}, "c", "p.")
	agr := NewAgreement(basisMsg, 1)
	justMsg := NewMessage(MessageID{Author: "a", Seq: 1}, "a", "q :- p.")

	action := NewAction(ActionID{Actor: "a", Tag: 'a'}, "a", agr, []*Message{justMsg})
	payload := action.Payload()
	if len(payload) != 2 {
		t.Fatalf("expected payload to include both the justification and the basis message, got %d", len(payload))
	}
	if payload[0] != justMsg || payload[1] != basisMsg {
		t.Fatalf("expected justification before basis in payload")
	}
}

func TestActionPayloadWithoutBasis(t *testing.T) {
	justMsg := NewMessage(MessageID{Author: "a", Seq: 1}, "a", "q.")
	action := NewAction(ActionID{Actor: "a", Tag: 'a'}, "a", nil, []*Message{justMsg})
	payload := action.Payload()
	if len(payload) != 1 || payload[0] != justMsg {
		t.Fatalf("expected payload to contain only the justification when there is no basis")
	}
}

func TestRecipientRoundTrip(t *testing.T) {
	all := RecipientAll()
	b, err := json.Marshal(all)
	if err != nil {
		t.Fatalf("marshal all: %v", err)
	}
	var decodedAll Recipient
	if err := json.Unmarshal(b, &decodedAll); err != nil {
		t.Fatalf("unmarshal all: %v", err)
	}
	if !decodedAll.IsAll() {
		t.Fatalf("expected round-tripped recipient to still be All")
	}

	one := RecipientOne("agent-1")
	b, err = json.Marshal(one)
	if err != nil {
		t.Fatalf("marshal one: %v", err)
	}
	var decodedOne Recipient
	if err := json.Unmarshal(b, &decodedOne); err != nil {
		t.Fatalf("unmarshal one: %v", err)
	}
	got, ok := decodedOne.One()
	if !ok || got != "agent-1" {
		t.Fatalf("expected round-tripped recipient to target agent-1, got (%q, %v)", got, ok)
	}
}

func TestRecipientUnmarshalRejectsUnknownString(t *testing.T) {
	var r Recipient
	if err := json.Unmarshal([]byte(`"Nobody"`), &r); err == nil {
		t.Fatalf("expected an error for an unrecognized bare string")
	}
}
