package trace

import (
	"encoding/json"
	"testing"

	"justact/internal/wire"
)

func TestRecipientJSONShapes(t *testing.T) {
	allBytes, err := json.Marshal(wire.RecipientAll())
	if err != nil {
		t.Fatalf("marshal All: %v", err)
	}
	if string(allBytes) != `"All"` {
		t.Fatalf(`expected "All", got %s`, allBytes)
	}

	oneBytes, err := json.Marshal(wire.RecipientOne("agent-1"))
	if err != nil {
		t.Fatalf("marshal One: %v", err)
	}
	if string(oneBytes) != `{"One":"agent-1"}` {
		t.Fatalf(`expected {"One":"agent-1"}, got %s`, oneBytes)
	}
}

func TestAdvanceTimeEventJSON(t *testing.T) {
	e := AdvanceTimeEvent{Timestamp: 42}
	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["kind"] != "AdvanceTime" {
		t.Fatalf("expected kind AdvanceTime, got %v", decoded["kind"])
	}
}
