package trace

import (
	"errors"
	"testing"
)

type recordingHandler struct {
	events []Event
}

func (h *recordingHandler) Handle(e Event) error {
	h.events = append(h.events, e)
	return nil
}

func TestRegisterHandlerOnceOnly(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	h1 := &recordingHandler{}
	if err := RegisterHandler(h1); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}
	h2 := &recordingHandler{}
	err := RegisterHandler(h2)
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}

	if err := Emit(AdvanceTimeEvent{Timestamp: 1}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(h1.events) != 1 {
		t.Fatalf("expected the first handler to receive the event, not the rejected second one")
	}
}

func TestEmitPanicsWithoutHandler(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Emit to panic when no handler is registered")
		}
	}()
	_ = Emit(AdvanceTimeEvent{Timestamp: 1})
}
